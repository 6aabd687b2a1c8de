package strategy

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

// drive mimics the split driver loop in memory, returning the content of
// every output file in order.
func drive(t *testing.T, s *Strategy, lines []string) (files []string) {
	t.Helper()

	ctl := &Control{RequestNewFile: true}
	var cur *strings.Builder

	for _, l := range lines {
		ctl.CurrentLine = l
		for guard := 0; ctl.CurrentLine != ""; guard++ {
			require.Less(t, guard, 1000, "strategy makes no progress")

			if ctl.RequestNewFile {
				if cur != nil {
					files = append(files, cur.String())
				}
				cur = new(strings.Builder)
				ctl.RequestNewFile = false
			}

			consumed := s.Consume(ctl)
			require.True(t, strings.HasPrefix(ctl.CurrentLine, consumed))
			cur.WriteString(consumed)
			ctl.CurrentLine = ctl.CurrentLine[len(consumed):]
		}
	}
	if cur != nil {
		files = append(files, cur.String())
	}
	return
}

func mustNew(t *testing.T, k Kind, param string) *Strategy {
	t.Helper()
	s, err := New(k, param)
	require.NoError(t, err)
	return s
}

func TestLinesStrategy(t *testing.T) {
	files := drive(t, mustNew(t, Lines, "2"), []string{"1\n", "2\n", "3\n", "4\n", "5\n"})
	require.Equal(t, []string{"1\n2\n", "3\n4\n", "5\n"}, files)
}

func TestLinesStrategyRequestsRolloverOnLastLine(t *testing.T) {
	s := mustNew(t, Lines, "2")
	ctl := &Control{CurrentLine: "a\n"}

	require.Equal(t, "a\n", s.Consume(ctl))
	require.False(t, ctl.RequestNewFile)

	ctl.CurrentLine = "b\n"
	require.Equal(t, "b\n", s.Consume(ctl))
	require.True(t, ctl.RequestNewFile)
}

func TestBytesStrategy(t *testing.T) {
	files := drive(t, mustNew(t, Bytes, "3"), []string{"abcdefghij"})
	require.Equal(t, []string{"abc", "def", "ghi", "j"}, files)

	// lines get split mid-way
	files = drive(t, mustNew(t, Bytes, "4"), []string{"ab\n", "cdef\n", "g\n"})
	require.Equal(t, []string{"ab\nc", "def\n", "g\n"}, files)
}

func TestBytesStrategyCountsCharacters(t *testing.T) {
	// 7 characters, 11 bytes
	files := drive(t, mustNew(t, Bytes, "2"), []string{"héllö→\n"})
	require.Equal(t, []string{"hé", "ll", "ö→", "\n"}, files)

	for _, f := range files {
		require.True(t, utf8.ValidString(f))
	}
}

func TestBytesStrategyInvalidUTF8(t *testing.T) {
	in := "a\xffb\xfe\n"
	files := drive(t, mustNew(t, Bytes, "2"), []string{in})
	require.Equal(t, []string{"a\xff", "b\xfe", "\n"}, files)
	require.Equal(t, in, strings.Join(files, ""))
}

func TestLineBytesStrategy(t *testing.T) {
	tests := []struct {
		name  string
		size  string
		lines []string
		want  []string
	}{
		{
			name:  "partial budget defers next line",
			size:  "5",
			lines: []string{"abc\n", "defgh\n"},
			want:  []string{"abc\n", "defgh", "\n"},
		},
		{
			name:  "exact budget does not leave an empty file",
			size:  "4",
			lines: []string{"abc\n", "defgh\n"},
			want:  []string{"abc\n", "defg", "h\n"},
		},
		{
			name:  "whole lines packed",
			size:  "6",
			lines: []string{"a\n", "b\n", "c\n", "d\n"},
			want:  []string{"a\nb\nc\n", "d\n"},
		},
		{
			name:  "lines not fitting start a new file",
			size:  "5",
			lines: []string{"a\n", "bb\n", "ccc\n", "d\n"},
			want:  []string{"a\nbb\n", "ccc\n", "d\n"},
		},
		{
			name:  "overlong first line is split by budget",
			size:  "3",
			lines: []string{"abcdefg\n", "h\n"},
			want:  []string{"abc", "def", "g\n", "h\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := drive(t, mustNew(t, LineBytes, tt.size), tt.lines)
			require.Equal(t, tt.want, files)
			require.Equal(t, strings.Join(tt.lines, ""), strings.Join(files, ""))
		})
	}
}

func TestLineBytesDeferral(t *testing.T) {
	s := mustNew(t, LineBytes, "5")
	ctl := &Control{CurrentLine: "ab\n"}

	require.Equal(t, "ab\n", s.Consume(ctl))
	require.False(t, ctl.RequestNewFile)

	ctl.CurrentLine = "cdef\n"
	require.Equal(t, "", s.Consume(ctl))
	require.True(t, ctl.RequestNewFile)
	require.Equal(t, uint64(5), s.remaining)
	require.False(t, s.requireWholeLine)
}

func TestNewErrors(t *testing.T) {
	for _, p := range []string{"", "0", "-1", "x", "1.5", "2k"} {
		_, err := New(Lines, p)
		require.Error(t, err, "lines=%q", p)
		require.Contains(t, err.Error(), "invalid number of lines")
	}

	for _, k := range []Kind{Bytes, LineBytes} {
		for _, p := range []string{"", "0", "0k", "k", "12x", "1g", "-5", "99999999999999999999", "18014398509481984m"} {
			_, err := New(k, p)
			require.Error(t, err, "%s=%q", k, p)
			require.Contains(t, err.Error(), "invalid number of bytes")
		}
	}

	_, err := New(Kind(42), "1")
	require.Error(t, err)
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"1", 1},
		{"10", 10},
		{"1b", 512},
		{"3b", 1536},
		{"1k", 1024},
		{"2k", 2048},
		{"1m", 1024 * 1024},
		{"5m", 5 * 1024 * 1024},
	}

	for _, tt := range tests {
		got, err := ParseSize(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestKindNames(t *testing.T) {
	for _, k := range []Kind{Lines, Bytes, LineBytes} {
		back, found := KindByName(k.String())
		require.True(t, found)
		require.Equal(t, k, back)
	}

	_, found := KindByName("chunks")
	require.False(t, found)
	require.Equal(t, "unknown", Kind(-1).String())
}
