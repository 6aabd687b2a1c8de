package suffix

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		index   uint64
		width   int
		numeric bool
		want    string
	}{
		{0, 2, false, "aa"},
		{1, 2, false, "ab"},
		{25, 2, false, "az"},
		{26, 2, false, "ba"},
		{675, 2, false, "zz"},
		{1, 3, false, "aab"},
		{0, 1, false, "a"},
		{0, 3, true, "000"},
		{1, 3, true, "001"},
		{42, 3, true, "042"},
		{999, 3, true, "999"},
		{7, 1, true, "7"},
	}

	for _, tt := range tests {
		got, err := Generate(tt.index, tt.width, tt.numeric)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "Generate(%d, %d, %v)", tt.index, tt.width, tt.numeric)
	}
}

func TestGenerateOrdering(t *testing.T) {
	for _, numeric := range []bool{false, true} {
		for width := 1; width <= 3; width++ {
			c, fits := Capacity(width, numeric)
			require.True(t, fits)

			var prev string
			for i := uint64(0); i < c; i++ {
				s, err := Generate(i, width, numeric)
				require.NoError(t, err)
				require.Len(t, s, width)
				if i > 0 {
					require.Less(t, prev, s, "suffixes must be strictly increasing")
				}
				prev = s
			}
		}
	}
}

func TestGenerateCapacityExceeded(t *testing.T) {
	_, err := Generate(676, 2, false)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrSuffixCapacity))

	_, err = Generate(1000, 3, true)
	require.True(t, errors.Is(err, ErrSuffixCapacity))

	_, err = Generate(10, 1, true)
	require.True(t, errors.Is(err, ErrSuffixCapacity))

	// last representable one is still fine
	s, err := Generate(9, 1, true)
	require.NoError(t, err)
	require.Equal(t, "9", s)
}

func TestGenerateInvalidWidth(t *testing.T) {
	_, err := Generate(0, 0, false)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrSuffixCapacity))
}

func TestCapacity(t *testing.T) {
	c, fits := Capacity(2, false)
	require.True(t, fits)
	require.Equal(t, uint64(676), c)

	c, fits = Capacity(3, true)
	require.True(t, fits)
	require.Equal(t, uint64(1000), c)

	_, fits = Capacity(20, true)
	require.False(t, fits)

	// a width this large never runs out in practice
	s, err := Generate(^uint64(0), 20, true)
	require.NoError(t, err)
	require.Equal(t, "18446744073709551615", s)
}
