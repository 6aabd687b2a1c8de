// Package strategy implements the consumption state machines deciding where
// output file boundaries fall.
//
// All "byte" budgets are counted in characters (Unicode scalar values), not
// in raw bytes. A byte that is not part of a valid UTF-8 sequence counts as a
// single character, so the slices handed back to the driver always add up to
// the exact input bytes.
package strategy

import (
	"math/bits"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Strategy holds the counters of a single split run. The zero value is not
// usable, obtain one via New.
type Strategy struct {
	kind      Kind
	target    uint64
	remaining uint64

	breakOnLineBoundary bool
	requireWholeLine    bool
}

type consumeFunc func(s *Strategy, ctl *Control) string

// indexed by Kind
var consumers = [...]consumeFunc{
	Lines:     consumeLines,
	Bytes:     consumeBytes,
	LineBytes: consumeBytes,
}

// New parses param according to kind and returns a freshly reset strategy.
func New(kind Kind, param string) (*Strategy, error) {
	s := &Strategy{kind: kind}

	switch kind {
	case Lines:
		n, err := strconv.ParseUint(param, 10, 64)
		if err != nil || n == 0 {
			return nil, errors.Errorf("invalid number of lines: '%s'", param)
		}
		s.target = n
	case Bytes, LineBytes:
		n, err := ParseSize(param)
		if err != nil {
			return nil, err
		}
		s.target = n
		s.breakOnLineBoundary = (kind == LineBytes)
	default:
		return nil, errors.Errorf("strategy %s not supported", kind)
	}

	s.remaining = s.target
	return s, nil
}

func (s *Strategy) Kind() Kind     { return s.kind }
func (s *Strategy) Target() uint64 { return s.target }

// Consume takes a prefix of ctl.CurrentLine, possibly all of it, possibly
// none of it, and returns it. It may set ctl.RequestNewFile. The caller is
// responsible for advancing ctl.CurrentLine past the returned slice.
func (s *Strategy) Consume(ctl *Control) string {
	return consumers[s.kind](s, ctl)
}

func consumeLines(s *Strategy, ctl *Control) string {
	s.remaining--
	if s.remaining == 0 {
		s.remaining = s.target
		ctl.RequestNewFile = true
	}
	return ctl.CurrentLine
}

func consumeBytes(s *Strategy, ctl *Control) string {
	line := ctl.CurrentLine
	end, n := runePrefix(line, s.remaining)

	if s.requireWholeLine && end < len(line) {
		s.requireWholeLine = false

		// The line does not fit in what is left of the budget: start it in
		// a fresh file. If the current file has not been written to yet
		// there is nothing to gain, split the line by budget instead.
		if s.remaining != s.target {
			s.remaining = s.target
			ctl.RequestNewFile = true
			return line[:0]
		}
	}

	s.remaining -= n
	if s.remaining == 0 {
		s.remaining = s.target
		ctl.RequestNewFile = true
	}

	if s.breakOnLineBoundary && end == len(line) {
		s.requireWholeLine = true
	}

	return line[:end]
}

// runePrefix returns the byte length and character count of the longest
// prefix of s holding at most limit characters.
func runePrefix(s string, limit uint64) (end int, count uint64) {
	for end < len(s) && count < limit {
		_, w := utf8.DecodeRuneInString(s[end:])
		end += w
		count++
	}
	return
}

// ParseSize parses SIZE: digits with an optional multiplier suffix, b for
// 512, k for 1024 and m for 1024*1024.
func ParseSize(param string) (uint64, error) {
	invalid := errors.Errorf("invalid number of bytes: '%s'", param)

	if param == "" {
		return 0, invalid
	}

	digits := param[:len(param)-1]
	var multiplier uint64
	switch param[len(param)-1] {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		multiplier = 1
		digits = param
	case 'b':
		multiplier = 512
	case 'k':
		multiplier = 1024
	case 'm':
		multiplier = 1024 * 1024
	default:
		return 0, invalid
	}

	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || n == 0 {
		return 0, invalid
	}

	hi, size := bits.Mul64(n, multiplier)
	if hi != 0 {
		return 0, invalid
	}

	return size, nil
}
