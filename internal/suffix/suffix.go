// Package suffix generates the fixed-width suffixes naming successive output files.
package suffix

import (
	"math/bits"

	"github.com/pkg/errors"
)

// ErrSuffixCapacity is returned when a file index cannot be represented in the configured width.
var ErrSuffixCapacity = errors.New("output file suffixes exhausted")

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz"
	digits   = "0123456789"
)

func symbols(numeric bool) string {
	if numeric {
		return digits
	}
	return alphabet
}

// Capacity returns the amount of distinct suffixes of the given width. The
// second return value is false when that amount does not fit in a uint64.
func Capacity(width int, numeric bool) (uint64, bool) {
	base := uint64(len(symbols(numeric)))
	c := uint64(1)
	for i := 0; i < width; i++ {
		hi, lo := bits.Mul64(c, base)
		if hi != 0 {
			return 0, false
		}
		c = lo
	}
	return c, true
}

// Generate maps index to a suffix of exactly width characters, most
// significant digit first, padded with the zero symbol ('a' or '0').
//
// (1, 3, false) -> "aab"
// (1, 3, true)  -> "001"
func Generate(index uint64, width int, numeric bool) (string, error) {
	if width < 1 {
		return "", errors.Errorf("invalid suffix length %d", width)
	}

	if c, fits := Capacity(width, numeric); fits && index >= c {
		return "", errors.Wrapf(ErrSuffixCapacity, "file #%d does not fit in %d suffix characters", index, width)
	}

	sym := symbols(numeric)
	base := uint64(len(sym))

	out := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = sym[index%base]
		index /= base
	}
	return string(out), nil
}
