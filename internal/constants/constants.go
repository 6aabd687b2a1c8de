package constants

import (
	"os"
	"strconv"
)

const (
	DefaultPrefix       = "x"
	DefaultSuffixLength = 2
	DefaultLines        = "1000"

	// sanity bound for -a: 26^64 is well past anything a filesystem can hold
	MaxSuffixLength = 64

	// line reader buffer, lines longer than this are still read whole
	ReadBufferSize = 64 * 1024
	// per output file
	WriteBufferSize = 128 * 1024
)

type Incomparabe [0]func()

var LongTests bool
var VeryLongTests bool

func init() {
	VeryLongTests = isTruthy("TEST_CLEAVE_VERY_LONG")
	LongTests = VeryLongTests || isTruthy("TEST_CLEAVE_LONG")
}

func isTruthy(varname string) bool {
	envStr := os.Getenv(varname)
	if envStr != "" {
		if num, err := strconv.ParseUint(envStr, 10, 64); err != nil || num != 0 {
			return true
		}
	}
	return false
}
