package strategy

import (
	"github.com/anjor/cleave/internal/constants"
)

// Control is the cursor shared between the split driver and the active
// strategy. The driver refills CurrentLine once it is fully consumed, and
// opens the next output file when RequestNewFile is set.
type Control struct {
	_              constants.Incomparabe
	CurrentLine    string
	RequestNewFile bool
}

// Kind selects where output file boundaries fall.
type Kind int

const (
	Lines Kind = iota
	Bytes
	LineBytes
)

var kindNames = [...]string{
	Lines:     "lines",
	Bytes:     "bytes",
	LineBytes: "line-bytes",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// KindByName maps the long option name of a strategy back to its Kind
func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}
