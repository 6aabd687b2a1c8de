package stream

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Optimization is a best-effort hint applied to an open file. Action returns
// os.ErrInvalid when the hint does not apply to the file type.
type Optimization struct {
	Name   string
	Action func(*os.File, os.FileInfo) error
}

// ReadOptimizations are populated by platform-specific files
var ReadOptimizations []Optimization

// IsTTY reports whether s is an *os.File attached to a terminal
func IsTTY(s interface{}) bool {
	if f, isFh := s.(*os.File); isFh {
		fd := f.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	return false
}
