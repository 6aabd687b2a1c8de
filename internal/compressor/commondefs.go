package compressor

import (
	"io"
)

// Compressor wraps every output file in a compressing stream.
type Compressor interface {
	// Extension is appended to every output file name, e.g. ".gz"
	Extension() string
	NewWriter(underlying io.Writer) (io.WriteCloser, error)
}

type Initializer func(
	compressorCLISubArgs []string,
) (
	instance Compressor,
	initErrorStrings []string,
)
