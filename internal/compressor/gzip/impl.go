package gzip

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

type config struct {
	Level int `getopt:"--level=[1:9]  Compression level, 1 being the fastest. Default:"`
}

type gzipCompressor struct {
	config
}

func (*gzipCompressor) Extension() string { return ".gz" }

func (c *gzipCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriterLevel(w, c.Level)
}
