package zstd

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

type config struct {
	Level int `getopt:"--level=[1:22]  Compression level. Default:"`
}

type zstdCompressor struct {
	config
}

func (*zstdCompressor) Extension() string { return ".zst" }

func (c *zstdCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	// single goroutine: we only ever have one file open at a time anyway
	return zstd.NewWriter(
		w,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(c.Level)),
		zstd.WithEncoderConcurrency(1),
	)
}
