package xz

import (
	"io"

	"github.com/ulikunitz/xz"
)

type config struct {
	DictCap int `getopt:"--dict-size=[4096:1610612736]  LZMA2 dictionary size in bytes. Default:"`
}

type xzCompressor struct {
	config
}

func (*xzCompressor) Extension() string { return ".xz" }

func (c *xzCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return xz.WriterConfig{DictCap: c.DictCap}.NewWriter(w)
}
