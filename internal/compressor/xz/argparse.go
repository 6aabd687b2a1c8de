package xz

import (
	"fmt"

	"github.com/anjor/cleave/internal/compressor"
	"github.com/anjor/cleave/internal/util/argparser"

	"github.com/pborman/getopt/v2"
	"github.com/pborman/options"
)

func NewCompressor(args []string) (_ compressor.Compressor, initErrs []string) {

	c := &xzCompressor{
		config: config{DictCap: 8 * 1024 * 1024},
	}

	optSet := getopt.New()
	if err := options.RegisterSet("", &c.config, optSet); err != nil {
		initErrs = []string{fmt.Sprintf("option set registration failed: %s", err)}
		return
	}

	if args == nil {
		initErrs = argparser.SubHelp(
			"Compresses every output file with xz (LZMA2), appending '.xz' to its name.",
			optSet,
		)
		return
	}

	if initErrs = argparser.Parse(args, optSet, 0); len(initErrs) > 0 {
		return
	}

	return c, initErrs
}
