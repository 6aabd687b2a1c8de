package zstd

import (
	"fmt"

	"github.com/anjor/cleave/internal/compressor"
	"github.com/anjor/cleave/internal/util/argparser"

	"github.com/pborman/getopt/v2"
	"github.com/pborman/options"
)

func NewCompressor(args []string) (_ compressor.Compressor, initErrs []string) {

	c := &zstdCompressor{
		config: config{Level: 3},
	}

	optSet := getopt.New()
	if err := options.RegisterSet("", &c.config, optSet); err != nil {
		initErrs = []string{fmt.Sprintf("option set registration failed: %s", err)}
		return
	}

	if args == nil {
		initErrs = argparser.SubHelp(
			"Compresses every output file with zstandard, appending '.zst' to its name.\n"+
				"Levels follow the zstd CLI and are mapped to the nearest supported encoder level.",
			optSet,
		)
		return
	}

	if initErrs = argparser.Parse(args, optSet, 0); len(initErrs) > 0 {
		return
	}

	return c, initErrs
}
