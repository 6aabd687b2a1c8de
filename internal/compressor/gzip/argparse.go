package gzip

import (
	"fmt"

	"github.com/anjor/cleave/internal/compressor"
	"github.com/anjor/cleave/internal/util/argparser"

	"github.com/pborman/getopt/v2"
	"github.com/pborman/options"
)

func NewCompressor(args []string) (_ compressor.Compressor, initErrs []string) {

	c := &gzipCompressor{
		config: config{Level: 6},
	}

	optSet := getopt.New()
	if err := options.RegisterSet("", &c.config, optSet); err != nil {
		initErrs = []string{fmt.Sprintf("option set registration failed: %s", err)}
		return
	}

	// on nil-args the "error" is the help text to be incorporated into
	// the larger help display
	if args == nil {
		initErrs = argparser.SubHelp(
			"Compresses every output file with gzip, appending '.gz' to its name.\n"+
				"Concatenating the decompressed files restores the input.",
			optSet,
		)
		return
	}

	// bail early if getopt fails
	if initErrs = argparser.Parse(args, optSet, 0); len(initErrs) > 0 {
		return
	}

	return c, initErrs
}
