package none

import (
	"github.com/anjor/cleave/internal/compressor"
	"github.com/anjor/cleave/internal/util/argparser"
)

func NewCompressor(args []string) (_ compressor.Compressor, initErrs []string) {

	// on nil-args the "error" is the help text to be incorporated into
	// the larger help display
	if args == nil {
		initErrs = argparser.SubHelp(
			"Writes output files verbatim. Takes no arguments.\n",
			nil,
		)
		return
	}

	if len(args) > 1 {
		initErrs = append(initErrs, "compressor takes no arguments")
	}

	return passthrough{}, initErrs
}
