package cleave

import (
	"github.com/pborman/getopt/v2"

	"github.com/anjor/cleave/internal/strategy"
)

// Settings is the fully resolved description of a split run.
type Settings struct {
	// output files are named Prefix + suffix + AdditionalSuffix (+ compressor extension)
	Prefix           string
	AdditionalSuffix string
	NumericSuffix    bool
	SuffixLength     int

	// path, or "-" for the standard input
	Input string

	Strategy      strategy.Kind
	StrategyParam string

	// compressor name with optional '_'-separated sub-options, e.g. "gzip_level=9"
	Compressor string

	Verbose bool
}

type config struct {
	optSet *getopt.Set

	// where to output
	emitters emissionTargets

	//
	// Bulk of CLI options definition starts here, the rest further down in initArgvParser()
	//

	Help    bool `getopt:"-h --help         Display basic help"`
	HelpAll bool `getopt:"--help-all        Display full help including options for every available compressor"`
	Version bool `getopt:"-V --version      Output version information and exit"`

	SuffixLength     int    `getopt:"-a --suffix-length=[1:64]    Use suffixes of length N. Default:"`
	NumericSuffix    bool   `getopt:"-d --numeric-suffixes        Use numeric suffixes instead of alphabetic"`
	AdditionalSuffix string `getopt:"--additional-suffix=SUFFIX   Append an additional SUFFIX to file names"`
	Verbose          bool   `getopt:"--verbose                    Print a diagnostic just before each output file is opened"`

	// exactly one of these may be given, option names match strategy.Kind.String()
	Bytes     string `getopt:"-b --bytes=SIZE         Put SIZE bytes per output file"`
	LineBytes string `getopt:"-C --line-bytes=SIZE    Put at most SIZE bytes of lines per output file"`
	Lines     string `getopt:"-l --lines=NUMBER       Put NUMBER lines per output file. Default:"`

	emittersStdErr []string // Emitter spec: option/helptext in initArgvParser()
	emittersStdOut []string // Emitter spec: option/helptext in initArgvParser()

	requestedCompressor string // Compressor: option/helptext in initArgvParser()

	// no-option-attached, instantiation error accumulator
	erroredCompressors []string
}
