package cleave

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/anjor/cleave/internal/compressor"
	"github.com/anjor/cleave/internal/compressor/gzip"
	"github.com/anjor/cleave/internal/compressor/none"
	"github.com/anjor/cleave/internal/compressor/xz"
	"github.com/anjor/cleave/internal/compressor/zstd"
	"github.com/anjor/cleave/internal/constants"
	"github.com/anjor/cleave/internal/logging"
	"github.com/anjor/cleave/internal/sink"
	"github.com/anjor/cleave/internal/strategy"
)

const (
	NAME    = "cleave"
	VERSION = "1.0.0"
)

var availableCompressors = map[string]compressor.Initializer{
	"none": none.NewCompressor,
	"gzip": gzip.NewCompressor,
	"zstd": zstd.NewCompressor,
	"xz":   xz.NewCompressor,
}

var (
	// ErrUsageDisplayed is returned by NewFromArgv after printing help or version text
	ErrUsageDisplayed = errors.New("usage displayed")

	// ErrInvalidArguments is returned by NewFromArgv after the individual
	// problems were already reported on the error stream
	ErrInvalidArguments = errors.New("invalid arguments")
)

type Cleave struct {
	cfg         config
	settings    Settings
	statSummary statSummary

	strategy   *strategy.Strategy
	compressor compressor.Compressor
	sink       *sink.Sink

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *zap.SugaredLogger
}

func newCleave() *Cleave {
	return &Cleave{
		cfg:    defaultConfig(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		log:    logging.Nop(),
	}
}

func defaultSettings() Settings {
	return Settings{
		Prefix:        constants.DefaultPrefix,
		SuffixLength:  constants.DefaultSuffixLength,
		Input:         "-",
		Strategy:      strategy.Lines,
		StrategyParam: constants.DefaultLines,
		Compressor:    "none",
	}
}

// New returns a splitter for an already resolved set of Settings. Zero
// values for Prefix, SuffixLength, Input, StrategyParam and Compressor
// are replaced by their defaults.
func New(s Settings) (*Cleave, error) {
	def := defaultSettings()
	if s.Prefix == "" {
		s.Prefix = def.Prefix
	}
	if s.SuffixLength == 0 {
		s.SuffixLength = def.SuffixLength
	}
	if s.Input == "" {
		s.Input = def.Input
	}
	if s.StrategyParam == "" && s.Strategy == strategy.Lines {
		s.StrategyParam = def.StrategyParam
	}
	if s.Compressor == "" {
		s.Compressor = def.Compressor
	}

	cl := newCleave()
	cl.settings = s

	if errs := cl.setupSplitting(); len(errs) > 0 {
		return nil, errors.New(strings.Join(errs, "; "))
	}
	return cl, nil
}

// SetStreams replaces the standard input, output and error streams.
func (cl *Cleave) SetStreams(stdin io.Reader, stdout, stderr io.Writer) {
	cl.stdin, cl.stdout, cl.stderr = stdin, stdout, stderr
}

// SetLogger replaces the logger, which by default discards everything.
// Warnings are always logged, per-file debug records only when the logger
// is enabled at debug level.
func (cl *Cleave) SetLogger(l *zap.SugaredLogger) {
	cl.log = l
	if cl.sink != nil {
		cl.sink.SetLogger(l)
	}
}

func (cl *Cleave) Settings() Settings { return cl.settings }

// setupSplitting resolves the strategy and the compressor, and readies the output sink
func (cl *Cleave) setupSplitting() (argErrs []string) {

	if cl.settings.SuffixLength < 1 || cl.settings.SuffixLength > constants.MaxSuffixLength {
		argErrs = append(argErrs, errors.Errorf(
			"suffix length %d out of range [1:%d]",
			cl.settings.SuffixLength,
			constants.MaxSuffixLength,
		).Error())
	}

	if strings.ContainsRune(cl.settings.AdditionalSuffix, os.PathSeparator) {
		argErrs = append(argErrs, errors.Errorf(
			"invalid suffix '%s', contains directory separator",
			cl.settings.AdditionalSuffix,
		).Error())
	}

	var err error
	if cl.strategy, err = strategy.New(cl.settings.Strategy, cl.settings.StrategyParam); err != nil {
		argErrs = append(argErrs, err.Error())
	}

	argErrs = append(argErrs, cl.setupCompressor()...)

	if len(argErrs) == 0 {
		cl.sink = sink.New(cl.compressor)
	}

	return
}
