package cleave

import (
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"github.com/pborman/getopt/v2"
	"github.com/pborman/options"

	"github.com/anjor/cleave/internal/constants"
	"github.com/anjor/cleave/internal/strategy"
	"github.com/anjor/cleave/internal/util/argparser"
)

type emissionTargets map[string]io.Writer

const (
	emNone       = "none"
	emStatsText  = "stats-text"
	emStatsJsonl = "stats-jsonl"
)

func defaultConfig() config {
	return config{
		emitters: emissionTargets{
			emNone:       nil,
			emStatsText:  nil,
			emStatsJsonl: nil,
		},
		SuffixLength:        constants.DefaultSuffixLength,
		Lines:               constants.DefaultLines,
		requestedCompressor: "none",
	}
}

// NewFromArgv resolves a full command line, argv[0] being the program name.
// Help and version requests are printed on stdout and reported via
// ErrUsageDisplayed. Argument problems are all printed on stderr at once,
// followed by returning ErrInvalidArguments.
func NewFromArgv(argv []string, stdin io.Reader, stdout, stderr io.Writer) (*Cleave, error) {

	cl := newCleave()
	cl.SetStreams(stdin, stdout, stderr)
	cl.statSummary.SysStats.ArgvInitial = getInitialArgs(argv)

	cfg := &cl.cfg
	cfg.initArgvParser()

	// accumulator for multiple errors, to present to the user all at once
	argParseErrs := argparser.Parse(argv, cfg.optSet, 2)

	if cfg.Help || cfg.HelpAll {
		cl.printUsage(stdout)
		return nil, ErrUsageDisplayed
	}
	if cfg.Version {
		fmt.Fprintf(stdout, "%s v%s\n", NAME, VERSION)
		return nil, ErrUsageDisplayed
	}

	argParseErrs = append(argParseErrs, cl.settingsFromConfig()...)

	// there is no point validating the parameters of a conflicting setup
	if len(argParseErrs) == 0 {
		argParseErrs = append(argParseErrs, cl.setupSplitting()...)
	}
	argParseErrs = append(argParseErrs, cl.setupEmitters()...)

	if len(argParseErrs) != 0 {
		fmt.Fprint(stderr, "\nFatal error parsing arguments:\n\n")
		cl.printUsage(stderr)

		sort.Strings(argParseErrs)
		fmt.Fprintf(
			stderr,
			"Fatal error parsing arguments:\n\t%s\n",
			strings.Join(argParseErrs, "\n\t"),
		)
		return nil, ErrInvalidArguments
	}

	// Opts check out - take a snapshot of what we ended up with
	cfg.optSet.VisitAll(func(o getopt.Option) {
		switch o.LongName() {
		case "help", "help-all", "version":
			// do nothing for these
		default:
			cl.statSummary.SysStats.ArgvExpanded = append(
				cl.statSummary.SysStats.ArgvExpanded, fmt.Sprintf(`--%s=%s`,
					o.LongName(),
					o.Value().String(),
				),
			)
		}
	})
	sort.Strings(cl.statSummary.SysStats.ArgvExpanded)

	return cl, nil
}

func getInitialArgs(argv []string) []string {
	if len(argv) < 2 {
		return []string{}
	}
	initial := make([]string, len(argv)-1)
	copy(initial, argv[1:])
	return initial
}

func (cfg *config) initArgvParser() {
	// The default documented way of using pborman/options is to muck with globals
	// Operate over objects instead, allowing us to re-parse argv multiple times
	o := getopt.New()
	if err := options.RegisterSet("", cfg, o); err != nil {
		log.Fatalf("option set registration failed: %s", err)
	}
	cfg.optSet = o

	o.SetProgram(NAME)
	o.SetParameters("[INPUT [PREFIX]]")

	// Several options have the help-text assembled programmatically
	o.FlagLong(&cfg.requestedCompressor, "compress", 0,
		"Compress every output file. One of: "+availableMapKeys(availableCompressors),
		"name_opt1_opt2_..._optN",
	)
	o.FlagLong(&cfg.emittersStdErr, "emit-stderr", 0, fmt.Sprintf(
		"One or more emitters to activate on stdERR. Available emitters are %s. Default: none",
		availableMapKeys(cfg.emitters),
	), "comma,sep,emitters")
	o.FlagLong(&cfg.emittersStdOut, "emit-stdout", 0,
		"One or more emitters to activate on stdOUT. Available emitters same as above. Default: none",
		"comma,sep,emitters",
	)
}

// settingsFromConfig turns parsed options and free-form parameters into Settings
func (cl *Cleave) settingsFromConfig() (argErrs []string) {
	cfg := &cl.cfg
	s := defaultSettings()

	s.SuffixLength = cfg.SuffixLength
	s.NumericSuffix = cfg.NumericSuffix
	s.AdditionalSuffix = cfg.AdditionalSuffix
	s.Verbose = cfg.Verbose
	s.Compressor = cfg.requestedCompressor

	var selected []string
	cfg.optSet.VisitAll(func(o getopt.Option) {
		if k, isStrategy := strategy.KindByName(o.LongName()); isStrategy && o.Seen() {
			selected = append(selected, o.LongName())
			s.Strategy = k
			s.StrategyParam = o.Value().String()
		}
	})
	if len(selected) > 1 {
		argErrs = append(argErrs, fmt.Sprintf(
			"cannot split in more than one way (--%s)",
			strings.Join(selected, ", --"),
		))
	}

	switch free := cfg.optSet.Args(); len(free) {
	case 0:
	case 1:
		s.Input = free[0]
	default:
		s.Input, s.Prefix = free[0], free[1]
	}

	cl.settings = s
	return
}

func (cl *Cleave) setupCompressor() (argErrs []string) {

	compressorArgs := strings.Split(cl.settings.Compressor, "_")
	init, exists := availableCompressors[compressorArgs[0]]
	if !exists {
		return []string{
			fmt.Sprintf(
				"Compressor '%s' not found. Available compressor names are: %s",
				compressorArgs[0],
				availableMapKeys(availableCompressors),
			),
		}
	}

	for n := range compressorArgs {
		if n > 0 {
			compressorArgs[n] = "--" + compressorArgs[n]
		}
	}

	compressorInstance, initErrors := init(compressorArgs)

	if len(initErrors) > 0 {
		cl.cfg.erroredCompressors = append(cl.cfg.erroredCompressors, compressorArgs[0])
		for _, e := range initErrors {
			argErrs = append(argErrs, fmt.Sprintf(
				"Initialization of compressor '%s' failed: %s",
				compressorArgs[0],
				e,
			))
		}
		return
	}

	cl.compressor = compressorInstance
	return
}

func (cl *Cleave) setupEmitters() (argErrs []string) {

	emitters := cl.cfg.emitters

	for _, target := range []struct {
		flag      string
		requested []string
		out       io.Writer
	}{
		{"--emit-stderr", cl.cfg.emittersStdErr, cl.stderr},
		{"--emit-stdout", cl.cfg.emittersStdOut, cl.stdout},
	} {
		active := make(map[string]bool, len(target.requested))
		for _, s := range target.requested {
			active[s] = true
			if val, exists := emitters[s]; !exists {
				argErrs = append(argErrs, fmt.Sprintf("invalid emitter '%s' specified for %s. Available emitters are: %s",
					s,
					target.flag,
					availableMapKeys(emitters),
				))
			} else if s == emNone {
				continue
			} else if val != nil {
				argErrs = append(argErrs, fmt.Sprintf("Emitter '%s' specified more than once", s))
			} else {
				emitters[s] = target.out
			}
		}

		if active[emNone] && len(active) > 1 {
			argErrs = append(argErrs, fmt.Sprintf(
				"When specified, emitter '%s' must be the sole argument to %s",
				emNone,
				target.flag,
			))
		}
	}

	return
}

func (cl *Cleave) printUsage(out io.Writer) {
	cl.cfg.optSet.PrintUsage(out)
	fmt.Fprint(out, "\nOutput pieces of INPUT to PREFIXaa, PREFIXab, ...; default size is 1000 lines,\n"+
		"and default PREFIX is 'x'. With no INPUT, or when INPUT is -, read standard input.\n"+
		"SIZE may have a multiplier suffix: b for 512, k for 1K, m for 1 Meg.\n")

	if cl.cfg.HelpAll || len(cl.cfg.erroredCompressors) > 0 {
		printCompressorUsage(out, cl.cfg.erroredCompressors)
	} else {
		fmt.Fprint(out, "\nTry --help-all for more info\n\n")
	}
}

func printCompressorUsage(out io.Writer, listCompressors []string) {

	// if nothing was requested explicitly - list everything
	if len(listCompressors) == 0 {
		for name, initializer := range availableCompressors {
			if initializer != nil {
				listCompressors = append(listCompressors, name)
			}
		}
	}

	fmt.Fprint(out, "\n")
	sort.Strings(listCompressors)
	for _, name := range listCompressors {
		fmt.Fprintf(
			out,
			"[C]ompressor '%s'\n",
			name,
		)
		_, h := availableCompressors[name](nil)
		if len(h) == 0 {
			fmt.Fprint(out, "  -- no helptext available --\n\n")
		} else {
			fmt.Fprintln(out, strings.Join(h, "\n"))
		}
	}

	fmt.Fprint(out, "\n")
}

func availableMapKeys[V any](m map[string]V) string {
	avail := make([]string, 0, len(m))
	for k := range m {
		avail = append(avail, "'"+k+"'")
	}
	sort.Strings(avail)
	return strings.Join(avail, ", ")
}
