package cleave

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/anjor/cleave/internal/constants"
	"github.com/anjor/cleave/internal/strategy"
	"github.com/anjor/cleave/internal/suffix"
	"github.com/anjor/cleave/internal/util/stream"
)

// Run opens the configured input, splits it and, on success, writes out the
// requested stats.
func (cl *Cleave) Run(ctx context.Context) error {

	var inputReader io.Reader
	if cl.settings.Input == "-" {
		if stream.IsTTY(cl.stdin) {
			cl.log.Warn("reading from a terminal until EOF ( Ctrl+D )")
		}
		inputReader = cl.stdin
	} else {
		fh, err := os.Open(cl.settings.Input)
		if err != nil {
			return errors.Wrapf(err, "cannot open '%s' for reading", cl.settings.Input)
		}
		defer fh.Close() //nolint:errcheck

		if inStat, err := fh.Stat(); err != nil {
			cl.log.Warnf("unexpected error stat()ing '%s': %s", cl.settings.Input, err)
		} else if inStat.IsDir() {
			return errors.Errorf("cannot split '%s': is a directory", cl.settings.Input)
		} else {
			// An optimization returns os.ErrInvalid when it can't be applied to the file type
			for _, opt := range stream.ReadOptimizations {
				if err := opt.Action(fh, inStat); err != nil && err != os.ErrInvalid {
					cl.log.Warnf("failed to apply read optimization hint '%s' to '%s': %s", opt.Name, cl.settings.Input, err)
				}
			}
		}
		inputReader = fh
	}

	if err := cl.ProcessReader(ctx, inputReader); err != nil {
		return err
	}

	return cl.OutputSummary()
}

// ProcessReader splits everything readable from inputReader into output
// files. Only one line is held in memory at a time, and only one output
// file is open at a time. The last output file is flushed and closed
// before returning, even on error.
func (cl *Cleave) ProcessReader(ctx context.Context, inputReader io.Reader) (err error) {

	t0 := time.Now()
	ru0 := takeRusage()

	defer func() {
		if closeErr := cl.sink.Close(); err == nil {
			err = closeErr
		}

		cl.statSummary.SysStats.sysUsage = takeRusage().sub(ru0)
		cl.statSummary.Files = cl.sink.Files()
		cl.statSummary.SysStats.ElapsedNsecs = time.Since(t0).Nanoseconds()

		if err != nil {
			err = errors.Wrapf(
				err,
				"failure at input line %d (byte offset %d)",
				cl.statSummary.Input.Lines,
				cl.statSummary.Input.Bytes,
			)
		}
	}()

	reader := bufio.NewReaderSize(inputReader, constants.ReadBufferSize)

	ctl := strategy.Control{
		RequestNewFile: true,
	}

	for {
		if ctl.CurrentLine == "" {
			if err = ctx.Err(); err != nil {
				return
			}

			line, readErr := reader.ReadString('\n')
			if readErr != nil && readErr != io.EOF {
				return errors.Wrap(readErr, "read failed")
			}
			if line == "" {
				// EOF with nothing buffered: we are done
				return nil
			}

			cl.statSummary.Input.Bytes += int64(len(line))
			cl.statSummary.Input.Characters += int64(utf8.RuneCountInString(line))
			if line[len(line)-1] == '\n' {
				cl.statSummary.Input.Lines++
			}

			ctl.CurrentLine = line
		}

		if ctl.RequestNewFile {
			if err = cl.rollover(); err != nil {
				return
			}
			ctl.RequestNewFile = false
		}

		consumed := cl.strategy.Consume(&ctl)
		if err = cl.sink.WriteString(consumed); err != nil {
			return
		}
		ctl.CurrentLine = ctl.CurrentLine[len(consumed):]
	}
}

// rollover closes the current output file, if any, and opens the next one
func (cl *Cleave) rollover() error {

	name, err := cl.outputName(uint64(cl.statSummary.FilesOpened))
	if err != nil {
		return err
	}

	if cl.settings.Verbose {
		fmt.Fprintf(cl.stderr, "creating file '%s'\n", name)
	}

	if err := cl.sink.Open(name); err != nil {
		return err
	}
	cl.statSummary.FilesOpened++

	return nil
}

func (cl *Cleave) outputName(fileno uint64) (string, error) {
	sfx, err := suffix.Generate(fileno, cl.settings.SuffixLength, cl.settings.NumericSuffix)
	if err != nil {
		return "", err
	}
	return cl.settings.Prefix + sfx + cl.settings.AdditionalSuffix + cl.sink.Extension(), nil
}
