package cleave

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/anjor/cleave/internal/sink"
)

type statSummary struct {
	Input struct {
		Bytes      int64 `json:"bytes"`
		Characters int64 `json:"characters"`
		Lines      int64 `json:"lines"`
	} `json:"input"`
	FilesOpened int              `json:"files_opened"`
	Files       []sink.FileStats `json:"-"`
	SysStats    struct {
		ArgvExpanded []string `json:"argvExpanded,omitempty"`
		ArgvInitial  []string `json:"argvInitial,omitempty"`
		ElapsedNsecs int64    `json:"elapsedNanoseconds"`

		// zero where the platform has no getrusage
		sysUsage
	} `json:"sys"`
}

// Files returns the stats of every output file written so far
func (cl *Cleave) Files() []sink.FileStats { return cl.sink.Files() }

// OutputSummary writes the stats of the last run to every active emitter
func (cl *Cleave) OutputSummary() error {

	if w := cl.cfg.emitters[emStatsText]; w != nil {
		if err := cl.writeStatsText(w); err != nil {
			return errors.Wrapf(err, "emitting '%s' failed", emStatsText)
		}
	}

	if w := cl.cfg.emitters[emStatsJsonl]; w != nil {
		if err := cl.writeStatsJsonl(w); err != nil {
			return errors.Wrapf(err, "emitting '%s' failed", emStatsJsonl)
		}
	}

	return nil
}

func (cl *Cleave) writeStatsText(w io.Writer) error {
	smr := &cl.statSummary

	for _, f := range smr.Files {
		if _, err := fmt.Fprintf(
			w,
			"%s\t%s chars\t%s lines\t%s on disk\tsha256:%s\n",
			f.Name,
			humanize.Comma(f.Characters),
			humanize.Comma(f.Lines),
			humanize.IBytes(uint64(f.DiskBytes)),
			f.Sha256,
		); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(
		w,
		`
Split %s bytes ( %s characters, %s lines ) into %s files
Processing took %0.2f seconds using %0.2f vCPU and %s of peak memory
`,
		humanize.Comma(smr.Input.Bytes),
		humanize.Comma(smr.Input.Characters),
		humanize.Comma(smr.Input.Lines),
		humanize.Comma(int64(len(smr.Files))),
		float64(smr.SysStats.ElapsedNsecs)/float64(time.Second),
		cpuRatio(smr),
		humanize.IBytes(uint64(smr.SysStats.MaxRssBytes)),
	)
	return err
}

func cpuRatio(smr *statSummary) float64 {
	if smr.SysStats.ElapsedNsecs <= 0 {
		return 0
	}
	return float64(smr.SysStats.CpuUserNsecs+smr.SysStats.CpuSysNsecs) / float64(smr.SysStats.ElapsedNsecs)
}

type jsonlFileEvent struct {
	Event string `json:"event"`
	sink.FileStats
}

type jsonlSummaryEvent struct {
	Event    string `json:"event"`
	Strategy string `json:"strategy"`
	Target   uint64 `json:"target"`
	statSummary
}

func (cl *Cleave) writeStatsJsonl(w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, f := range cl.statSummary.Files {
		if err := enc.Encode(jsonlFileEvent{Event: "file", FileStats: f}); err != nil {
			return err
		}
	}

	return enc.Encode(jsonlSummaryEvent{
		Event:       "summary",
		Strategy:    cl.strategy.Kind().String(),
		Target:      cl.strategy.Target(),
		statSummary: cl.statSummary,
	})
}
