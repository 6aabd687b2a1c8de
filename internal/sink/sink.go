// Package sink owns the single output file a split run is writing to.
package sink

import (
	"bufio"
	"encoding/hex"
	"hash"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/minio/sha256-simd"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/anjor/cleave/internal/compressor"
	"github.com/anjor/cleave/internal/constants"
	"github.com/anjor/cleave/internal/logging"
)

// FileStats describes one finished output file. Characters, Bytes and Lines
// refer to the content before compression, DiskBytes to the file itself.
type FileStats struct {
	Name       string `json:"name"`
	Characters int64  `json:"characters"`
	Bytes      int64  `json:"bytes"`
	Lines      int64  `json:"lines"`
	DiskBytes  int64  `json:"disk_bytes"`
	Sha256     string `json:"sha256"`
}

type Sink struct {
	_          constants.Incomparabe
	compressor compressor.Compressor

	fh     *os.File
	buf    *bufio.Writer
	stream io.WriteCloser
	hasher hash.Hash
	cur    FileStats

	finished []FileStats
	log      *zap.SugaredLogger
}

func New(c compressor.Compressor) *Sink {
	return &Sink{compressor: c, log: logging.Nop()}
}

// SetLogger replaces the logger receiving a debug record per finished file
func (s *Sink) SetLogger(l *zap.SugaredLogger) { s.log = l }

// Extension is what the compressor appends to every file name
func (s *Sink) Extension() string { return s.compressor.Extension() }

// IsOpen reports whether an output file is currently being written
func (s *Sink) IsOpen() bool { return s.fh != nil }

// Open finishes the current file, if any, and creates (or truncates) name.
func (s *Sink) Open(name string) error {
	if err := s.Close(); err != nil {
		return err
	}

	fh, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "unable to create output file '%s'", name)
	}

	s.fh = fh
	s.buf = bufio.NewWriterSize(fh, constants.WriteBufferSize)
	if s.stream, err = s.compressor.NewWriter(s.buf); err != nil {
		fh.Close() //nolint:errcheck
		s.fh = nil
		return errors.Wrapf(err, "unable to initialize compression for '%s'", name)
	}
	s.hasher = sha256.New()
	s.cur = FileStats{Name: name}

	return nil
}

// WriteString appends str to the current file. An empty str is a no-op.
func (s *Sink) WriteString(str string) error {
	if str == "" {
		return nil
	}
	if s.fh == nil {
		return errors.New("write without an open output file")
	}

	if _, err := io.WriteString(s.stream, str); err != nil {
		return errors.Wrapf(err, "write to '%s' failed", s.cur.Name)
	}
	io.WriteString(s.hasher, str) //nolint:errcheck

	s.cur.Bytes += int64(len(str))
	s.cur.Characters += int64(utf8.RuneCountInString(str))
	s.cur.Lines += int64(strings.Count(str, "\n"))

	return nil
}

// Close flushes and closes the current file. Calling it without an open
// file is a no-op.
func (s *Sink) Close() error {
	if s.fh == nil {
		return nil
	}

	fh, name := s.fh, s.cur.Name
	s.fh = nil

	err := s.stream.Close()
	if err == nil {
		err = s.buf.Flush()
	}
	if err != nil {
		fh.Close() //nolint:errcheck
		return errors.Wrapf(err, "flushing '%s' failed", name)
	}

	if st, statErr := fh.Stat(); statErr == nil {
		s.cur.DiskBytes = st.Size()
	}

	if err := fh.Close(); err != nil {
		return errors.Wrapf(err, "closing '%s' failed", name)
	}

	s.cur.Sha256 = hex.EncodeToString(s.hasher.Sum(nil))
	s.finished = append(s.finished, s.cur)
	s.log.Debugw("closed output file",
		"name", s.cur.Name,
		"characters", s.cur.Characters,
		"lines", s.cur.Lines,
		"disk_bytes", s.cur.DiskBytes,
	)
	s.cur = FileStats{}

	return nil
}

// Files returns the stats of every file closed so far, in creation order
func (s *Sink) Files() []FileStats { return s.finished }
