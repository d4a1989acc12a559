package fwf

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// WriteMode selects how Export treats an existing file.
type WriteMode int

const (
	// Exclusive creates the file and fails if it already exists. This is
	// the default.
	Exclusive WriteMode = iota
	// Truncate replaces any existing file.
	Truncate
	// Append adds lines to the end of an existing file.
	Append
)

func (m WriteMode) String() string {
	switch m {
	case Exclusive:
		return "exclusive"
	case Truncate:
		return "truncate"
	case Append:
		return "append"
	default:
		return fmt.Sprintf("WriteMode(%d)", int(m))
	}
}

func (m WriteMode) flags() int {
	switch m {
	case Truncate:
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case Append:
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND
	default:
		return os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
}

// ExportStats reports what an export produced. Written counts data lines,
// not the header; Skipped counts invalid rows left out.
type ExportStats struct {
	Written int
	Skipped int
}

// A FileHandler collects Rows and writes them out as a fixed-width file.
// Rows keep their registration order in the output. The zero FileHandler is
// usable; it is not safe for concurrent use.
type FileHandler struct {
	rows []*Row
	log  *slog.Logger
}

// A HandlerOption configures a FileHandler.
type HandlerOption func(*FileHandler)

// WithLogger routes the handler's export logging to l instead of the
// package logger.
func WithLogger(l *slog.Logger) HandlerOption {
	return func(h *FileHandler) { h.log = l }
}

// NewFileHandler builds an empty FileHandler.
func NewFileHandler(opts ...HandlerOption) *FileHandler {
	h := &FileHandler{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *FileHandler) logger() *slog.Logger {
	if h.log != nil {
		return h.log
	}
	return logger()
}

// AddRow appends a row to the handler. A nil row is rejected with
// ErrInvalidRow.
func (h *FileHandler) AddRow(r *Row) error {
	if r == nil {
		return ErrInvalidRow
	}
	h.rows = append(h.rows, r)
	return nil
}

// Len returns the number of rows added so far, valid or not.
func (h *FileHandler) Len() int { return len(h.rows) }

// Rows returns the rows in registration order.
func (h *FileHandler) Rows() []*Row { return slices.Clone(h.rows) }

// An ExportOption configures one Encode or Export call.
type ExportOption func(*exportConfig)

type exportConfig struct {
	header bool
	mode   WriteMode
}

// WithHeader prefixes the output with a header line: the column names of
// the first written row, shaped by their own specs.
func WithHeader() ExportOption {
	return func(c *exportConfig) { c.header = true }
}

// WithMode sets how Export opens the target file. Encode ignores it.
func WithMode(m WriteMode) ExportOption {
	return func(c *exportConfig) { c.mode = m }
}

// Encode writes the handler's rows to w, one fixed-width line per valid
// row, each line newline-terminated. Rows that are invalid, or that become
// invalid while populating, are skipped and counted in the returned stats.
// A handler with no rows at all fails with ErrEmptyExport; a handler whose
// rows are all invalid writes nothing and succeeds.
func (h *FileHandler) Encode(w io.Writer, opts ...ExportOption) (ExportStats, error) {
	var cfg exportConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var stats ExportStats
	if len(h.rows) == 0 {
		return stats, ErrEmptyExport
	}

	bw := bufio.NewWriter(w)
	headerWritten := false
	for i, row := range h.rows {
		columns := row.Populate()
		if !row.Valid() {
			stats.Skipped++
			h.logger().Warn("skipping invalid row",
				slog.Int("row", i),
				slog.String("reason", row.Reason()))
			continue
		}
		if cfg.header && !headerWritten {
			for _, c := range columns {
				spec := c.Spec()
				bw.WriteString(shape(truncate(spec.Name(), spec.Width()), spec))
			}
			bw.WriteByte('\n')
			headerWritten = true
		}
		for _, c := range columns {
			bw.WriteString(c.Shaped())
		}
		bw.WriteByte('\n')
		stats.Written++
	}
	if err := bw.Flush(); err != nil {
		return stats, errors.Wrap(err, "fwf: encode")
	}
	return stats, nil
}

// Export writes the handler's rows to the file at path. The default
// Exclusive mode refuses to overwrite an existing file; see WriteMode for
// the alternatives. An empty handler fails with ErrEmptyExport before the
// file is touched. A write failure partway through leaves the partial file
// in place.
func (h *FileHandler) Export(path string, opts ...ExportOption) (stats ExportStats, err error) {
	var cfg exportConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(h.rows) == 0 {
		return stats, ErrEmptyExport
	}

	f, err := os.OpenFile(path, cfg.mode.flags(), 0o644)
	if err != nil {
		return stats, errors.Wrap(err, "fwf: export")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "fwf: export")
		}
	}()

	stats, err = h.Encode(f, opts...)
	if err != nil {
		return stats, err
	}
	h.logger().Info("exported",
		slog.String("path", path),
		slog.String("mode", cfg.mode.String()),
		slog.Int("written", stats.Written),
		slog.Int("skipped", stats.Skipped))
	return stats, nil
}

// A DecodeOption configures one Decode or Import call.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	skipHeader bool
}

// SkipHeader discards the first line of the input, for files written with
// WithHeader.
func SkipHeader() DecodeOption {
	return func(c *decodeConfig) { c.skipHeader = true }
}

// Decode reads fixed-width lines from r and materializes them as populated
// Rows using layout. Decoding is strict: every line must be exactly the
// layout's total width in runes, and a short or long line fails with a
// *LineLengthError. Column values have their spec's fill character trimmed
// from both ends. A final newline is optional; empty input yields no rows.
func Decode(r io.Reader, layout Layout, opts ...DecodeOption) ([]*Row, error) {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	var (
		rows []*Row
		br   = bufio.NewReader(r)
		want = layout.TotalWidth()
	)
	for ln := 1; ; ln++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "fwf: decode")
		}
		done := err == io.EOF
		line = strings.TrimSuffix(line, "\n")
		if done && line == "" {
			break
		}
		if cfg.skipHeader && ln == 1 {
			if done {
				break
			}
			continue
		}

		runes := []rune(line)
		if len(runes) != want {
			return nil, &LineLengthError{Line: ln, Want: want, Got: len(runes)}
		}
		columns := make([]Column, len(layout))
		pos := 0
		for i, spec := range layout {
			raw := string(runes[pos : pos+spec.Width()])
			pos += spec.Width()
			col, err := NewColumn(strings.Trim(raw, string(spec.Fill())), spec)
			if err != nil {
				return nil, err
			}
			columns[i] = col
		}
		rows = append(rows, newPopulatedRow(columns))

		if done {
			break
		}
	}
	return rows, nil
}

// Import reads the fixed-width file at path into populated Rows using
// layout.
func Import(path string, layout Layout, opts ...DecodeOption) ([]*Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "fwf: import")
	}
	defer f.Close()

	rows, err := Decode(f, layout, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "fwf: import %s", path)
	}
	return rows, nil
}
