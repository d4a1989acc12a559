// Package fwf builds and parses fixed-width text files from explicit column
// layouts.
//
// A ColumnSpec declares one column's name, width, fill character, alignment,
// and population order. Producers registered on a Row supply column values;
// a FileHandler collects rows and writes them out as fixed-width lines, and
// reads such lines back using a Layout. Widths count Unicode code points,
// not bytes.
//
// Data that exceeds its column width is rejected, never truncated; so is
// data that contains a newline. Decoding is strict: every line must match
// the layout's total width exactly.
// Decoding strips fill characters, so data that itself begins or ends with a
// column's fill does not survive a round trip. Written lines are
// newline-terminated, including the last.
//
// Neither Rows nor FileHandlers are safe for concurrent use.
package fwf

import (
	"io"
	"log/slog"
	"sync/atomic"
)

var pkgLogger atomic.Pointer[slog.Logger]

// discardLogger stands in for slog.New(slog.DiscardHandler), which needs a
// newer Go than this build targets.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func init() {
	pkgLogger.Store(discardLogger())
}

// SetLogger routes the package's row-invalidation and export logging to l.
// Logging is discarded by default; passing nil restores that.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger()
	}
	pkgLogger.Store(l)
}

func logger() *slog.Logger {
	return pkgLogger.Load()
}
