package factory

import (
	"fmt"
	"io"
	"log/slog"

	"housefactory/domain"
)

// WriterReporter prints each house's construction message as one line
type WriterReporter struct {
	w io.Writer
}

// NewWriterReporter constructs a WriterReporter writing to w
func NewWriterReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{w: w}
}

// Built writes the house message and a debug log record.
func (r *WriterReporter) Built(h domain.House) {
	slog.Debug("house built", "house_id", h.ID(), "kind", h.Kind())
	if _, err := fmt.Fprintln(r.w, h.Message()); err != nil {
		slog.Warn("report failed", "house_id", h.ID(), "error", err)
	}
}

type discard struct{}

// Built does nothing.
func (discard) Built(domain.House) {}

// Discard is a reporter that drops every report.
var Discard domain.Reporter = discard{}

var _ domain.Reporter = (*WriterReporter)(nil)
