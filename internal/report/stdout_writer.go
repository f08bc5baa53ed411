// Writer implementation printing conflict rows to STDOUT
package report

import (
	"encoding/json"
	"io"
	"os"
)

// StdoutWriter prints conflict events and summaries to STDOUT as JSONL.
type StdoutWriter struct {
	out io.Writer
}

// NewStdoutWriter creates a writer printing to STDOUT.
func NewStdoutWriter() *StdoutWriter {
	return &StdoutWriter{out: os.Stdout}
}

func (w *StdoutWriter) writer() io.Writer {
	if w.out == nil {
		return os.Stdout
	}
	return w.out
}

// WriteEvent outputs a single conflict row.
func (w *StdoutWriter) WriteEvent(row ConflictRow) error {
	return json.NewEncoder(w.writer()).Encode(row)
}

// WriteEvents outputs multiple conflict rows.
func (w *StdoutWriter) WriteEvents(rows []ConflictRow) error {
	for _, r := range rows {
		if err := w.WriteEvent(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary prints a check summary row to STDOUT.
func (w *StdoutWriter) WriteSummary(row SummaryRow) error {
	return json.NewEncoder(w.writer()).Encode(row)
}
