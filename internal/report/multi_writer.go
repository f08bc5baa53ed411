package report

// MultiWriter fan-outs conflict events and summaries to multiple writers.
type MultiWriter struct {
	eventWriters   []EventWriter
	summaryWriters []SummaryWriter
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(ews []EventWriter, sws []SummaryWriter) *MultiWriter {
	return &MultiWriter{eventWriters: ews, summaryWriters: sws}
}

// WriteEvent sends a conflict row to all event writers.
func (mw *MultiWriter) WriteEvent(row ConflictRow) error {
	for _, w := range mw.eventWriters {
		if err := w.WriteEvent(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteEvents sends multiple conflict rows to all writers, using batch if supported.
func (mw *MultiWriter) WriteEvents(rows []ConflictRow) error {
	for _, w := range mw.eventWriters {
		if bw, ok := w.(batchEventWriter); ok {
			if err := bw.WriteEvents(rows); err != nil {
				return err
			}
			continue
		}
		for _, r := range rows {
			if err := w.WriteEvent(r); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteSummary sends a summary row to all summary writers.
func (mw *MultiWriter) WriteSummary(row SummaryRow) error {
	for _, w := range mw.summaryWriters {
		if err := w.WriteSummary(row); err != nil {
			return err
		}
	}
	return nil
}
