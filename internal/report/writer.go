package report

// EventWriter is an interface to support different conflict-event sinks.
type EventWriter interface {
	WriteEvent(ConflictRow) error
}

// SummaryWriter handles per-check summary rows.
type SummaryWriter interface {
	WriteSummary(SummaryRow) error
}

// Optional: event writers may support batch mode
type batchEventWriter interface {
	WriteEvents([]ConflictRow) error
}

// WriteAll sends rows to w, using the batch fast path when available.
func WriteAll(w EventWriter, rows []ConflictRow) error {
	if bw, ok := w.(batchEventWriter); ok {
		return bw.WriteEvents(rows)
	}
	for _, r := range rows {
		if err := w.WriteEvent(r); err != nil {
			return err
		}
	}
	return nil
}
