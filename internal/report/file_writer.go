package report

import (
	"encoding/json"
	"os"
)

// FileWriter writes conflict events and check summaries to JSONL files.
type FileWriter struct {
	eventFile   *os.File
	summaryFile *os.File
	eventEnc    *json.Encoder
	summaryEnc  *json.Encoder
}

// NewFileWriter creates a FileWriter. summaryPath may be empty to skip the
// summary log.
func NewFileWriter(eventPath, summaryPath string) (*FileWriter, error) {
	ef, err := os.Create(eventPath)
	if err != nil {
		return nil, err
	}
	fw := &FileWriter{eventFile: ef, eventEnc: json.NewEncoder(ef)}
	if summaryPath != "" {
		sf, err := os.Create(summaryPath)
		if err != nil {
			ef.Close()
			return nil, err
		}
		fw.summaryFile = sf
		fw.summaryEnc = json.NewEncoder(sf)
	}
	return fw, nil
}

// WriteEvent logs a single conflict row.
func (f *FileWriter) WriteEvent(row ConflictRow) error {
	return f.eventEnc.Encode(row)
}

// WriteEvents logs multiple conflict rows.
func (f *FileWriter) WriteEvents(rows []ConflictRow) error {
	for _, r := range rows {
		if err := f.WriteEvent(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary logs a check summary row, if enabled.
func (f *FileWriter) WriteSummary(row SummaryRow) error {
	if f.summaryEnc == nil {
		return nil
	}
	return f.summaryEnc.Encode(row)
}

// Close closes any underlying files.
func (f *FileWriter) Close() error {
	var err error
	if f.eventFile != nil {
		if e := f.eventFile.Close(); e != nil && err == nil {
			err = e
		}
	}
	if f.summaryFile != nil {
		if e := f.summaryFile.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}
