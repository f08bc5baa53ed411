package main

import (
	"os"

	"drone-deconflict/internal/report"
)

// newWriters sets up event and summary writers based on flags and env vars.
// It returns the writers and a cleanup function to close any resources.
func newWriters(printOnly bool, logFile string) (report.EventWriter, report.SummaryWriter, func(), error) {
	cleanup := func() {}

	writer, summaryWriter, err := baseWriters(printOnly)
	if err != nil {
		return nil, nil, nil, err
	}
	if logFile == "" {
		return writer, summaryWriter, cleanup, nil
	}

	fw, err := report.NewFileWriter(logFile, logFile+".summary")
	if err != nil {
		return nil, nil, nil, err
	}
	mw := report.NewMultiWriter(
		[]report.EventWriter{writer, fw},
		[]report.SummaryWriter{summaryWriter, fw},
	)
	cleanup = func() { fw.Close() }
	return mw, mw, cleanup, nil
}

// baseWriters chooses the underlying writers based on printOnly flag and env vars.
func baseWriters(printOnly bool) (report.EventWriter, report.SummaryWriter, error) {
	if printOnly || os.Getenv("GREPTIMEDB_ENDPOINT") == "" {
		sw := report.NewStdoutWriter()
		return sw, sw, nil
	}

	endpoint := os.Getenv("GREPTIMEDB_ENDPOINT")
	database := os.Getenv("GREPTIMEDB_DATABASE")
	if database == "" {
		database = "public"
	}
	w, err := report.NewGreptimeDBWriter(endpoint, database)
	if err != nil {
		return nil, nil, err
	}
	return w, w, nil
}
