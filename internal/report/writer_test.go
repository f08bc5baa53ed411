package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"drone-deconflict/internal/deconflict"
	"drone-deconflict/internal/mission"
)

func sampleReport() *deconflict.Report {
	t0 := time.Date(2026, 4, 10, 10, 0, 0, 0, time.UTC)
	return &deconflict.Report{
		Status: deconflict.StatusConflict,
		Events: []deconflict.Event{
			{
				PrimaryID:  "alpha",
				OtherID:    "bravo",
				Time:       t0.Add(5 * time.Second),
				PrimaryPos: mission.Position{X: 50},
				OtherPos:   mission.Position{X: 50},
				Distance:   0,
			},
			{
				PrimaryID:  "alpha",
				OtherID:    "charlie",
				Time:       t0.Add(8 * time.Second),
				PrimaryPos: mission.Position{X: 80},
				OtherPos:   mission.Position{X: 84},
				Distance:   4,
			},
		},
	}
}

func TestRows_FromReport(t *testing.T) {
	rows := Rows("check-1", 10, sampleReport())
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].CheckID != "check-1" || rows[0].OtherDroneID != "bravo" || rows[0].BufferM != 10 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].DistanceM != 4 {
		t.Errorf("distance = %v, want 4", rows[1].DistanceM)
	}
}

func TestStdoutWriter_JSONLines(t *testing.T) {
	buf := &bytes.Buffer{}
	w := &StdoutWriter{out: buf}
	rows := Rows("check-1", 10, sampleReport())
	if err := w.WriteEvents(rows); err != nil {
		t.Fatalf("WriteEvents: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	var decoded ConflictRow
	if err := json.Unmarshal([]byte(lines[0]), &decoded); err != nil {
		t.Fatalf("first line is not JSON: %v", err)
	}
	if decoded.PrimaryDroneID != "alpha" {
		t.Errorf("primary id = %q, want alpha", decoded.PrimaryDroneID)
	}
}

func TestFileWriter_EventsAndSummary(t *testing.T) {
	dir := t.TempDir()
	eventPath := filepath.Join(dir, "events.jsonl")
	summaryPath := filepath.Join(dir, "summary.jsonl")

	fw, err := NewFileWriter(eventPath, summaryPath)
	if err != nil {
		t.Fatalf("NewFileWriter: %v", err)
	}
	rep := sampleReport()
	if err := fw.WriteEvents(Rows("check-1", 10, rep)); err != nil {
		t.Fatalf("WriteEvents: %v", err)
	}
	sum := Summary("check-1", "alpha", 10, 2, rep, time.Unix(0, 0).UTC())
	if err := fw.WriteSummary(sum); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(eventPath)
	if err != nil {
		t.Fatalf("open events: %v", err)
	}
	defer f.Close()
	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var row ConflictRow
		if err := json.Unmarshal(scanner.Bytes(), &row); err != nil {
			t.Fatalf("line %d not JSON: %v", count, err)
		}
		count++
	}
	if count != 2 {
		t.Errorf("event file has %d rows, want 2", count)
	}

	sdata, err := os.ReadFile(summaryPath)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	var got SummaryRow
	if err := json.Unmarshal(bytes.TrimSpace(sdata), &got); err != nil {
		t.Fatalf("summary not JSON: %v", err)
	}
	if got.Status != string(deconflict.StatusConflict) || got.EventCount != 2 {
		t.Errorf("summary = %+v, want conflict with 2 events", got)
	}
}

func TestFileWriter_NoSummaryFile(t *testing.T) {
	fw, err := NewFileWriter(filepath.Join(t.TempDir(), "events.jsonl"), "")
	if err != nil {
		t.Fatalf("NewFileWriter: %v", err)
	}
	defer fw.Close()
	if err := fw.WriteSummary(SummaryRow{CheckID: "x"}); err != nil {
		t.Errorf("WriteSummary without file: %v", err)
	}
}

// collectWriter records rows for fan-out tests.
type collectWriter struct {
	events    []ConflictRow
	summaries []SummaryRow
	batches   int
}

func (c *collectWriter) WriteEvent(row ConflictRow) error {
	c.events = append(c.events, row)
	return nil
}

func (c *collectWriter) WriteSummary(row SummaryRow) error {
	c.summaries = append(c.summaries, row)
	return nil
}

// batchCollectWriter additionally supports the batch fast path.
type batchCollectWriter struct{ collectWriter }

func (c *batchCollectWriter) WriteEvents(rows []ConflictRow) error {
	c.batches++
	c.events = append(c.events, rows...)
	return nil
}

func TestMultiWriter_FanOut(t *testing.T) {
	a := &collectWriter{}
	b := &batchCollectWriter{}
	mw := NewMultiWriter([]EventWriter{a, b}, []SummaryWriter{a})

	rows := Rows("check-1", 10, sampleReport())
	if err := mw.WriteEvents(rows); err != nil {
		t.Fatalf("WriteEvents: %v", err)
	}
	if len(a.events) != 2 || len(b.events) != 2 {
		t.Errorf("fan-out events = %d/%d, want 2/2", len(a.events), len(b.events))
	}
	if b.batches != 1 {
		t.Errorf("batch path used %d times, want 1", b.batches)
	}

	if err := mw.WriteSummary(SummaryRow{CheckID: "check-1"}); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	if len(a.summaries) != 1 {
		t.Errorf("summaries = %d, want 1", len(a.summaries))
	}
}

func TestWriteAll_BatchFastPath(t *testing.T) {
	b := &batchCollectWriter{}
	if err := WriteAll(b, Rows("check-1", 10, sampleReport())); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if b.batches != 1 || len(b.events) != 2 {
		t.Errorf("batches = %d events = %d, want 1 and 2", b.batches, len(b.events))
	}
}
