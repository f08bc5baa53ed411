package report

import (
	"context"
	"testing"
	"time"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
)

type mockGreptimeClient struct {
	tables []*table.Table
}

func (m *mockGreptimeClient) Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error) {
	m.tables = append(m.tables, tables...)
	return &gpb.GreptimeResponse{}, nil
}

func TestGreptimeWriterEvents(t *testing.T) {
	m := &mockGreptimeClient{}
	w := &GreptimeDBWriter{client: m, eventTable: "conflict_events", summaryTable: "check_summaries"}

	rows := Rows("check-1", 10, sampleReport())
	if err := w.WriteEvents(rows); err != nil {
		t.Fatalf("WriteEvents: %v", err)
	}
	if len(m.tables) != 1 {
		t.Fatalf("expected one table write, got %d", len(m.tables))
	}
	got := m.tables[0].GetRows()
	if len(got.Rows) != 2 {
		t.Fatalf("row count = %d, want 2", len(got.Rows))
	}
	if got.Rows[0].Values[0].GetStringValue() != "check-1" {
		t.Errorf("check_id = %q, want check-1", got.Rows[0].Values[0].GetStringValue())
	}
}

func TestGreptimeWriterEmptyBatch(t *testing.T) {
	m := &mockGreptimeClient{}
	w := &GreptimeDBWriter{client: m, eventTable: "conflict_events"}
	if err := w.WriteEvents(nil); err != nil {
		t.Fatalf("WriteEvents(nil): %v", err)
	}
	if len(m.tables) != 0 {
		t.Errorf("empty batch still wrote %d tables", len(m.tables))
	}
}

func TestGreptimeWriterSummary(t *testing.T) {
	m := &mockGreptimeClient{}
	w := &GreptimeDBWriter{client: m, eventTable: "conflict_events", summaryTable: "check_summaries"}

	sum := Summary("check-1", "alpha", 10, 3, sampleReport(), time.Unix(0, 0).UTC())
	if err := w.WriteSummary(sum); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	if len(m.tables) != 1 {
		t.Fatalf("expected one table write, got %d", len(m.tables))
	}
	got := m.tables[0].GetRows()
	if len(got.Rows) != 1 {
		t.Fatalf("row count = %d, want 1", len(got.Rows))
	}
	if len(got.Schema) < 7 {
		t.Errorf("unexpected schema length: %d", len(got.Schema))
	}
}
