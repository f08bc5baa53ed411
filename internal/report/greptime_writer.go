package report

import (
	"context"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"
)

// greptimeClient abstracts the ingester client for testing.
type greptimeClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
}

// GreptimeDBWriter writes conflict events and check summaries to GreptimeDB
// via the ingester client.
type GreptimeDBWriter struct {
	client       greptimeClient
	eventTable   string
	summaryTable string
}

// NewGreptimeDBWriter creates a new GreptimeDB writer.
func NewGreptimeDBWriter(host, database string) (*GreptimeDBWriter, error) {
	cfg := greptime.NewConfig(host).WithDatabase(database)
	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &GreptimeDBWriter{
		client:       client,
		eventTable:   ConflictTableName,
		summaryTable: SummaryTableName,
	}, nil
}

// WriteEvent inserts a single conflict row.
func (w *GreptimeDBWriter) WriteEvent(row ConflictRow) error {
	return w.WriteEvents([]ConflictRow{row})
}

// WriteEvents inserts multiple conflict rows.
func (w *GreptimeDBWriter) WriteEvents(rows []ConflictRow) error {
	if len(rows) == 0 {
		return nil
	}

	tbl, err := table.New(w.eventTable)
	if err != nil {
		return err
	}
	tbl.AddTagColumn("check_id", types.STRING)
	tbl.AddTagColumn("primary_drone_id", types.STRING)
	tbl.AddTagColumn("other_drone_id", types.STRING)
	tbl.AddFieldColumn("primary_x", types.FLOAT)
	tbl.AddFieldColumn("primary_y", types.FLOAT)
	tbl.AddFieldColumn("primary_z", types.FLOAT)
	tbl.AddFieldColumn("other_x", types.FLOAT)
	tbl.AddFieldColumn("other_y", types.FLOAT)
	tbl.AddFieldColumn("other_z", types.FLOAT)
	tbl.AddFieldColumn("distance_m", types.FLOAT)
	tbl.AddFieldColumn("buffer_m", types.FLOAT)
	tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND)

	for _, r := range rows {
		if err := tbl.AddRow(r.CheckID, r.PrimaryDroneID, r.OtherDroneID,
			r.PrimaryX, r.PrimaryY, r.PrimaryZ,
			r.OtherX, r.OtherY, r.OtherZ,
			r.DistanceM, r.BufferM, r.Timestamp); err != nil {
			return err
		}
	}

	_, err = w.client.Write(context.Background(), tbl)
	return err
}

// WriteSummary inserts a check summary row.
func (w *GreptimeDBWriter) WriteSummary(row SummaryRow) error {
	tbl, err := table.New(w.summaryTable)
	if err != nil {
		return err
	}
	tbl.AddTagColumn("check_id", types.STRING)
	tbl.AddTagColumn("primary_drone_id", types.STRING)
	tbl.AddFieldColumn("status", types.STRING)
	tbl.AddFieldColumn("missions_checked", types.INT)
	tbl.AddFieldColumn("event_count", types.INT)
	tbl.AddFieldColumn("buffer_m", types.FLOAT)
	tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND)

	if err := tbl.AddRow(row.CheckID, row.PrimaryDroneID, row.Status,
		int64(row.MissionsChecked), int64(row.EventCount), row.BufferM, row.Timestamp); err != nil {
		return err
	}

	_, err = w.client.Write(context.Background(), tbl)
	return err
}
