// Row types for conflict-report sinks, with greptime tags
package report

import (
	"os"
	"time"

	"drone-deconflict/internal/deconflict"
)

// ConflictRow represents one conflict event record for a sink.
type ConflictRow struct {
	CheckID        string    `json:"check_id"`         // TAG
	PrimaryDroneID string    `json:"primary_drone_id"` // TAG
	OtherDroneID   string    `json:"other_drone_id"`   // TAG
	PrimaryX       float64   `json:"primary_x"`        // FIELD
	PrimaryY       float64   `json:"primary_y"`        // FIELD
	PrimaryZ       float64   `json:"primary_z"`        // FIELD
	OtherX         float64   `json:"other_x"`          // FIELD
	OtherY         float64   `json:"other_y"`          // FIELD
	OtherZ         float64   `json:"other_z"`          // FIELD
	DistanceM      float64   `json:"distance_m"`       // FIELD
	BufferM        float64   `json:"buffer_m"`         // FIELD
	Timestamp      time.Time `json:"ts"`               // TIME INDEX
}

// SummaryRow represents the outcome of one deconfliction check.
type SummaryRow struct {
	CheckID         string    `json:"check_id"`         // TAG
	PrimaryDroneID  string    `json:"primary_drone_id"` // TAG
	Status          string    `json:"status"`           // FIELD
	MissionsChecked int       `json:"missions_checked"` // FIELD
	EventCount      int       `json:"event_count"`      // FIELD
	BufferM         float64   `json:"buffer_m"`         // FIELD
	Timestamp       time.Time `json:"ts"`               // TIME INDEX
}

// ConflictTableName holds the table name used when writing conflict events
// to GreptimeDB. It defaults to "conflict_events" but can be overridden via
// the CONFLICT_EVENT_TABLE environment variable.
var ConflictTableName = func() string {
	if env := os.Getenv("CONFLICT_EVENT_TABLE"); env != "" {
		return env
	}
	return "conflict_events"
}()

// SummaryTableName is the GreptimeDB table for check summaries, overridable
// via CHECK_SUMMARY_TABLE.
var SummaryTableName = func() string {
	if env := os.Getenv("CHECK_SUMMARY_TABLE"); env != "" {
		return env
	}
	return "check_summaries"
}()

// Rows converts a detector report into sink rows. The event's own time is
// the row's time index.
func Rows(checkID string, bufferM float64, rep *deconflict.Report) []ConflictRow {
	rows := make([]ConflictRow, 0, len(rep.Events))
	for _, ev := range rep.Events {
		rows = append(rows, ConflictRow{
			CheckID:        checkID,
			PrimaryDroneID: ev.PrimaryID,
			OtherDroneID:   ev.OtherID,
			PrimaryX:       ev.PrimaryPos.X,
			PrimaryY:       ev.PrimaryPos.Y,
			PrimaryZ:       ev.PrimaryPos.Z,
			OtherX:         ev.OtherPos.X,
			OtherY:         ev.OtherPos.Y,
			OtherZ:         ev.OtherPos.Z,
			DistanceM:      ev.Distance,
			BufferM:        bufferM,
			Timestamp:      ev.Time,
		})
	}
	return rows
}

// Summary builds the summary row for a completed check.
func Summary(checkID, primaryID string, bufferM float64, missionsChecked int, rep *deconflict.Report, at time.Time) SummaryRow {
	return SummaryRow{
		CheckID:         checkID,
		PrimaryDroneID:  primaryID,
		Status:          string(rep.Status),
		MissionsChecked: missionsChecked,
		EventCount:      len(rep.Events),
		BufferM:         bufferM,
		Timestamp:       at,
	}
}
