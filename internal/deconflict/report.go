package deconflict

import (
	"sort"
	"time"

	"drone-deconflict/internal/mission"
)

// Status summarizes a deconfliction check.
type Status string

const (
	StatusClear    Status = "clear"
	StatusConflict Status = "conflict"
)

// Event records one detected violation of the safety buffer. Events are
// created by the Detector and never mutated afterwards.
type Event struct {
	PrimaryID  string           `json:"primary_drone_id"`
	OtherID    string           `json:"other_drone_id"`
	Time       time.Time        `json:"time"`
	PrimaryPos mission.Position `json:"primary_position"`
	OtherPos   mission.Position `json:"other_position"`
	Distance   float64          `json:"distance_m"`
}

// Report is the detector's output: a status plus the events in detection
// order. Events is empty exactly when Status is StatusClear.
type Report struct {
	Status Status  `json:"status"`
	Events []Event `json:"events"`
}

// SortEvents orders events canonically by primary id, other id, then time.
// Detection order depends on input order; reports merged from shards or
// compared across runs should be normalized with this first.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.PrimaryID != b.PrimaryID {
			return a.PrimaryID < b.PrimaryID
		}
		if a.OtherID != b.OtherID {
			return a.OtherID < b.OtherID
		}
		return a.Time.Before(b.Time)
	})
}
