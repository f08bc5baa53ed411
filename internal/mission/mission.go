// Mission and waypoint value types with constructor-time validation.
package mission

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Position holds a 3D point in meters.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// DistanceTo returns the Euclidean distance to other in meters.
func (p Position) DistanceTo(other Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Waypoint is a timestamped position along a mission.
type Waypoint struct {
	Position Position  `json:"position"`
	Time     time.Time `json:"time"`
}

// Validation errors surfaced by New.
var (
	ErrEmptyID       = errors.New("mission id must not be empty")
	ErrNoWaypoints   = errors.New("mission must have at least one waypoint")
	ErrTimeNotSorted = errors.New("waypoint times must be non-decreasing")
)

// Mission is one drone's planned flight: an ordered waypoint sequence.
// Instances are immutable after construction; share them freely.
type Mission struct {
	id        string
	waypoints []Waypoint
}

// New validates and constructs a Mission. Waypoints must be ordered by
// non-decreasing time; the slice is copied so the caller keeps ownership.
func New(id string, waypoints []Waypoint) (*Mission, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if len(waypoints) == 0 {
		return nil, fmt.Errorf("mission %q: %w", id, ErrNoWaypoints)
	}
	for i := 1; i < len(waypoints); i++ {
		if waypoints[i].Time.Before(waypoints[i-1].Time) {
			return nil, fmt.Errorf("mission %q: waypoint %d precedes waypoint %d: %w",
				id, i, i-1, ErrTimeNotSorted)
		}
	}
	wps := make([]Waypoint, len(waypoints))
	copy(wps, waypoints)
	return &Mission{id: id, waypoints: wps}, nil
}

// ID returns the drone identifier.
func (m *Mission) ID() string { return m.id }

// Waypoints returns a copy of the waypoint sequence.
func (m *Mission) Waypoints() []Waypoint {
	wps := make([]Waypoint, len(m.waypoints))
	copy(wps, m.waypoints)
	return wps
}

// Start returns the time of the first waypoint.
func (m *Mission) Start() time.Time { return m.waypoints[0].Time }

// End returns the time of the last waypoint.
func (m *Mission) End() time.Time { return m.waypoints[len(m.waypoints)-1].Time }

// WaypointTimes returns every waypoint time within [from, to], inclusive.
func (m *Mission) WaypointTimes(from, to time.Time) []time.Time {
	var out []time.Time
	for _, wp := range m.waypoints {
		if wp.Time.Before(from) || wp.Time.After(to) {
			continue
		}
		out = append(out, wp.Time)
	}
	return out
}
