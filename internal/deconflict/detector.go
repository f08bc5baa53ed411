// Conflict detection between a primary mission and surrounding traffic.
package deconflict

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"drone-deconflict/internal/mission"
)

var (
	// ErrNegativeBuffer rejects detector construction with a negative
	// safety buffer.
	ErrNegativeBuffer = errors.New("safety buffer must be non-negative")

	// ErrInvalidMission marks input validation failures: nil missions or
	// duplicate drone ids among the inputs. The whole check aborts rather
	// than skipping the offending mission, so conflicts are never silently
	// under-reported.
	ErrInvalidMission = errors.New("invalid mission")
)

// Detector checks a primary mission against other missions for safety-buffer
// violations. A Detector is immutable after construction; concurrent
// CheckMission calls are safe.
type Detector struct {
	safetyBuffer float64
	sampleOnly   bool
}

// Option configures a Detector.
type Option func(*Detector)

// WithBreakpointSamplingOnly disables the analytic closest-approach check
// between consecutive sample instants. Separation is then evaluated only at
// the breakpoint-union sample instants, which can miss a minimum falling
// strictly inside a sub-interval. Useful for comparing against the cheaper
// sampling-only behavior; the default checks interior minima too.
func WithBreakpointSamplingOnly() Option {
	return func(d *Detector) { d.sampleOnly = true }
}

// New constructs a Detector. The safety buffer is the minimum separation in
// meters two drones must keep; there is no implicit default.
func New(safetyBuffer float64, opts ...Option) (*Detector, error) {
	if safetyBuffer < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNegativeBuffer, safetyBuffer)
	}
	d := &Detector{safetyBuffer: safetyBuffer}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// SafetyBuffer returns the configured minimum separation in meters.
func (d *Detector) SafetyBuffer() float64 { return d.safetyBuffer }

// CheckMission compares primary against each of the others and reports every
// instant where separation drops below the safety buffer. Pairs without
// temporal overlap are skipped. Events are ordered by input pair, then
// ascending in time. The call is deterministic and has no side effects.
func (d *Detector) CheckMission(primary *mission.Mission, others []*mission.Mission) (*Report, error) {
	if err := validateInputs(primary, others); err != nil {
		return nil, err
	}

	var events []Event
	for _, other := range others {
		events = append(events, d.checkPair(primary, other)...)
	}

	status := StatusClear
	if len(events) > 0 {
		status = StatusConflict
	}
	return &Report{Status: status, Events: events}, nil
}

func validateInputs(primary *mission.Mission, others []*mission.Mission) error {
	if primary == nil {
		return fmt.Errorf("%w: primary mission is nil", ErrInvalidMission)
	}
	seen := map[string]struct{}{primary.ID(): {}}
	for i, other := range others {
		if other == nil {
			return fmt.Errorf("%w: other mission %d is nil", ErrInvalidMission, i)
		}
		if _, dup := seen[other.ID()]; dup {
			return fmt.Errorf("%w: duplicate drone id %q", ErrInvalidMission, other.ID())
		}
		seen[other.ID()] = struct{}{}
	}
	return nil
}

// checkPair evaluates separation between two missions over their shared time
// window at the union of both missions' waypoint times plus the window
// endpoints.
func (d *Detector) checkPair(primary, other *mission.Mission) []Event {
	start := maxTime(primary.Start(), other.Start())
	end := minTime(primary.End(), other.End())
	if start.After(end) {
		return nil // no temporal overlap
	}

	samples := sampleInstants(primary, other, start, end)
	var events []Event
	for i, t := range samples {
		if ev, ok := d.eventAt(primary, other, t); ok {
			events = append(events, ev)
		}
		if !d.sampleOnly && i+1 < len(samples) {
			if ev, ok := d.interiorMinimum(primary, other, t, samples[i+1]); ok {
				events = append(events, ev)
			}
		}
	}
	return events
}

func (d *Detector) eventAt(primary, other *mission.Mission, t time.Time) (Event, bool) {
	posP, ok := primary.PositionAt(t)
	if !ok {
		return Event{}, false
	}
	posO, ok := other.PositionAt(t)
	if !ok {
		return Event{}, false
	}
	dist := posP.DistanceTo(posO)
	if dist >= d.safetyBuffer {
		return Event{}, false
	}
	return Event{
		PrimaryID:  primary.ID(),
		OtherID:    other.ID(),
		Time:       t,
		PrimaryPos: posP,
		OtherPos:   posO,
		Distance:   dist,
	}, true
}

// interiorMinimum finds the closest approach strictly between two consecutive
// sample instants. Both trajectories are linear on (from, to), so the squared
// separation is a quadratic in time and its minimum has a closed form.
func (d *Detector) interiorMinimum(primary, other *mission.Mission, from, to time.Time) (Event, bool) {
	span := to.Sub(from)
	if span <= 0 {
		return Event{}, false
	}
	p0, ok := primary.PositionAt(from)
	if !ok {
		return Event{}, false
	}
	p1, ok := primary.PositionAt(to)
	if !ok {
		return Event{}, false
	}
	o0, ok := other.PositionAt(from)
	if !ok {
		return Event{}, false
	}
	o1, ok := other.PositionAt(to)
	if !ok {
		return Event{}, false
	}

	// Relative motion r(s) = r0 + s*v for s in [0,1].
	r0x, r0y, r0z := p0.X-o0.X, p0.Y-o0.Y, p0.Z-o0.Z
	vx := (p1.X - o1.X) - r0x
	vy := (p1.Y - o1.Y) - r0y
	vz := (p1.Z - o1.Z) - r0z
	vv := vx*vx + vy*vy + vz*vz
	if vv == 0 {
		return Event{}, false // constant separation, endpoints already checked
	}
	s := -(r0x*vx + r0y*vy + r0z*vz) / vv
	if s <= 0 || s >= 1 {
		return Event{}, false // minimum at an endpoint, already sampled
	}

	t := from.Add(time.Duration(s * float64(span)))
	ev, ok := d.eventAt(primary, other, t)
	if !ok {
		return Event{}, false
	}
	return ev, true
}

// sampleInstants returns the distinct waypoint times of both missions inside
// [start, end] plus the window endpoints, ascending.
func sampleInstants(a, b *mission.Mission, start, end time.Time) []time.Time {
	instants := []time.Time{start, end}
	instants = append(instants, a.WaypointTimes(start, end)...)
	instants = append(instants, b.WaypointTimes(start, end)...)
	sort.Slice(instants, func(i, j int) bool { return instants[i].Before(instants[j]) })

	dedup := instants[:1]
	for _, t := range instants[1:] {
		if !t.Equal(dedup[len(dedup)-1]) {
			dedup = append(dedup, t)
		}
	}
	return dedup
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
