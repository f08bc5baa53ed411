package mission

import "time"

// PositionAt returns the drone's interpolated position at t. The second
// return value is false when t lies outside the mission's time span, meaning
// the drone is not airborne at that instant. This is a normal outcome, not
// an error; callers skip comparison for such instants.
//
// Motion is piecewise-linear between consecutive waypoints. A pair of
// waypoints sharing the same timestamp contributes the earlier position.
// A single-waypoint mission is a stationary point over its span.
func (m *Mission) PositionAt(t time.Time) (Position, bool) {
	if t.Before(m.Start()) || t.After(m.End()) {
		return Position{}, false
	}
	if len(m.waypoints) == 1 {
		return m.waypoints[0].Position, true
	}
	for i := 1; i < len(m.waypoints); i++ {
		a, b := m.waypoints[i-1], m.waypoints[i]
		if t.After(b.Time) {
			continue
		}
		span := b.Time.Sub(a.Time)
		if span == 0 {
			return a.Position, true
		}
		frac := float64(t.Sub(a.Time)) / float64(span)
		return lerp(a.Position, b.Position, frac), true
	}
	return m.waypoints[len(m.waypoints)-1].Position, true
}

func lerp(a, b Position, frac float64) Position {
	return Position{
		X: a.X + frac*(b.X-a.X),
		Y: a.Y + frac*(b.Y-a.Y),
		Z: a.Z + frac*(b.Z-a.Z),
	}
}
