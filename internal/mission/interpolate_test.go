package mission

import (
	"math"
	"testing"
	"time"
)

func TestPositionAt_ExactAtWaypoints(t *testing.T) {
	wps := []Waypoint{
		wp(0, 0, 10, 0),
		wp(100, 50, 20, 10*time.Second),
		wp(200, 0, 30, 20*time.Second),
	}
	m, err := New("drone-1", wps)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	for i, w := range wps {
		got, ok := m.PositionAt(w.Time)
		if !ok {
			t.Fatalf("waypoint %d: not airborne at its own time", i)
		}
		if got != w.Position {
			t.Errorf("waypoint %d: PositionAt = %+v, want %+v", i, got, w.Position)
		}
	}
}

func TestPositionAt_MidpointIsAffine(t *testing.T) {
	m, err := New("drone-1", []Waypoint{
		wp(0, 0, 10, 0),
		wp(100, 40, 30, 10*time.Second),
	})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	got, ok := m.PositionAt(t0.Add(5 * time.Second))
	if !ok {
		t.Fatal("not airborne at midpoint")
	}
	want := Position{X: 50, Y: 20, Z: 20}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 || math.Abs(got.Z-want.Z) > 1e-9 {
		t.Errorf("PositionAt midpoint = %+v, want %+v", got, want)
	}
}

func TestPositionAt_OutsideSpan(t *testing.T) {
	m, err := New("drone-1", []Waypoint{
		wp(0, 0, 0, 0),
		wp(10, 0, 0, 10*time.Second),
	})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if _, ok := m.PositionAt(t0.Add(-time.Second)); ok {
		t.Error("airborne before mission start")
	}
	if _, ok := m.PositionAt(t0.Add(11 * time.Second)); ok {
		t.Error("airborne after mission end")
	}
}

func TestPositionAt_SingleWaypoint(t *testing.T) {
	m, err := New("drone-1", []Waypoint{wp(5, 6, 7, 0)})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	got, ok := m.PositionAt(t0)
	if !ok {
		t.Fatal("not airborne over zero-width span")
	}
	if got != (Position{X: 5, Y: 6, Z: 7}) {
		t.Errorf("PositionAt = %+v, want {5 6 7}", got)
	}
}

func TestPositionAt_SimultaneousWaypoints(t *testing.T) {
	// Two waypoints sharing a timestamp must not divide by zero; the earlier
	// position wins for that instant.
	m, err := New("drone-1", []Waypoint{
		wp(0, 0, 0, 0),
		wp(10, 0, 0, 5*time.Second),
		wp(99, 0, 0, 5*time.Second),
		wp(20, 0, 0, 10*time.Second),
	})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	got, ok := m.PositionAt(t0.Add(5 * time.Second))
	if !ok {
		t.Fatal("not airborne at shared timestamp")
	}
	if got.X != 10 {
		t.Errorf("PositionAt at shared timestamp: X = %v, want 10", got.X)
	}
}
