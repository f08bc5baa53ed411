// Loader parses mission-set JSON files into validated Mission values.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"drone-deconflict/internal/mission"
)

// WaypointDoc is the wire form of a single waypoint.
type WaypointDoc struct {
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
	Z    float64   `json:"z"`
	Time time.Time `json:"time"`
}

// MissionDoc is the wire form of one mission.
type MissionDoc struct {
	DroneID   string        `json:"drone_id"`
	Waypoints []WaypointDoc `json:"waypoints"`
}

// Document is the wire form of a full mission set: the primary mission plus
// surrounding traffic.
type Document struct {
	Primary MissionDoc   `json:"primary_mission"`
	Others  []MissionDoc `json:"other_missions"`
}

// MissionSet is the loaded, validated in-memory form.
type MissionSet struct {
	Primary *mission.Mission
	Others  []*mission.Mission
}

// Load reads a mission-set JSON file. Construction errors (missing ids,
// empty waypoint lists, unsorted timestamps) are surfaced, never repaired.
func Load(path string) (*MissionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read missions: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a mission-set JSON document.
func Parse(data []byte) (*MissionSet, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse missions: %w", err)
	}

	primary, err := toMission(doc.Primary)
	if err != nil {
		return nil, fmt.Errorf("primary mission: %w", err)
	}
	set := &MissionSet{Primary: primary}
	for i, md := range doc.Others {
		m, err := toMission(md)
		if err != nil {
			return nil, fmt.Errorf("other mission %d: %w", i, err)
		}
		set.Others = append(set.Others, m)
	}
	return set, nil
}

func toMission(doc MissionDoc) (*mission.Mission, error) {
	wps := make([]mission.Waypoint, len(doc.Waypoints))
	for i, w := range doc.Waypoints {
		wps[i] = mission.Waypoint{
			Position: mission.Position{X: w.X, Y: w.Y, Z: w.Z},
			Time:     w.Time,
		}
	}
	return mission.New(doc.DroneID, wps)
}

// ToDocument converts a mission set back to its wire form, e.g. for writing
// generated traffic to disk.
func ToDocument(set *MissionSet) Document {
	doc := Document{Primary: toDoc(set.Primary)}
	for _, m := range set.Others {
		doc.Others = append(doc.Others, toDoc(m))
	}
	return doc
}

func toDoc(m *mission.Mission) MissionDoc {
	md := MissionDoc{DroneID: m.ID()}
	for _, wp := range m.Waypoints() {
		md.Waypoints = append(md.Waypoints, WaypointDoc{
			X:    wp.Position.X,
			Y:    wp.Position.Y,
			Z:    wp.Position.Z,
			Time: wp.Time,
		})
	}
	return md
}

// Save writes a mission set as indented JSON.
func Save(path string, set *MissionSet) error {
	data, err := json.MarshalIndent(ToDocument(set), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
