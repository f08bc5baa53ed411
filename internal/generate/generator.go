// Synthetic mission generation for exercising the detector.
package generate

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"drone-deconflict/internal/loader"
	"drone-deconflict/internal/mission"
)

// Params controls synthetic mission generation.
type Params struct {
	TrafficDrones     int           // number of traffic missions besides the primary
	WaypointsPerDrone int           // waypoints per mission, min 2
	AreaSizeM         float64       // square operating area edge length, meters
	MinAltitudeM      float64       // altitude band lower bound
	MaxAltitudeM      float64       // altitude band upper bound
	Duration          time.Duration // span of each mission
	Stagger           time.Duration // delay between consecutive mission starts
	Start             time.Time     // primary mission start; zero means now
	Seed              int64         // rand seed; zero means time-based
}

// Generator produces random mission sets within an operating area.
type Generator struct {
	params Params
	rng    *rand.Rand
}

// New creates a Generator. Invalid params are normalized to usable minimums
// rather than rejected; generation is tooling, not the safety core.
func New(params Params) *Generator {
	if params.TrafficDrones < 0 {
		params.TrafficDrones = 0
	}
	if params.WaypointsPerDrone < 2 {
		params.WaypointsPerDrone = 2
	}
	if params.AreaSizeM <= 0 {
		params.AreaSizeM = 1000
	}
	if params.MaxAltitudeM < params.MinAltitudeM {
		params.MaxAltitudeM = params.MinAltitudeM
	}
	if params.Duration <= 0 {
		params.Duration = time.Hour
	}
	if params.Start.IsZero() {
		params.Start = time.Now().UTC()
	}
	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{params: params, rng: rand.New(rand.NewSource(seed))}
}

// MissionSet generates one primary mission plus the configured traffic, with
// staggered start times.
func (g *Generator) MissionSet() (*loader.MissionSet, error) {
	primary, err := g.missionAt("primary-"+shortID(), g.params.Start)
	if err != nil {
		return nil, err
	}
	set := &loader.MissionSet{Primary: primary}
	for i := 0; i < g.params.TrafficDrones; i++ {
		start := g.params.Start.Add(time.Duration(i+1) * g.params.Stagger)
		id := fmt.Sprintf("traffic-%d-%s", i+1, shortID())
		m, err := g.missionAt(id, start)
		if err != nil {
			return nil, err
		}
		set.Others = append(set.Others, m)
	}
	return set, nil
}

func (g *Generator) missionAt(id string, start time.Time) (*mission.Mission, error) {
	n := g.params.WaypointsPerDrone
	step := g.params.Duration / time.Duration(n-1)
	wps := make([]mission.Waypoint, n)
	for i := range wps {
		wps[i] = mission.Waypoint{
			Position: mission.Position{
				X: g.rng.Float64() * g.params.AreaSizeM,
				Y: g.rng.Float64() * g.params.AreaSizeM,
				Z: g.params.MinAltitudeM + g.rng.Float64()*(g.params.MaxAltitudeM-g.params.MinAltitudeM),
			},
			Time: start.Add(time.Duration(i) * step),
		}
	}
	return mission.New(id, wps)
}

func shortID() string {
	return uuid.New().String()[:8]
}
