// YAML config loader with CUE validation integration
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Detection holds the detector parameters. The safety buffer is always
// explicit in config or on the command line; there is no built-in default.
type Detection struct {
	SafetyBufferM      float64 `yaml:"safety_buffer_m"`
	BreakpointSampling bool    `yaml:"breakpoint_sampling_only"`
}

// Generation holds parameters for synthetic traffic generation.
type Generation struct {
	TrafficDrones     int           `yaml:"traffic_drones"`
	WaypointsPerDrone int           `yaml:"waypoints_per_drone"`
	AreaSizeM         float64       `yaml:"area_size_m"`
	MinAltitudeM      float64       `yaml:"min_altitude_m"`
	MaxAltitudeM      float64       `yaml:"max_altitude_m"`
	Duration          time.Duration `yaml:"duration"`
	Stagger           time.Duration `yaml:"stagger"`
	Seed              int64         `yaml:"seed"`
}

// Output selects where conflict events and summaries go.
type Output struct {
	LogFile string `yaml:"log_file"`
}

// DeconflictionConfig is the root configuration.
type DeconflictionConfig struct {
	Detection  Detection  `yaml:"detection"`
	Generation Generation `yaml:"generation"`
	Output     Output     `yaml:"output"`
}

// Load loads YAML config and validates it against a CUE schema.
func Load(configPath, cueSchemaPath string) (*DeconflictionConfig, error) {
	if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	var cfg DeconflictionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
