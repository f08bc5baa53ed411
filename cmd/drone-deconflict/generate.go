package main

import (
	"time"

	"github.com/spf13/cobra"

	"drone-deconflict/internal/config"
	"drone-deconflict/internal/generate"
	"drone-deconflict/internal/loader"
	"drone-deconflict/internal/logging"
)

var (
	genOutPath    string
	genConfigPath string
	genSchemaPath string
	genDrones     int
	genWaypoints  int
	genAreaSize   float64
	genMinAlt     float64
	genMaxAlt     float64
	genDuration   time.Duration
	genStagger    time.Duration
	genSeed       int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic mission-set JSON file",
	Long:  "generate produces a random primary mission plus traffic drones inside a square operating area, staggered in time, and writes them in the mission-set JSON format consumed by check.",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.New(rootVerbose)

		params := generate.Params{
			TrafficDrones:     genDrones,
			WaypointsPerDrone: genWaypoints,
			AreaSizeM:         genAreaSize,
			MinAltitudeM:      genMinAlt,
			MaxAltitudeM:      genMaxAlt,
			Duration:          genDuration,
			Stagger:           genStagger,
			Seed:              genSeed,
		}
		if genConfigPath != "" {
			cfg, err := config.Load(genConfigPath, genSchemaPath)
			if err != nil {
				return err
			}
			params = paramsFromConfig(cmd, params, cfg.Generation)
		}

		set, err := generate.New(params).MissionSet()
		if err != nil {
			return err
		}
		if err := loader.Save(genOutPath, set); err != nil {
			return err
		}

		log.Info("mission set generated",
			"path", genOutPath,
			"primary", set.Primary.ID(),
			"traffic", len(set.Others))
		return nil
	},
}

// paramsFromConfig fills in generation params from config for every flag the
// user did not set explicitly.
func paramsFromConfig(cmd *cobra.Command, p generate.Params, g config.Generation) generate.Params {
	if !cmd.Flags().Changed("drones") && g.TrafficDrones > 0 {
		p.TrafficDrones = g.TrafficDrones
	}
	if !cmd.Flags().Changed("waypoints") && g.WaypointsPerDrone > 0 {
		p.WaypointsPerDrone = g.WaypointsPerDrone
	}
	if !cmd.Flags().Changed("area") && g.AreaSizeM > 0 {
		p.AreaSizeM = g.AreaSizeM
	}
	if !cmd.Flags().Changed("min-alt") && g.MinAltitudeM > 0 {
		p.MinAltitudeM = g.MinAltitudeM
	}
	if !cmd.Flags().Changed("max-alt") && g.MaxAltitudeM > 0 {
		p.MaxAltitudeM = g.MaxAltitudeM
	}
	if !cmd.Flags().Changed("duration") && g.Duration > 0 {
		p.Duration = g.Duration
	}
	if !cmd.Flags().Changed("stagger") && g.Stagger > 0 {
		p.Stagger = g.Stagger
	}
	if !cmd.Flags().Changed("seed") && g.Seed != 0 {
		p.Seed = g.Seed
	}
	return p
}

func init() {
	generateCmd.Flags().StringVar(&genOutPath, "out", "missions.json", "Output path for the mission-set JSON")
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to deconfliction configuration YAML")
	generateCmd.Flags().StringVar(&genSchemaPath, "schema", "schemas/deconfliction.cue", "Path to CUE schema file")
	generateCmd.Flags().IntVar(&genDrones, "drones", 4, "Number of traffic drones")
	generateCmd.Flags().IntVar(&genWaypoints, "waypoints", 8, "Waypoints per mission")
	generateCmd.Flags().Float64Var(&genAreaSize, "area", 1000, "Operating area edge length in meters")
	generateCmd.Flags().Float64Var(&genMinAlt, "min-alt", 10, "Minimum altitude in meters")
	generateCmd.Flags().Float64Var(&genMaxAlt, "max-alt", 100, "Maximum altitude in meters")
	generateCmd.Flags().DurationVar(&genDuration, "duration", time.Hour, "Span of each mission")
	generateCmd.Flags().DurationVar(&genStagger, "stagger", 15*time.Minute, "Delay between consecutive mission starts")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (0 means time-based)")
}
