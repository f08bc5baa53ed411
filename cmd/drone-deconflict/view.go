package main

import (
	"github.com/spf13/cobra"

	"drone-deconflict/internal/deconflict"
	"drone-deconflict/internal/loader"
	"drone-deconflict/internal/tui"
)

var (
	viewMissionsPath string
	viewConfigPath   string
	viewSchemaPath   string
	viewBuffer       float64
	viewSampleOnly   bool
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Run a check and browse the report interactively",
	Long:  "view runs conflict detection like check and opens the report in a terminal browser instead of writing rows to a sink.",
	RunE: func(cmd *cobra.Command, args []string) error {
		buffer, sampleOnly, _, err := detectionSettings(cmd, viewConfigPath, viewSchemaPath, viewBuffer, viewSampleOnly, "")
		if err != nil {
			return err
		}

		set, err := loader.Load(viewMissionsPath)
		if err != nil {
			return err
		}

		var opts []deconflict.Option
		if sampleOnly {
			opts = append(opts, deconflict.WithBreakpointSamplingOnly())
		}
		detector, err := deconflict.New(buffer, opts...)
		if err != nil {
			return err
		}
		rep, err := detector.CheckMission(set.Primary, set.Others)
		if err != nil {
			return err
		}

		return tui.Run(rep, buffer)
	},
}

func init() {
	viewCmd.Flags().StringVar(&viewMissionsPath, "missions", "", "Path to mission-set JSON (required)")
	viewCmd.Flags().StringVar(&viewConfigPath, "config", "", "Path to deconfliction configuration YAML")
	viewCmd.Flags().StringVar(&viewSchemaPath, "schema", "schemas/deconfliction.cue", "Path to CUE schema file")
	viewCmd.Flags().Float64Var(&viewBuffer, "buffer", 0, "Safety buffer in meters (overrides config)")
	viewCmd.Flags().BoolVar(&viewSampleOnly, "sampling-only", false, "Skip the analytic closest-approach check between sample instants")
	viewCmd.MarkFlagRequired("missions")
}
