package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"drone-deconflict/internal/config"
	"drone-deconflict/internal/deconflict"
	"drone-deconflict/internal/loader"
	"drone-deconflict/internal/logging"
	"drone-deconflict/internal/report"
)

var (
	checkMissionsPath string
	checkConfigPath   string
	checkSchemaPath   string
	checkBuffer       float64
	checkSampleOnly   bool
	checkLogFile      string
	checkPrintOnly    bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a mission set for safety-buffer violations",
	Long:  "check loads a mission-set JSON file, runs conflict detection between the primary mission and all traffic, and writes the resulting events and summary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.New(rootVerbose)

		buffer, sampleOnly, logFile, err := detectionSettings(cmd, checkConfigPath, checkSchemaPath, checkBuffer, checkSampleOnly, checkLogFile)
		if err != nil {
			return err
		}

		set, err := loader.Load(checkMissionsPath)
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

		writer, summaryWriter, cleanup, err := newWriters(checkPrintOnly, logFile)
		if err != nil {
			return err
		}
		defer cleanup()

		checkID := uuid.New().String()
		if err := report.WriteAll(writer, report.Rows(checkID, buffer, rep)); err != nil {
			return err
		}
		if summaryWriter != nil {
			sum := report.Summary(checkID, set.Primary.ID(), buffer, len(set.Others), rep, time.Now().UTC())
			if err := summaryWriter.WriteSummary(sum); err != nil {
				return err
			}
		}

		log.Info("check complete",
			"check_id", checkID,
			"status", rep.Status,
			"events", len(rep.Events),
			"missions_checked", len(set.Others),
			"buffer_m", buffer)
		return nil
	},
}

// detectionSettings resolves the safety buffer and sampling mode from config
// and flags. The buffer is never defaulted: it must come from the config file
// or the --buffer flag.
func detectionSettings(cmd *cobra.Command, configPath, schemaPath string, flagBuffer float64, flagSampleOnly bool, flagLogFile string) (buffer float64, sampleOnly bool, logFile string, err error) {
	sampleOnly = flagSampleOnly
	logFile = flagLogFile
	haveBuffer := cmd.Flags().Changed("buffer")
	if haveBuffer {
		buffer = flagBuffer
	}

	if configPath != "" {
		cfg, cfgErr := config.Load(configPath, schemaPath)
		if cfgErr != nil {
			return 0, false, "", cfgErr
		}
		if !haveBuffer {
			buffer = cfg.Detection.SafetyBufferM
			haveBuffer = true
		}
		if !cmd.Flags().Changed("sampling-only") {
			sampleOnly = cfg.Detection.BreakpointSampling
		}
		if logFile == "" {
			logFile = cfg.Output.LogFile
		}
	}

	if !haveBuffer {
		return 0, false, "", fmt.Errorf("safety buffer required: pass --buffer or a config file")
	}
	return buffer, sampleOnly, logFile, nil
}

func init() {
	checkCmd.Flags().StringVar(&checkMissionsPath, "missions", "", "Path to mission-set JSON (required)")
	checkCmd.Flags().StringVar(&checkConfigPath, "config", "", "Path to deconfliction configuration YAML")
	checkCmd.Flags().StringVar(&checkSchemaPath, "schema", "schemas/deconfliction.cue", "Path to CUE schema file")
	checkCmd.Flags().Float64Var(&checkBuffer, "buffer", 0, "Safety buffer in meters (overrides config)")
	checkCmd.Flags().BoolVar(&checkSampleOnly, "sampling-only", false, "Skip the analytic closest-approach check between sample instants")
	checkCmd.Flags().StringVar(&checkLogFile, "log-file", "", "Path to export conflict events (JSONL)")
	checkCmd.Flags().BoolVar(&checkPrintOnly, "print-only", false, "Print events to STDOUT instead of writing to DB")
	checkCmd.MarkFlagRequired("missions")
}
