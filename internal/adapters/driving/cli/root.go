// Package cli implements the cobra command tree for slotcheck. Commands
// hold no business logic; they parse input, call driving ports, and
// format output. Services are injected once at startup via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/slotlab/slotcheck-cli/internal/core/ports/driven"
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driving"
	"github.com/slotlab/slotcheck-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "0.1.0-dev"

// Injected services. Nil checks in each command keep partial wiring
// (tests, future subsets) from panicking.
var (
	batchWorkflow    driving.BatchWorkflow
	reviewService    driving.ReviewService
	truthService     driving.TruthService
	presetService    driving.PresetService
	detectionStore   driven.DetectionStoreWriter
	correctionLedger driven.CorrectionLedger
)

// Services aggregates everything the command tree needs.
type Services struct {
	Batch      driving.BatchWorkflow
	Review     driving.ReviewService
	Truth      driving.TruthService
	Preset     driving.PresetService
	Detections driven.DetectionStoreWriter
	Ledger     driven.CorrectionLedger
}

// SetServices injects the services used by the commands.
func SetServices(s *Services) {
	batchWorkflow = s.Batch
	reviewService = s.Review
	truthService = s.Truth
	presetService = s.Preset
	detectionStore = s.Detections
	correctionLedger = s.Ledger
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "slotcheck",
	Short: "Review and correct inventory detection passes",
	Long: `Slotcheck validates object-detection output for game inventory
screenshots. Load a detection pass, review each slot in a rapid batch
session, and score the corrected labeling against ground truth.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		// The flag overrides the config value only when given
		// explicitly; the default must not clobber ui.verbose.
		if cmd.Flags().Changed("verbose") {
			logger.SetVerbose(verbose)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
