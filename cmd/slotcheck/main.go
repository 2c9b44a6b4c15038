// Command slotcheck is the detection review tool for game inventory
// screenshots. It wires the storage adapters to the core services and
// hands control to the cobra command tree.
package main

import (
	"fmt"
	"os"

	configfile "github.com/slotlab/slotcheck-cli/internal/adapters/driven/config/file"
	"github.com/slotlab/slotcheck-cli/internal/adapters/driven/storage/memory"
	"github.com/slotlab/slotcheck-cli/internal/adapters/driven/storage/sqlite"
	"github.com/slotlab/slotcheck-cli/internal/adapters/driving/cli"
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driven"
	"github.com/slotlab/slotcheck-cli/internal/core/services"
	"github.com/slotlab/slotcheck-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if config.GetBool("ui.verbose") {
		logger.SetVerbose(true)
	}

	// The detection pass and correction ledger are session-scoped and
	// live in memory; truth and presets persist in sqlite.
	detections := memory.NewDetectionStore()
	ledger := memory.NewLedger()

	var (
		truthStore  driven.GroundTruthStore
		presetStore driven.PresetStore
	)

	store, err := sqlite.NewStore(config.GetString("storage.data_dir"))
	if err != nil {
		logger.Warn("sqlite unavailable, falling back to in-memory stores: %v", err)
		truthStore = memory.NewTruthStore()
		presetStore = memory.NewPresetStore()
	} else {
		defer store.Close()
		truthStore = store.TruthStore()
		presetStore = store.PresetStore()
	}

	cli.SetServices(&cli.Services{
		Batch:      services.NewBatchService(detections, ledger, services.Hooks{}),
		Review:     services.NewReviewService(detections, ledger, truthStore),
		Truth:      services.NewTruthService(truthStore, detections, ledger),
		Preset:     services.NewPresetService(presetStore),
		Detections: detections,
		Ledger:     ledger,
	})

	return cli.Execute()
}
