package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/slotlab/slotcheck-cli/internal/adapters/driven/storage/memory"
	"github.com/slotlab/slotcheck-cli/internal/core/services"
)

// setupTestServices wires the command tree to real services over
// in-memory stores. The returned cleanup restores the previous wiring.
func setupTestServices() func() {
	oldBatch := batchWorkflow
	oldReview := reviewService
	oldTruth := truthService
	oldPreset := presetService
	oldDetections := detectionStore
	oldLedger := correctionLedger

	detections := memory.NewDetectionStore()
	ledger := memory.NewLedger()
	truth := memory.NewTruthStore()
	presets := memory.NewPresetStore()

	SetServices(&Services{
		Batch:      services.NewBatchService(detections, ledger, services.Hooks{}),
		Review:     services.NewReviewService(detections, ledger, truth),
		Truth:      services.NewTruthService(truth, detections, ledger),
		Preset:     services.NewPresetService(presets),
		Detections: detections,
		Ledger:     ledger,
	})

	return func() {
		batchWorkflow = oldBatch
		reviewService = oldReview
		truthService = oldTruth
		presetService = oldPreset
		detectionStore = oldDetections
		correctionLedger = oldLedger
	}
}

// writeTempJSON writes content to a temp file and returns its path.
func writeTempJSON(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const testPassJSON = `{
  "image": "screenshots/inv_001.png",
  "width": 1920,
  "height": 1080,
  "slots": [
    {"index": 0, "item": "Rusty Sword", "confidence": 0.92,
     "alternatives": [{"item": "Iron Sword", "confidence": 0.41}]},
    {"index": 1, "item": "Health Potion", "confidence": 0.88},
    {"index": 2, "empty": true}
  ]
}`
