package mcp

import (
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Review exposes the effective labeling and scoring.
	Review driving.ReviewService

	// Truth manages ground truth labelings.
	Truth driving.TruthService

	// Preset classifies resolutions against calibration presets.
	Preset driving.PresetService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Review == nil {
		return ErrMissingReviewService
	}
	// Truth and Preset are optional; their tools degrade gracefully.
	return nil
}
