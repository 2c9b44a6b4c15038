package driving

import (
	"context"

	"github.com/slotlab/slotcheck-cli/internal/core/domain"
)

// PresetService manages calibration presets and classifies query
// resolutions against them.
type PresetService interface {
	// Save stores a preset for its resolution, replacing any existing
	// preset at that resolution.
	Save(ctx context.Context, preset domain.CalibrationPreset) (*domain.CalibrationPreset, error)

	// Get returns the preset for an exact resolution.
	Get(ctx context.Context, width, height int) (*domain.CalibrationPreset, error)

	// Delete removes the preset for a resolution.
	Delete(ctx context.Context, width, height int) error

	// List returns all stored presets.
	List(ctx context.Context) ([]domain.CalibrationPreset, error)

	// Classify resolves a resolution to the best stored preset and the
	// tier it matched at. The preset is nil for MatchDefault.
	Classify(ctx context.Context, width, height int) (*domain.CalibrationPreset, domain.ResolutionMatch, error)
}
