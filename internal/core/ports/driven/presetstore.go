package driven

import (
	"context"

	"github.com/slotlab/slotcheck-cli/internal/core/domain"
)

// PresetStore persists calibration presets keyed by screen resolution.
type PresetStore interface {
	// Save stores or replaces the preset for its resolution.
	Save(ctx context.Context, preset domain.CalibrationPreset) error

	// Get returns the preset for an exact resolution.
	// Returns domain.ErrNotFound if none exists.
	Get(ctx context.Context, width, height int) (*domain.CalibrationPreset, error)

	// Delete removes the preset for a resolution.
	Delete(ctx context.Context, width, height int) error

	// List returns all stored presets.
	List(ctx context.Context) ([]domain.CalibrationPreset, error)
}
