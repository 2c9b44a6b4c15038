package services

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/slotlab/slotcheck-cli/internal/core/domain"
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driven"
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driving"
	"github.com/slotlab/slotcheck-cli/internal/logger"
)

// Ensure PresetService implements the interface.
var _ driving.PresetService = (*PresetService)(nil)

// aspectTolerance is the relative aspect-ratio tolerance for the scaled
// match tier.
const aspectTolerance = 0.01

// PresetService manages calibration presets and resolves resolutions to
// the best stored preset through a three-tier classifier:
//
//   - exact: a preset exists for the exact width and height
//   - scaled: a preset shares the aspect ratio within tolerance; among
//     candidates the smallest area difference wins, ties broken by
//     lowest preset ID for determinism
//   - default: nothing usable is stored
type PresetService struct {
	store driven.PresetStore
}

// NewPresetService creates a new preset service.
func NewPresetService(store driven.PresetStore) *PresetService {
	return &PresetService{store: store}
}

// Save stores a preset for its resolution.
func (s *PresetService) Save(ctx context.Context, preset domain.CalibrationPreset) (*domain.CalibrationPreset, error) {
	if preset.Width <= 0 || preset.Height <= 0 {
		return nil, fmt.Errorf("%w: resolution %dx%d", domain.ErrInvalidInput, preset.Width, preset.Height)
	}
	if preset.ID == "" {
		preset.ID = uuid.NewString()
	}
	if err := s.store.Save(ctx, preset); err != nil {
		return nil, fmt.Errorf("saving preset: %w", err)
	}
	logger.Debug("saved preset %s for %dx%d", preset.ID, preset.Width, preset.Height)
	return &preset, nil
}

// Get returns the preset for an exact resolution.
func (s *PresetService) Get(ctx context.Context, width, height int) (*domain.CalibrationPreset, error) {
	return s.store.Get(ctx, width, height)
}

// Delete removes the preset for a resolution.
func (s *PresetService) Delete(ctx context.Context, width, height int) error {
	return s.store.Delete(ctx, width, height)
}

// List returns all stored presets.
func (s *PresetService) List(ctx context.Context) ([]domain.CalibrationPreset, error) {
	return s.store.List(ctx)
}

// Classify resolves a resolution to the best stored preset and the tier
// it matched at.
func (s *PresetService) Classify(ctx context.Context, width, height int) (*domain.CalibrationPreset, domain.ResolutionMatch, error) {
	if width <= 0 || height <= 0 {
		return nil, domain.MatchDefault, fmt.Errorf("%w: resolution %dx%d", domain.ErrInvalidInput, width, height)
	}

	exact, err := s.store.Get(ctx, width, height)
	if err == nil {
		return exact, domain.MatchExact, nil
	}

	presets, err := s.store.List(ctx)
	if err != nil {
		return nil, domain.MatchDefault, fmt.Errorf("listing presets: %w", err)
	}

	queryAspect := float64(width) / float64(height)
	queryArea := width * height

	var best *domain.CalibrationPreset
	bestDiff := math.MaxInt
	for i := range presets {
		p := presets[i]
		aspect := p.AspectRatio()
		if aspect == 0 || math.Abs(aspect-queryAspect)/queryAspect > aspectTolerance {
			continue
		}
		diff := p.Width*p.Height - queryArea
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff || (diff == bestDiff && best != nil && p.ID < best.ID) {
			best = &presets[i]
			bestDiff = diff
		}
	}

	if best == nil {
		return nil, domain.MatchDefault, nil
	}
	return best, domain.MatchScaled, nil
}
