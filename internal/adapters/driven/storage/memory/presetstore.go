package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/slotlab/slotcheck-cli/internal/core/domain"
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driven"
)

// Ensure PresetStore implements the interface.
var _ driven.PresetStore = (*PresetStore)(nil)

// PresetStore is an in-memory implementation of driven.PresetStore.
type PresetStore struct {
	mu      sync.RWMutex
	presets map[string]domain.CalibrationPreset
}

// NewPresetStore creates an empty preset store.
func NewPresetStore() *PresetStore {
	return &PresetStore{
		presets: make(map[string]domain.CalibrationPreset),
	}
}

func resolutionKey(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}

// Save stores or replaces the preset for its resolution.
func (s *PresetStore) Save(_ context.Context, preset domain.CalibrationPreset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presets[resolutionKey(preset.Width, preset.Height)] = preset
	return nil
}

// Get returns the preset for an exact resolution.
func (s *PresetStore) Get(_ context.Context, width, height int) (*domain.CalibrationPreset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	preset, ok := s.presets[resolutionKey(width, height)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &preset, nil
}

// Delete removes the preset for a resolution.
func (s *PresetStore) Delete(_ context.Context, width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.presets, resolutionKey(width, height))
	return nil
}

// List returns all stored presets.
func (s *PresetStore) List(_ context.Context) ([]domain.CalibrationPreset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.CalibrationPreset, 0, len(s.presets))
	for _, preset := range s.presets {
		result = append(result, preset)
	}
	return result, nil
}
