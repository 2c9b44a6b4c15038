package memory

import (
	"context"
	"sync"

	"github.com/slotlab/slotcheck-cli/internal/core/domain"
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driven"
)

// Ensure TruthStore implements the interface.
var _ driven.GroundTruthStore = (*TruthStore)(nil)

// TruthStore is an in-memory implementation of driven.GroundTruthStore.
type TruthStore struct {
	mu      sync.RWMutex
	entries map[string]domain.GroundTruthEntry
}

// NewTruthStore creates an empty ground truth store.
func NewTruthStore() *TruthStore {
	return &TruthStore{
		entries: make(map[string]domain.GroundTruthEntry),
	}
}

// Save stores or replaces the labeling for an image.
func (s *TruthStore) Save(_ context.Context, entry domain.GroundTruthEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.ImagePath] = entry
	return nil
}

// Get returns the labeling for an image.
func (s *TruthStore) Get(_ context.Context, imagePath string) (*domain.GroundTruthEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[imagePath]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entry, nil
}

// Delete removes the labeling for an image.
func (s *TruthStore) Delete(_ context.Context, imagePath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, imagePath)
	return nil
}

// List returns all labelings.
func (s *TruthStore) List(_ context.Context) ([]domain.GroundTruthEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.GroundTruthEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		result = append(result, entry)
	}
	return result, nil
}
