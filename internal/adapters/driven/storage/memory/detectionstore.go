// Package memory provides in-memory implementations of the driven
// storage ports. The detection store and correction ledger are the
// canonical runtime stores; the truth and preset stores back tests and
// the sqlite fallback path.
package memory

import (
	"sync"

	"github.com/slotlab/slotcheck-cli/internal/core/domain"
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driven"
)

// Ensure DetectionStore implements both sides of the port.
var (
	_ driven.DetectionStore       = (*DetectionStore)(nil)
	_ driven.DetectionStoreWriter = (*DetectionStore)(nil)
)

// DetectionStore is the in-memory detection pass for the loaded image.
type DetectionStore struct {
	mu         sync.RWMutex
	imagePath  string
	slots      map[int]domain.SlotDetection
	generation uint64
}

// NewDetectionStore creates an empty detection store.
func NewDetectionStore() *DetectionStore {
	return &DetectionStore{
		slots: make(map[int]domain.SlotDetection),
	}
}

// Replace swaps in a new detection pass, discarding the previous one.
func (s *DetectionStore) Replace(imagePath string, slots []domain.SlotDetection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imagePath = imagePath
	s.slots = make(map[int]domain.SlotDetection, len(slots))
	for _, slot := range slots {
		s.slots[slot.SlotIndex] = slot
	}
	s.generation++
}

// Get returns the entry for a slot index.
func (s *DetectionStore) Get(slotIndex int) (*domain.SlotDetection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slot, ok := s.slots[slotIndex]
	if !ok {
		return nil, false
	}
	return &slot, true
}

// List returns all entries in unspecified order.
func (s *DetectionStore) List() []domain.SlotDetection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.SlotDetection, 0, len(s.slots))
	for _, slot := range s.slots {
		result = append(result, slot)
	}
	return result
}

// Size returns the number of entries, counting empty markers.
func (s *DetectionStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

// ImagePath returns the path of the loaded image.
func (s *DetectionStore) ImagePath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.imagePath
}

// Generation returns the pass replacement counter.
func (s *DetectionStore) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}
