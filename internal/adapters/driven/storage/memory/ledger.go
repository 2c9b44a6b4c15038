package memory

import (
	"sync"

	"github.com/slotlab/slotcheck-cli/internal/core/domain"
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driven"
)

// Ensure Ledger implements the interface.
var _ driven.CorrectionLedger = (*Ledger)(nil)

// Ledger is the in-memory implementation of driven.CorrectionLedger.
type Ledger struct {
	mu          sync.RWMutex
	corrections map[int]domain.Correction
}

// NewLedger creates an empty correction ledger.
func NewLedger() *Ledger {
	return &Ledger{
		corrections: make(map[int]domain.Correction),
	}
}

// Set records or replaces the correction for a slot.
func (l *Ledger) Set(slotIndex int, c domain.Correction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.corrections[slotIndex] = c
}

// Get returns the correction for a slot.
func (l *Ledger) Get(slotIndex int) (*domain.Correction, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.corrections[slotIndex]
	if !ok {
		return nil, false
	}
	return &c, true
}

// Has reports whether a correction exists for a slot.
func (l *Ledger) Has(slotIndex int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.corrections[slotIndex]
	return ok
}

// Delete removes the correction for a slot, if any.
func (l *Ledger) Delete(slotIndex int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.corrections, slotIndex)
}

// Size returns the number of corrected slots.
func (l *Ledger) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.corrections)
}

// List returns a copy of all corrections keyed by slot index.
func (l *Ledger) List() map[int]domain.Correction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make(map[int]domain.Correction, len(l.corrections))
	for k, v := range l.corrections {
		result[k] = v
	}
	return result
}

// Clear removes every correction.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.corrections = make(map[int]domain.Correction)
}
