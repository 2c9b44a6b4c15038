package driven

import "github.com/slotlab/slotcheck-cli/internal/core/domain"

// CorrectionLedger is the authoritative mapping of slot index to the
// reviewer's correction. The batch workflow is its sole writer; resolvers
// and scorers only read. Set is an idempotent overwrite: recording a
// correction for an already-corrected slot replaces the previous entry
// wholesale. The ledger performs no validation; invariant upkeep is the
// workflow's responsibility.
type CorrectionLedger interface {
	// Set records or replaces the correction for a slot.
	Set(slotIndex int, c domain.Correction)

	// Get returns the correction for a slot.
	Get(slotIndex int) (*domain.Correction, bool)

	// Has reports whether a correction exists for a slot.
	Has(slotIndex int) bool

	// Delete removes the correction for a slot, if any.
	Delete(slotIndex int)

	// Size returns the number of corrected slots.
	Size() int

	// List returns all corrections keyed by slot index.
	List() map[int]domain.Correction

	// Clear removes every correction. Used when a new image is loaded.
	Clear()
}
