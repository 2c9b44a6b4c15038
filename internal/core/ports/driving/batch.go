package driving

import "github.com/slotlab/slotcheck-cli/internal/core/domain"

// BatchWorkflow drives a rapid-review session over every slot of the
// current image. It is the sole writer of the correction ledger.
//
// The workflow is a two-state machine: Inactive and Active. Enter moves
// it to Active; Finish (or an escape action) moves it back. While Active,
// every action self-loops with ledger and cursor mutation as documented
// on the method. All actions are no-ops on an empty queue.
type BatchWorkflow interface {
	// Active reports whether a session is running.
	Active() bool

	// Stale reports whether the detection pass was replaced after the
	// session was built. A stale session keeps working against its
	// snapshot; the UI tells the reviewer to finish and re-enter.
	Stale() bool

	// Enter starts a session. The guard requires a loaded image and at
	// least one slot (detections or empty markers); on guard failure it
	// returns domain.ErrNothingToReview and mutates nothing. Starting
	// over a running session returns domain.ErrSessionActive.
	Enter() error

	// Finish ends the session and returns its summary.
	// Returns domain.ErrNoActiveSession when no session is running.
	Finish() (*domain.BatchSummary, error)

	// Queue returns the session's slot queue in review order.
	Queue() []domain.BatchSlot

	// Cursor returns the index of the slot under review.
	Cursor() int

	// Current returns the slot under review, or nil on an empty queue.
	Current() *domain.BatchSlot

	// Stats returns the session's progress counters.
	Stats() domain.BatchStats

	// Navigate moves the cursor by delta, wrapping in both directions.
	Navigate(delta int)

	// Skip counts the current slot as skipped and moves to the next.
	Skip()

	// AcceptCurrent records the current slot's detection (or empty
	// classification) as correct, verified, then advances to the next
	// unlabeled slot.
	AcceptCurrent()

	// MarkCurrentEmpty records the current slot as holding no item,
	// then advances to the next unlabeled slot.
	MarkCurrentEmpty()

	// ApplyAlternative records itemName for the current slot, then
	// advances to the next unlabeled slot.
	ApplyAlternative(itemName string)

	// SelectAlternativeByIndex applies the i-th ranked alternative of
	// the current slot. No-op when the slot is not a detection or i is
	// out of bounds of the quick-select list.
	SelectAlternativeByIndex(i int)

	// Do dispatches a symbolic reviewer action to the matching method.
	Do(action domain.BatchAction)

	// AdvanceToNextUnlabeled moves the cursor to the next unlabeled
	// slot, scanning forward from cursor+1 with wraparound. Returns
	// false, leaving the cursor unchanged, when every slot is labeled.
	AdvanceToNextUnlabeled() bool
}
