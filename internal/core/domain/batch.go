package domain

import "time"

// BatchSlot is one entry in a batch-review session queue. The queue is a
// session-scoped derived view built at session entry; the correction
// ledger remains authoritative.
type BatchSlot struct {
	// SlotIndex is the grid position this entry reviews.
	SlotIndex int

	// Kind reports whether the snapshot is a detection or an empty cell.
	Kind SlotKind

	// Snapshot is the detection state captured at session entry.
	// The zero value when Kind is KindEmpty.
	Snapshot Detection

	// Labeled mirrors "the ledger has an entry for SlotIndex". The
	// workflow updates it immediately after every ledger write, never
	// lazily.
	Labeled bool
}

// BatchStats tracks progress counters for an active session.
type BatchStats struct {
	// Total is the queue length at session entry.
	Total int

	// LabeledAtEntry is the ledger size at session entry.
	LabeledAtEntry int

	// Skipped counts explicit skip actions this session.
	Skipped int

	// StartTime is when the session entered the active state.
	StartTime time.Time
}

// BatchSummary describes a finished session.
type BatchSummary struct {
	// SessionID identifies the session the summary belongs to.
	SessionID string

	// ElapsedSeconds is the session duration.
	ElapsedSeconds float64

	// NewLabels is how many ledger entries the session added.
	NewLabels int

	// Skipped counts explicit skip actions during the session.
	Skipped int

	// Total is the queue length the session covered.
	Total int
}

// BatchAction is a symbolic reviewer action, decoupled from any input
// device. The TUI translates key presses into these; the workflow only
// ever sees actions.
type BatchAction int

const (
	// ActionNavigatePrev moves the cursor back one slot, wrapping.
	ActionNavigatePrev BatchAction = iota

	// ActionNavigateNext moves the cursor forward one slot, wrapping.
	ActionNavigateNext

	// ActionAccept records the current slot's detection (or empty
	// classification) as correct.
	ActionAccept

	// ActionMarkEmpty records the current slot as holding no item.
	ActionMarkEmpty

	// ActionSkip leaves the current slot undecided and advances.
	ActionSkip

	// ActionFinish ends the session and produces a summary.
	ActionFinish
)

// String returns the string representation of the action.
func (a BatchAction) String() string {
	switch a {
	case ActionNavigatePrev:
		return "navigate_prev"
	case ActionNavigateNext:
		return "navigate_next"
	case ActionAccept:
		return "accept"
	case ActionMarkEmpty:
		return "mark_empty"
	case ActionSkip:
		return "skip"
	case ActionFinish:
		return "finish"
	default:
		return "unknown"
	}
}
