// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/slotlab/slotcheck-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewReview is the slot-by-slot batch review view.
	ViewReview ViewType = iota
	// ViewSummary shows the session summary after finishing.
	ViewSummary
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewReview:
		return "review"
	case ViewSummary:
		return "summary"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// SlotFocused is sent when the cursor moves to a slot.
type SlotFocused struct {
	Index int
}

// CorrectionApplied signals that a correction was recorded for a slot.
type CorrectionApplied struct{}

// SessionFinished carries the summary of a completed session.
type SessionFinished struct {
	Summary *domain.BatchSummary
	Err     error
}

// DetectionsReloaded signals that the detection pass file changed on disk
// and was re-parsed.
type DetectionsReloaded struct {
	Err error
}

// ScoreComputed carries the agreement of the effective labeling with
// ground truth.
type ScoreComputed struct {
	Score *domain.Score
	Err   error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
