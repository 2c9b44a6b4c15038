package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Batch session errors.

	// ErrNoActiveSession indicates a session action was requested while
	// no batch session is active.
	ErrNoActiveSession = errors.New("no active batch session")

	// ErrSessionActive indicates a session is already running.
	ErrSessionActive = errors.New("batch session already active")

	// ErrNothingToReview indicates the entry guard failed: no image is
	// loaded or the detection pass produced no slots at all.
	ErrNothingToReview = errors.New("nothing to review")

	// ErrAllSlotsLabeled signals that every slot in the queue already
	// has a ledger entry. This is session completion, not a failure.
	ErrAllSlotsLabeled = errors.New("all slots labeled")

	// Detection input errors.

	// ErrNoImageLoaded indicates no detection pass has been loaded.
	ErrNoImageLoaded = errors.New("no image loaded")

	// ErrStalePass indicates the detection pass was replaced while a
	// session built from the previous pass is still active.
	ErrStalePass = errors.New("detection pass replaced during session")
)
