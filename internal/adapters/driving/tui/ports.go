// Package tui provides the interactive batch-review terminal interface for
// slotcheck. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Batch drives the review session state machine.
	Batch driving.BatchWorkflow

	// Review exposes the effective labeling and scoring.
	Review driving.ReviewService

	// Truth manages ground truth labelings.
	Truth driving.TruthService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	batch driving.BatchWorkflow,
	review driving.ReviewService,
	truth driving.TruthService,
) *Ports {
	return &Ports{
		Batch:  batch,
		Review: review,
		Truth:  truth,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Batch == nil {
		return ErrMissingBatchWorkflow
	}
	if p.Review == nil {
		return ErrMissingReviewService
	}
	// Truth is optional; score display degrades gracefully.
	return nil
}
