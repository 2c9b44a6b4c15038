package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPorts_Validate(t *testing.T) {
	t.Run("nil batch workflow returns error", func(t *testing.T) {
		ports := &Ports{Review: &mockReviewService{}}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingBatchWorkflow)
	})

	t.Run("nil review service returns error", func(t *testing.T) {
		ports := &Ports{Batch: &mockBatchWorkflow{}}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingReviewService)
	})

	t.Run("truth service is optional", func(t *testing.T) {
		ports := &Ports{Batch: &mockBatchWorkflow{}, Review: &mockReviewService{}}
		err := ports.Validate()
		assert.NoError(t, err)
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := NewPorts(&mockBatchWorkflow{}, &mockReviewService{}, &mockTruthService{})
		err := ports.Validate()
		assert.NoError(t, err)
	})
}
