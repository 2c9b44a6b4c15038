package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	assert.Contains(t, ErrMissingBatchWorkflow.Error(), "batch workflow")
	assert.Contains(t, ErrMissingReviewService.Error(), "review service")
	assert.Contains(t, ErrInvalidPorts.Error(), "ports")
}
