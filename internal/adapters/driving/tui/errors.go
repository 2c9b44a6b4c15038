package tui

import "errors"

// ErrMissingBatchWorkflow is returned when the batch workflow is not provided.
var ErrMissingBatchWorkflow = errors.New("tui: batch workflow is required")

// ErrMissingReviewService is returned when the review service is not provided.
var ErrMissingReviewService = errors.New("tui: review service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
