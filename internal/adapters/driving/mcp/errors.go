// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Slotcheck. It lets AI assistants inspect the current review state, score
// labelings, and query calibration presets.
package mcp

import "errors"

// ErrMissingReviewService is returned when the review service is not provided.
var ErrMissingReviewService = errors.New("mcp: review service is required")
