package driven

import (
	"context"

	"github.com/slotlab/slotcheck-cli/internal/core/domain"
)

// GroundTruthStore persists reference labelings keyed by image path.
type GroundTruthStore interface {
	// Save stores or replaces the labeling for an image.
	Save(ctx context.Context, entry domain.GroundTruthEntry) error

	// Get returns the labeling for an image.
	// Returns domain.ErrNotFound if no labeling exists.
	Get(ctx context.Context, imagePath string) (*domain.GroundTruthEntry, error)

	// Delete removes the labeling for an image.
	Delete(ctx context.Context, imagePath string) error

	// List returns all labelings.
	List(ctx context.Context) ([]domain.GroundTruthEntry, error)
}
