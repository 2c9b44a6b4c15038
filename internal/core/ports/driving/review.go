package driving

import (
	"context"

	"github.com/slotlab/slotcheck-cli/internal/core/domain"
)

// ReviewService exposes the read side of a review: the effective labeling
// the reviewer currently asserts, and its agreement with ground truth.
// Both are derived on demand; consumers must re-query after every
// correction-applied notification rather than cache across mutations.
type ReviewService interface {
	// Effective returns the current effective labeling: corrections
	// merged over raw detections, confirmed-empty slots omitted.
	Effective() []domain.EffectiveDetection

	// ScoreAgainst scores the current effective labeling against the
	// stored ground truth for the loaded image.
	// Returns domain.ErrNoImageLoaded when no pass is loaded and
	// domain.ErrNotFound when the image has no truth entry.
	ScoreAgainst(ctx context.Context) (*domain.Score, error)

	// ScoreNames scores two name multisets directly.
	ScoreNames(effective, truth []string) domain.Score
}

// TruthService manages ground truth labelings.
type TruthService interface {
	// Import stores labelings, replacing entries for the same image.
	Import(ctx context.Context, entries []domain.GroundTruthEntry) error

	// Get returns the labeling for an image.
	Get(ctx context.Context, imagePath string) (*domain.GroundTruthEntry, error)

	// List returns all labelings.
	List(ctx context.Context) ([]domain.GroundTruthEntry, error)

	// Delete removes the labeling for an image.
	Delete(ctx context.Context, imagePath string) error

	// ExportEffective stores the current effective labeling as the
	// truth entry for the loaded image.
	ExportEffective(ctx context.Context) (*domain.GroundTruthEntry, error)
}
