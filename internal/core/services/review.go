package services

import (
	"context"
	"fmt"

	"github.com/slotlab/slotcheck-cli/internal/core/domain"
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driven"
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driving"
	"github.com/slotlab/slotcheck-cli/internal/logger"
)

// Ensure ReviewService implements the interface.
var _ driving.ReviewService = (*ReviewService)(nil)

// ReviewService derives the effective labeling and scores it against
// ground truth. It is strictly read-only: it never mutates the detection
// store or the ledger.
type ReviewService struct {
	detections driven.DetectionStore
	ledger     driven.CorrectionLedger
	truth      driven.GroundTruthStore
}

// NewReviewService creates a new review service.
func NewReviewService(
	detections driven.DetectionStore,
	ledger driven.CorrectionLedger,
	truth driven.GroundTruthStore,
) *ReviewService {
	return &ReviewService{
		detections: detections,
		ledger:     ledger,
		truth:      truth,
	}
}

// Effective returns the current effective labeling.
func (s *ReviewService) Effective() []domain.EffectiveDetection {
	return ResolveEffective(s.detections, s.ledger)
}

// ScoreAgainst scores the current effective labeling against the stored
// ground truth for the loaded image.
func (s *ReviewService) ScoreAgainst(ctx context.Context) (*domain.Score, error) {
	imagePath := s.detections.ImagePath()
	if imagePath == "" {
		return nil, domain.ErrNoImageLoaded
	}

	entry, err := s.truth.Get(ctx, imagePath)
	if err != nil {
		return nil, fmt.Errorf("loading ground truth for %s: %w", imagePath, err)
	}

	effective := EffectiveNames(s.Effective())
	score := ScoreNames(effective, entry.Items)
	logger.Debug("scored %s: P=%.3f R=%.3f F1=%.3f (TP=%d FP=%d FN=%d)",
		imagePath, score.Precision, score.Recall, score.F1,
		score.TruePositives, score.FalsePositives, score.FalseNegatives)
	return &score, nil
}

// ScoreNames scores two name multisets directly.
func (s *ReviewService) ScoreNames(effective, truth []string) domain.Score {
	return ScoreNames(effective, truth)
}
