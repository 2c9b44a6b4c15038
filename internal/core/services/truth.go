package services

import (
	"context"
	"fmt"

	"github.com/slotlab/slotcheck-cli/internal/core/domain"
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driven"
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driving"
	"github.com/slotlab/slotcheck-cli/internal/logger"
)

// Ensure TruthService implements the interface.
var _ driving.TruthService = (*TruthService)(nil)

// TruthService manages ground truth labelings.
type TruthService struct {
	store      driven.GroundTruthStore
	detections driven.DetectionStore
	ledger     driven.CorrectionLedger
}

// NewTruthService creates a new ground truth service.
func NewTruthService(
	store driven.GroundTruthStore,
	detections driven.DetectionStore,
	ledger driven.CorrectionLedger,
) *TruthService {
	return &TruthService{
		store:      store,
		detections: detections,
		ledger:     ledger,
	}
}

// Import stores labelings, replacing entries for the same image.
func (s *TruthService) Import(ctx context.Context, entries []domain.GroundTruthEntry) error {
	for _, entry := range entries {
		if entry.ImagePath == "" {
			return fmt.Errorf("%w: truth entry without image path", domain.ErrInvalidInput)
		}
		if err := s.store.Save(ctx, entry); err != nil {
			return fmt.Errorf("saving truth for %s: %w", entry.ImagePath, err)
		}
	}
	logger.Info("imported %d ground truth entries", len(entries))
	return nil
}

// Get returns the labeling for an image.
func (s *TruthService) Get(ctx context.Context, imagePath string) (*domain.GroundTruthEntry, error) {
	return s.store.Get(ctx, imagePath)
}

// List returns all labelings.
func (s *TruthService) List(ctx context.Context) ([]domain.GroundTruthEntry, error) {
	return s.store.List(ctx)
}

// Delete removes the labeling for an image.
func (s *TruthService) Delete(ctx context.Context, imagePath string) error {
	return s.store.Delete(ctx, imagePath)
}

// ExportEffective stores the current effective labeling as the truth
// entry for the loaded image. The slot-ordered resolver output becomes
// the entry's ordered item list.
func (s *TruthService) ExportEffective(ctx context.Context) (*domain.GroundTruthEntry, error) {
	imagePath := s.detections.ImagePath()
	if imagePath == "" {
		return nil, domain.ErrNoImageLoaded
	}

	entry := domain.GroundTruthEntry{
		ImagePath: imagePath,
		Items:     EffectiveNames(ResolveEffective(s.detections, s.ledger)),
	}
	if err := s.store.Save(ctx, entry); err != nil {
		return nil, fmt.Errorf("exporting truth for %s: %w", imagePath, err)
	}
	logger.Info("exported %d items as ground truth for %s", len(entry.Items), imagePath)
	return &entry, nil
}
