package mcp

import (
	"context"

	"github.com/slotlab/slotcheck-cli/internal/core/domain"
)

// mockReviewService is a mock implementation of driving.ReviewService.
type mockReviewService struct {
	effective []domain.EffectiveDetection
	score     *domain.Score
	named     domain.Score
	err       error
}

func (m *mockReviewService) Effective() []domain.EffectiveDetection {
	return m.effective
}

func (m *mockReviewService) ScoreAgainst(_ context.Context) (*domain.Score, error) {
	return m.score, m.err
}

func (m *mockReviewService) ScoreNames(_, _ []string) domain.Score {
	return m.named
}

// mockTruthService is a mock implementation of driving.TruthService.
type mockTruthService struct {
	entries []domain.GroundTruthEntry
	entry   *domain.GroundTruthEntry
	err     error
}

func (m *mockTruthService) Import(_ context.Context, _ []domain.GroundTruthEntry) error {
	return m.err
}

func (m *mockTruthService) Get(_ context.Context, _ string) (*domain.GroundTruthEntry, error) {
	return m.entry, m.err
}

func (m *mockTruthService) List(_ context.Context) ([]domain.GroundTruthEntry, error) {
	return m.entries, m.err
}

func (m *mockTruthService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockTruthService) ExportEffective(_ context.Context) (*domain.GroundTruthEntry, error) {
	return m.entry, m.err
}

// mockPresetService is a mock implementation of driving.PresetService.
type mockPresetService struct {
	preset  *domain.CalibrationPreset
	presets []domain.CalibrationPreset
	match   domain.ResolutionMatch
	err     error
}

func (m *mockPresetService) Save(_ context.Context, _ domain.CalibrationPreset) (*domain.CalibrationPreset, error) {
	return m.preset, m.err
}

func (m *mockPresetService) Get(_ context.Context, _, _ int) (*domain.CalibrationPreset, error) {
	return m.preset, m.err
}

func (m *mockPresetService) Delete(_ context.Context, _, _ int) error {
	return m.err
}

func (m *mockPresetService) List(_ context.Context) ([]domain.CalibrationPreset, error) {
	return m.presets, m.err
}

func (m *mockPresetService) Classify(_ context.Context, _, _ int) (*domain.CalibrationPreset, domain.ResolutionMatch, error) {
	return m.preset, m.match, m.err
}
