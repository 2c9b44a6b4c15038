package tui

import (
	"context"

	"github.com/slotlab/slotcheck-cli/internal/core/domain"
)

// mockBatchWorkflow is a mock implementation of driving.BatchWorkflow
// that records the actions dispatched to it.
type mockBatchWorkflow struct {
	active  bool
	stale   bool
	queue   []domain.BatchSlot
	cursor  int
	stats   domain.BatchStats
	summary *domain.BatchSummary
	err     error

	actions      []domain.BatchAction
	alternatives []int
	applied      []string
}

func (m *mockBatchWorkflow) Active() bool { return m.active }
func (m *mockBatchWorkflow) Stale() bool  { return m.stale }

func (m *mockBatchWorkflow) Enter() error {
	if m.err != nil {
		return m.err
	}
	m.active = true
	return nil
}

func (m *mockBatchWorkflow) Finish() (*domain.BatchSummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.active = false
	return m.summary, nil
}

func (m *mockBatchWorkflow) Queue() []domain.BatchSlot { return m.queue }
func (m *mockBatchWorkflow) Cursor() int               { return m.cursor }

func (m *mockBatchWorkflow) Current() *domain.BatchSlot {
	if len(m.queue) == 0 {
		return nil
	}
	return &m.queue[m.cursor]
}

func (m *mockBatchWorkflow) Stats() domain.BatchStats { return m.stats }

func (m *mockBatchWorkflow) Navigate(delta int) {
	if delta < 0 {
		m.actions = append(m.actions, domain.ActionNavigatePrev)
	} else {
		m.actions = append(m.actions, domain.ActionNavigateNext)
	}
}

func (m *mockBatchWorkflow) Skip() {
	m.actions = append(m.actions, domain.ActionSkip)
}

func (m *mockBatchWorkflow) AcceptCurrent() {
	m.actions = append(m.actions, domain.ActionAccept)
}

func (m *mockBatchWorkflow) MarkCurrentEmpty() {
	m.actions = append(m.actions, domain.ActionMarkEmpty)
}

func (m *mockBatchWorkflow) ApplyAlternative(itemName string) {
	m.applied = append(m.applied, itemName)
}

func (m *mockBatchWorkflow) SelectAlternativeByIndex(i int) {
	m.alternatives = append(m.alternatives, i)
}

func (m *mockBatchWorkflow) Do(action domain.BatchAction) {
	m.actions = append(m.actions, action)
}

func (m *mockBatchWorkflow) AdvanceToNextUnlabeled() bool { return false }

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
