package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotlab/slotcheck-cli/internal/adapters/driven/storage/memory"
	"github.com/slotlab/slotcheck-cli/internal/core/domain"
)

func newBatchFixture(t *testing.T, slots []domain.SlotDetection) (*BatchService, *memory.DetectionStore, *memory.Ledger) {
	t.Helper()
	store := memory.NewDetectionStore()
	if slots != nil {
		store.Replace("shots/inv-001.png", slots)
	}
	ledger := memory.NewLedger()
	svc := NewBatchService(store, ledger, Hooks{})
	return svc, store, ledger
}

func batchPass() []domain.SlotDetection {
	return []domain.SlotDetection{
		{SlotIndex: 4, Kind: domain.KindEmpty},
		{SlotIndex: 0, Kind: domain.KindDetection, Detection: domain.Detection{
			ItemName:   "wrench",
			Confidence: 0.91,
			Alternatives: []domain.Alternative{
				{ItemName: "spanner", Confidence: 0.55},
				{ItemName: "pipe", Confidence: 0.31},
				{ItemName: "rod", Confidence: 0.12},
			},
		}},
		{SlotIndex: 2, Kind: domain.KindEmpty},
		{SlotIndex: 1, Kind: domain.KindDetection, Detection: domain.Detection{ItemName: "gear", Confidence: 0.42}},
	}
}

func TestBatchService_EnterGuard_NoImage(t *testing.T) {
	svc, _, _ := newBatchFixture(t, nil)

	err := svc.Enter()

	assert.ErrorIs(t, err, domain.ErrNothingToReview)
	assert.False(t, svc.Active())
}

func TestBatchService_EnterGuard_EmptyPass(t *testing.T) {
	svc, store, _ := newBatchFixture(t, nil)
	store.Replace("a.png", nil)

	err := svc.Enter()

	assert.ErrorIs(t, err, domain.ErrNothingToReview)
}

func TestBatchService_Enter_QueueOrder(t *testing.T) {
	svc, _, _ := newBatchFixture(t, batchPass())

	require.NoError(t, svc.Enter())
	require.True(t, svc.Active())

	queue := svc.Queue()
	require.Len(t, queue, 4)

	// Detections ascending by slot index, then empties ascending
	assert.Equal(t, 0, queue[0].SlotIndex)
	assert.Equal(t, domain.KindDetection, queue[0].Kind)
	assert.Equal(t, 1, queue[1].SlotIndex)
	assert.Equal(t, domain.KindDetection, queue[1].Kind)
	assert.Equal(t, 2, queue[2].SlotIndex)
	assert.Equal(t, domain.KindEmpty, queue[2].Kind)
	assert.Equal(t, 4, queue[3].SlotIndex)
	assert.Equal(t, domain.KindEmpty, queue[3].Kind)
}

func TestBatchService_Enter_CursorAtFirstUnlabeled(t *testing.T) {
	svc, _, ledger := newBatchFixture(t, batchPass())
	ledger.Set(0, domain.Correction{Verified: true})
	ledger.Set(1, domain.Correction{})

	require.NoError(t, svc.Enter())

	assert.Equal(t, 2, svc.Cursor())
	assert.True(t, svc.Queue()[0].Labeled)
	assert.True(t, svc.Queue()[1].Labeled)
	assert.False(t, svc.Queue()[2].Labeled)

	stats := svc.Stats()
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.LabeledAtEntry)
	assert.Equal(t, 0, stats.Skipped)
}

func TestBatchService_Enter_AllLabeledCursorZero(t *testing.T) {
	svc, _, ledger := newBatchFixture(t, batchPass())
	for _, i := range []int{0, 1, 2, 4} {
		ledger.Set(i, domain.Correction{})
	}

	require.NoError(t, svc.Enter())

	assert.Equal(t, 0, svc.Cursor())
}

func TestBatchService_Enter_WhileActive(t *testing.T) {
	svc, _, _ := newBatchFixture(t, batchPass())
	require.NoError(t, svc.Enter())

	err := svc.Enter()

	assert.ErrorIs(t, err, domain.ErrSessionActive)
}

func TestBatchService_Navigate_WrapsBothDirections(t *testing.T) {
	svc, _, _ := newBatchFixture(t, batchPass())
	require.NoError(t, svc.Enter())

	// Forward wrap from last index
	svc.Navigate(3) // cursor 0 -> 3
	assert.Equal(t, 3, svc.Cursor())
	svc.Navigate(1)
	assert.Equal(t, 0, svc.Cursor())

	// Backward wrap from 0
	svc.Navigate(-1)
	assert.Equal(t, 3, svc.Cursor())

	// Large negative deltas wrap too
	svc.Navigate(-9)
	assert.Equal(t, 2, svc.Cursor())
}

func TestBatchService_Navigate_InactiveNoop(t *testing.T) {
	svc, _, _ := newBatchFixture(t, batchPass())
	svc.Navigate(1)
	assert.Equal(t, 0, svc.Cursor())
}

func TestBatchService_Skip(t *testing.T) {
	svc, _, ledger := newBatchFixture(t, batchPass())
	require.NoError(t, svc.Enter())

	svc.Skip()

	assert.Equal(t, 1, svc.Cursor())
	assert.Equal(t, 1, svc.Stats().Skipped)
	assert.Equal(t, 0, ledger.Size())
}

func TestBatchService_AcceptCurrent_Detection(t *testing.T) {
	svc, _, ledger := newBatchFixture(t, batchPass())
	require.NoError(t, svc.Enter())

	svc.AcceptCurrent()

	c, ok := ledger.Get(0)
	require.True(t, ok)
	require.NotNil(t, c.OriginalName)
	require.NotNil(t, c.CorrectedName)
	assert.Equal(t, "wrench", *c.OriginalName)
	assert.Equal(t, "wrench", *c.CorrectedName)
	assert.Equal(t, 0.91, c.OriginalConfidence)
	assert.True(t, c.Verified)
	assert.False(t, c.FromEmpty)

	assert.True(t, svc.Queue()[0].Labeled)
	assert.Equal(t, 1, svc.Cursor())
}

func TestBatchService_AcceptCurrent_EmptySlot(t *testing.T) {
	svc, _, ledger := newBatchFixture(t, batchPass())
	require.NoError(t, svc.Enter())
	svc.Navigate(2) // slot index 2, empty kind

	svc.AcceptCurrent()

	c, ok := ledger.Get(2)
	require.True(t, ok)
	assert.Nil(t, c.OriginalName)
	assert.Nil(t, c.CorrectedName)
	assert.Equal(t, 0.0, c.OriginalConfidence)
	assert.True(t, c.Verified)
	assert.False(t, c.FromEmpty)
}

func TestBatchService_MarkCurrentEmpty_Detection(t *testing.T) {
	svc, _, ledger := newBatchFixture(t, batchPass())
	require.NoError(t, svc.Enter())

	svc.MarkCurrentEmpty()

	c, ok := ledger.Get(0)
	require.True(t, ok)
	require.NotNil(t, c.OriginalName)
	assert.Equal(t, "wrench", *c.OriginalName)
	assert.Equal(t, 0.91, c.OriginalConfidence)
	assert.Nil(t, c.CorrectedName)
	assert.False(t, c.Verified)
	assert.False(t, c.FromEmpty)
}

func TestBatchService_ApplyAlternative_OverEmpty(t *testing.T) {
	svc, _, ledger := newBatchFixture(t, batchPass())
	require.NoError(t, svc.Enter())
	svc.Navigate(3) // slot index 4, empty kind

	svc.ApplyAlternative("potion")

	c, ok := ledger.Get(4)
	require.True(t, ok)
	assert.Nil(t, c.OriginalName)
	require.NotNil(t, c.CorrectedName)
	assert.Equal(t, "potion", *c.CorrectedName)
	assert.False(t, c.Verified)
	assert.True(t, c.FromEmpty)
}

func TestBatchService_SelectAlternativeByIndex(t *testing.T) {
	svc, _, ledger := newBatchFixture(t, batchPass())
	require.NoError(t, svc.Enter())

	svc.SelectAlternativeByIndex(1)

	c, ok := ledger.Get(0)
	require.True(t, ok)
	require.NotNil(t, c.CorrectedName)
	assert.Equal(t, "pipe", *c.CorrectedName)
	assert.False(t, c.Verified)
}

func TestBatchService_SelectAlternativeByIndex_OutOfBounds(t *testing.T) {
	fired := 0
	store := memory.NewDetectionStore()
	store.Replace("a.png", batchPass())
	ledger := memory.NewLedger()
	svc := NewBatchService(store, ledger, Hooks{
		OnCorrectionApplied: func() { fired++ },
	})
	require.NoError(t, svc.Enter())

	// Current slot has 3 alternatives; index 5 is out of bounds
	svc.SelectAlternativeByIndex(5)
	svc.SelectAlternativeByIndex(-1)

	assert.Equal(t, 0, ledger.Size())
	assert.Equal(t, 0, fired)
	assert.Equal(t, 0, svc.Cursor())
}

func TestBatchService_SelectAlternativeByIndex_OnEmptySlot(t *testing.T) {
	svc, _, ledger := newBatchFixture(t, batchPass())
	require.NoError(t, svc.Enter())
	svc.Navigate(2)

	svc.SelectAlternativeByIndex(0)

	assert.Equal(t, 0, ledger.Size())
}

func TestBatchService_SelectAlternativeByIndex_TruncatedToSix(t *testing.T) {
	alts := make([]domain.Alternative, 9)
	for i := range alts {
		alts[i] = domain.Alternative{ItemName: "alt", Confidence: 0.9 - float64(i)*0.1}
	}
	svc, _, ledger := newBatchFixture(t, []domain.SlotDetection{
		{SlotIndex: 0, Kind: domain.KindDetection, Detection: domain.Detection{
			ItemName: "gear", Alternatives: alts,
		}},
	})
	require.NoError(t, svc.Enter())

	// Index 6 is inside the raw list but outside the quick-select window
	svc.SelectAlternativeByIndex(6)
	assert.Equal(t, 0, ledger.Size())

	svc.SelectAlternativeByIndex(5)
	assert.Equal(t, 1, ledger.Size())
}

func TestBatchService_AdvanceToNextUnlabeled_Wraps(t *testing.T) {
	svc, _, _ := newBatchFixture(t, batchPass())
	require.NoError(t, svc.Enter())

	// Label everything except queue position 1
	svc.Navigate(1)
	svc.Navigate(-1) // back to 0
	svc.AcceptCurrent()
	assert.Equal(t, 1, svc.Cursor())
	svc.Navigate(1) // position 2
	svc.AcceptCurrent()
	// next unlabeled after position 2 is 3
	assert.Equal(t, 3, svc.Cursor())
	svc.AcceptCurrent()

	// Only position 1 remains; advancing from anywhere wraps to it
	assert.Equal(t, 1, svc.Cursor())
}

func TestBatchService_AdvanceToNextUnlabeled_AllLabeled(t *testing.T) {
	svc, _, ledger := newBatchFixture(t, batchPass())
	for _, i := range []int{0, 1, 2, 4} {
		ledger.Set(i, domain.Correction{})
	}
	require.NoError(t, svc.Enter())
	svc.Navigate(2)

	ok := svc.AdvanceToNextUnlabeled()

	assert.False(t, ok)
	assert.Equal(t, 2, svc.Cursor())
}

func TestBatchService_RelabelOverwritesNeverRemoves(t *testing.T) {
	svc, _, ledger := newBatchFixture(t, batchPass())
	require.NoError(t, svc.Enter())

	sizes := []int{ledger.Size()}
	svc.AcceptCurrent()
	sizes = append(sizes, ledger.Size())
	svc.Navigate(-1) // back to the labeled slot
	svc.MarkCurrentEmpty()
	sizes = append(sizes, ledger.Size())
	svc.ApplyAlternative("gizmo")
	sizes = append(sizes, ledger.Size())

	for i := 1; i < len(sizes); i++ {
		assert.GreaterOrEqual(t, sizes[i], sizes[i-1])
	}
}

func TestBatchService_Hooks(t *testing.T) {
	var corrections int
	var focused []int
	store := memory.NewDetectionStore()
	store.Replace("a.png", batchPass())
	ledger := memory.NewLedger()
	svc := NewBatchService(store, ledger, Hooks{
		OnCorrectionApplied: func() { corrections++ },
		OnSlotFocused:       func(slotIndex int) { focused = append(focused, slotIndex) },
	})

	require.NoError(t, svc.Enter())
	// Entry focuses slot 0
	assert.Equal(t, []int{0}, focused)

	svc.AcceptCurrent()
	assert.Equal(t, 1, corrections)
	// Advance focused slot 1
	assert.Equal(t, []int{0, 1}, focused)

	svc.Navigate(1)
	assert.Equal(t, []int{0, 1, 2}, focused)
}

func TestBatchService_Finish(t *testing.T) {
	svc, _, _ := newBatchFixture(t, batchPass())
	base := time.Now()
	svc.now = func() time.Time { return base }
	require.NoError(t, svc.Enter())

	svc.AcceptCurrent()
	svc.Skip()
	svc.now = func() time.Time { return base.Add(90 * time.Second) }

	summary, err := svc.Finish()
	require.NoError(t, err)
	assert.Equal(t, 1, summary.NewLabels)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 4, summary.Total)
	assert.InDelta(t, 90.0, summary.ElapsedSeconds, 1e-9)
	assert.NotEmpty(t, summary.SessionID)
	assert.False(t, svc.Active())
}

func TestBatchService_Finish_Inactive(t *testing.T) {
	svc, _, _ := newBatchFixture(t, batchPass())

	_, err := svc.Finish()

	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestBatchService_Do_DispatchesActions(t *testing.T) {
	svc, _, ledger := newBatchFixture(t, batchPass())
	require.NoError(t, svc.Enter())

	svc.Do(domain.ActionNavigateNext)
	assert.Equal(t, 1, svc.Cursor())
	svc.Do(domain.ActionNavigatePrev)
	assert.Equal(t, 0, svc.Cursor())
	svc.Do(domain.ActionAccept)
	assert.Equal(t, 1, ledger.Size())
	svc.Do(domain.ActionSkip)
	assert.Equal(t, 1, svc.Stats().Skipped)
	svc.Do(domain.ActionMarkEmpty)
	assert.Equal(t, 2, ledger.Size())
	svc.Do(domain.ActionFinish)
	assert.False(t, svc.Active())
}

func TestBatchService_Stale(t *testing.T) {
	svc, store, _ := newBatchFixture(t, batchPass())
	require.NoError(t, svc.Enter())
	assert.False(t, svc.Stale())

	store.Replace("b.png", batchPass())

	assert.True(t, svc.Stale())
	// The session keeps working against its snapshot
	svc.AcceptCurrent()
	assert.True(t, svc.Active())
}
