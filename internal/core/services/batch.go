package services

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/slotlab/slotcheck-cli/internal/core/domain"
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driven"
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driving"
	"github.com/slotlab/slotcheck-cli/internal/logger"
)

// Ensure BatchService implements the interface.
var _ driving.BatchWorkflow = (*BatchService)(nil)

// Hooks carries the notification callbacks the surrounding UI registers
// with the batch workflow. Either hook may be nil.
type Hooks struct {
	// OnCorrectionApplied fires after every ledger write. Consumers
	// (scoring, overlay rendering) must re-derive their view.
	OnCorrectionApplied func()

	// OnSlotFocused fires after every successful cursor change with the
	// slot index now under review.
	OnSlotFocused func(slotIndex int)
}

// session holds all mutable state of one active batch run. It is created
// on Enter and discarded on Finish; every action receives it through the
// service rather than relying on ambient state.
type session struct {
	id         string
	queue      []domain.BatchSlot
	cursor     int
	stats      domain.BatchStats
	generation uint64
}

// BatchService is the batch workflow state machine. A nil session means
// Inactive; a non-nil session means Active. It is the sole writer of the
// correction ledger.
//
// The service assumes the host's single-threaded, run-to-completion event
// dispatch: actions are never invoked concurrently, so readers never
// observe a partially-applied ledger write.
type BatchService struct {
	detections driven.DetectionStore
	ledger     driven.CorrectionLedger
	hooks      Hooks
	sess       *session

	// now is swappable for tests.
	now func() time.Time
}

// NewBatchService creates a new batch workflow in the Inactive state.
func NewBatchService(detections driven.DetectionStore, ledger driven.CorrectionLedger, hooks Hooks) *BatchService {
	return &BatchService{
		detections: detections,
		ledger:     ledger,
		hooks:      hooks,
		now:        time.Now,
	}
}

// Active reports whether a session is running.
func (s *BatchService) Active() bool {
	return s.sess != nil
}

// SessionID returns the active session's ID, or "" when inactive.
func (s *BatchService) SessionID() string {
	if s.sess == nil {
		return ""
	}
	return s.sess.id
}

// Stale reports whether the detection pass was replaced after the active
// session was built. A stale session keeps working against its snapshot;
// the UI surfaces the condition so the reviewer can finish and re-enter.
func (s *BatchService) Stale() bool {
	return s.sess != nil && s.sess.generation != s.detections.Generation()
}

// Enter starts a session over the current detection pass.
//
// The queue is detections sorted ascending by slot index, then empty
// markers sorted ascending by slot index. Labeled flags come from the
// current ledger; the cursor starts at the first unlabeled entry, or 0
// when every entry is labeled or the queue is empty.
func (s *BatchService) Enter() error {
	if s.sess != nil {
		return domain.ErrSessionActive
	}
	if s.detections.ImagePath() == "" || s.detections.Size() == 0 {
		return domain.ErrNothingToReview
	}

	slots := s.detections.List()
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].SlotIndex < slots[j].SlotIndex
	})

	queue := make([]domain.BatchSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.Kind != domain.KindDetection {
			continue
		}
		queue = append(queue, domain.BatchSlot{
			SlotIndex: slot.SlotIndex,
			Kind:      domain.KindDetection,
			Snapshot:  slot.Detection,
			Labeled:   s.ledger.Has(slot.SlotIndex),
		})
	}
	for _, slot := range slots {
		if slot.Kind != domain.KindEmpty {
			continue
		}
		queue = append(queue, domain.BatchSlot{
			SlotIndex: slot.SlotIndex,
			Kind:      domain.KindEmpty,
			Labeled:   s.ledger.Has(slot.SlotIndex),
		})
	}

	cursor := 0
	for i, entry := range queue {
		if !entry.Labeled {
			cursor = i
			break
		}
	}

	s.sess = &session{
		id:         uuid.NewString(),
		queue:      queue,
		cursor:     cursor,
		generation: s.detections.Generation(),
		stats: domain.BatchStats{
			Total:          len(queue),
			LabeledAtEntry: s.ledger.Size(),
			StartTime:      s.now(),
		},
	}
	logger.Info("batch session %s: %d slots, %d already labeled",
		s.sess.id, len(queue), s.sess.stats.LabeledAtEntry)

	s.focus(cursor)
	return nil
}

// Finish ends the session and returns its summary. No ledger mutation
// happens on exit itself.
func (s *BatchService) Finish() (*domain.BatchSummary, error) {
	if s.sess == nil {
		return nil, domain.ErrNoActiveSession
	}

	summary := &domain.BatchSummary{
		SessionID:      s.sess.id,
		ElapsedSeconds: s.now().Sub(s.sess.stats.StartTime).Seconds(),
		NewLabels:      s.ledger.Size() - s.sess.stats.LabeledAtEntry,
		Skipped:        s.sess.stats.Skipped,
		Total:          s.sess.stats.Total,
	}
	logger.Info("batch session %s finished: %d new labels in %.1fs",
		summary.SessionID, summary.NewLabels, summary.ElapsedSeconds)

	s.sess = nil
	return summary, nil
}

// Queue returns the session's slot queue in review order.
func (s *BatchService) Queue() []domain.BatchSlot {
	if s.sess == nil {
		return nil
	}
	return s.sess.queue
}

// Cursor returns the index of the slot under review.
func (s *BatchService) Cursor() int {
	if s.sess == nil {
		return 0
	}
	return s.sess.cursor
}

// Current returns the slot under review, or nil when inactive or the
// queue is empty.
func (s *BatchService) Current() *domain.BatchSlot {
	if s.sess == nil || len(s.sess.queue) == 0 {
		return nil
	}
	return &s.sess.queue[s.sess.cursor]
}

// Stats returns the session's progress counters.
func (s *BatchService) Stats() domain.BatchStats {
	if s.sess == nil {
		return domain.BatchStats{}
	}
	return s.sess.stats
}

// Navigate moves the cursor by delta, wrapping in both directions.
func (s *BatchService) Navigate(delta int) {
	if s.sess == nil || len(s.sess.queue) == 0 {
		return
	}
	n := len(s.sess.queue)
	cursor := ((s.sess.cursor+delta)%n + n) % n
	s.focus(cursor)
}

// Skip counts the current slot as skipped and moves to the next.
func (s *BatchService) Skip() {
	if s.sess == nil || len(s.sess.queue) == 0 {
		return
	}
	s.sess.stats.Skipped++
	s.Navigate(1)
}

// AcceptCurrent records the current slot's detection (or empty
// classification) as correct, verified.
func (s *BatchService) AcceptCurrent() {
	slot := s.Current()
	if slot == nil {
		return
	}
	if slot.Kind == domain.KindDetection {
		s.record(domain.AcceptDetection(slot.Snapshot))
	} else {
		s.record(domain.ConfirmEmpty())
	}
}

// MarkCurrentEmpty records the current slot as holding no item.
func (s *BatchService) MarkCurrentEmpty() {
	slot := s.Current()
	if slot == nil {
		return
	}
	s.record(domain.OverrideEmpty(domain.SlotDetection{
		SlotIndex: slot.SlotIndex,
		Kind:      slot.Kind,
		Detection: slot.Snapshot,
	}))
}

// ApplyAlternative records itemName for the current slot.
func (s *BatchService) ApplyAlternative(itemName string) {
	slot := s.Current()
	if slot == nil {
		return
	}
	s.record(domain.OverrideName(domain.SlotDetection{
		SlotIndex: slot.SlotIndex,
		Kind:      slot.Kind,
		Detection: slot.Snapshot,
	}, itemName))
}

// SelectAlternativeByIndex applies the i-th ranked alternative of the
// current slot. No-op when the slot is not a detection or i is outside
// the quick-select list.
func (s *BatchService) SelectAlternativeByIndex(i int) {
	slot := s.Current()
	if slot == nil || slot.Kind != domain.KindDetection {
		return
	}
	alts := slot.Snapshot.QuickSelectAlternatives()
	if i < 0 || i >= len(alts) {
		return
	}
	s.ApplyAlternative(alts[i].ItemName)
}

// Do dispatches a symbolic reviewer action. Selecting an alternative by
// rank goes through SelectAlternativeByIndex directly; ActionFinish goes
// through Finish so callers receive the summary.
func (s *BatchService) Do(action domain.BatchAction) {
	switch action {
	case domain.ActionNavigatePrev:
		s.Navigate(-1)
	case domain.ActionNavigateNext:
		s.Navigate(1)
	case domain.ActionAccept:
		s.AcceptCurrent()
	case domain.ActionMarkEmpty:
		s.MarkCurrentEmpty()
	case domain.ActionSkip:
		s.Skip()
	case domain.ActionFinish:
		// Summary is discarded here; callers wanting it use Finish.
		_, _ = s.Finish()
	}
}

// AdvanceToNextUnlabeled scans the queue from cursor+1 with wraparound
// for the first unlabeled slot. Returns false, leaving the cursor
// unchanged, when every slot is labeled.
func (s *BatchService) AdvanceToNextUnlabeled() bool {
	if s.sess == nil || len(s.sess.queue) == 0 {
		return false
	}
	n := len(s.sess.queue)
	for step := 1; step <= n; step++ {
		i := (s.sess.cursor + step) % n
		if !s.sess.queue[i].Labeled {
			s.focus(i)
			return true
		}
	}
	return false
}

// record writes the correction for the slot under the cursor, marks the
// queue entry labeled, fires the correction-applied hook, and advances.
// The Labeled flag is updated in the same dispatch as the ledger write so
// it always mirrors ledger membership.
func (s *BatchService) record(c domain.Correction) {
	slot := &s.sess.queue[s.sess.cursor]
	s.ledger.Set(slot.SlotIndex, c)
	slot.Labeled = true
	logger.Debug("slot %d labeled (%s)", slot.SlotIndex, describeCorrection(c))
	if s.hooks.OnCorrectionApplied != nil {
		s.hooks.OnCorrectionApplied()
	}
	s.AdvanceToNextUnlabeled()
}

// focus moves the cursor and fires the slot-focused hook.
func (s *BatchService) focus(cursor int) {
	s.sess.cursor = cursor
	if s.hooks.OnSlotFocused != nil && len(s.sess.queue) > 0 {
		s.hooks.OnSlotFocused(s.sess.queue[cursor].SlotIndex)
	}
}

func describeCorrection(c domain.Correction) string {
	switch {
	case c.Verified && c.CorrectedName != nil:
		return "accepted"
	case c.Verified:
		return "confirmed empty"
	case c.CorrectedName == nil:
		return "marked empty"
	default:
		return "override: " + *c.CorrectedName
	}
}
