// Package batch provides the slot-by-slot review view for the TUI.
package batch

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slotlab/slotcheck-cli/internal/adapters/driving/tui/components/status"
	"github.com/slotlab/slotcheck-cli/internal/adapters/driving/tui/keymap"
	"github.com/slotlab/slotcheck-cli/internal/adapters/driving/tui/messages"
	"github.com/slotlab/slotcheck-cli/internal/adapters/driving/tui/styles"
	"github.com/slotlab/slotcheck-cli/internal/core/domain"
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driving"
)

// View is the batch review view. It translates key presses into workflow
// actions and renders the slot under the cursor with its quick-select
// alternatives.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	workflow  driving.BatchWorkflow
	statusBar *status.Bar
	err       error
	width     int
	height    int
	ready     bool
}

// NewView creates a new batch review view.
func NewView(s *styles.Styles, workflow driving.BatchWorkflow) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	return &View{
		styles:    s,
		keymap:    km,
		workflow:  workflow,
		statusBar: status.NewBar(s, km),
		width:     80,
		height:    24,
	}
}

// Init initialises the review view.
func (v *View) Init() tea.Cmd {
	v.statusBar.SetState(status.StateReviewing)
	return nil
}

// Update handles messages for the review view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.statusBar.SetWidth(msg.Width)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.DetectionsReloaded:
		if msg.Err != nil {
			v.statusBar.SetMessage(fmt.Sprintf("reload failed: %v", msg.Err))
			return v, nil
		}
		if v.workflow.Stale() {
			v.statusBar.SetMessage("pass replaced on disk; finish and re-enter to review it")
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusBar.SetState(status.StateError)
		v.statusBar.SetMessage(msg.Err.Error())
		return v, nil
	}

	return v, nil
}

// handleKey translates a key press into a workflow action.
func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if i := keymap.AlternativeIndex(keyStr); i >= 0 {
		v.workflow.SelectAlternativeByIndex(i)
		return v, nil
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.Prev):
		v.workflow.Do(domain.ActionNavigatePrev)
	case keymap.Matches(keyStr, v.keymap.Next):
		v.workflow.Do(domain.ActionNavigateNext)
	case keymap.Matches(keyStr, v.keymap.Accept):
		v.workflow.Do(domain.ActionAccept)
	case keymap.Matches(keyStr, v.keymap.MarkEmpty):
		v.workflow.Do(domain.ActionMarkEmpty)
	case keymap.Matches(keyStr, v.keymap.Skip):
		v.workflow.Do(domain.ActionSkip)
	case keymap.Matches(keyStr, v.keymap.Finish),
		keymap.Matches(keyStr, v.keymap.Cancel):
		return v, v.finish()
	}

	return v, nil
}

// finish ends the session and emits the summary message.
func (v *View) finish() tea.Cmd {
	return func() tea.Msg {
		summary, err := v.workflow.Finish()
		return messages.SessionFinished{Summary: summary, Err: err}
	}
}

// View renders the review view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Batch Review"))
	b.WriteString("\n\n")

	current := v.workflow.Current()
	if current == nil {
		b.WriteString(v.styles.Muted.Render("Nothing to review."))
		b.WriteString("\n")
		return b.String()
	}

	stats := v.workflow.Stats()
	v.statusBar.SetProgress(v.labeledCount(), stats.Total, stats.Skipped)

	b.WriteString(v.renderQueueStrip())
	b.WriteString("\n\n")
	b.WriteString(v.renderSlot(current))
	b.WriteString("\n")
	b.WriteString(v.statusBar.View())

	return b.String()
}

// renderQueueStrip renders one cell per queue slot, highlighting the
// cursor and marking labeled slots.
func (v *View) renderQueueStrip() string {
	queue := v.workflow.Queue()
	cursor := v.workflow.Cursor()

	cells := make([]string, len(queue))
	for i, slot := range queue {
		cell := fmt.Sprintf("%d", slot.SlotIndex)
		switch {
		case i == cursor:
			cell = v.styles.Selected.Render(cell)
		case slot.Labeled:
			cell = v.styles.Labeled.Render(cell)
		default:
			cell = v.styles.Muted.Render(cell)
		}
		cells[i] = cell
	}

	return strings.Join(cells, " ")
}

// renderSlot renders the slot under the cursor.
func (v *View) renderSlot(slot *domain.BatchSlot) string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Slot %d", slot.SlotIndex)))
	b.WriteString("\n\n")

	if slot.Kind == domain.KindEmpty {
		b.WriteString(v.styles.Muted.Render("(classified as empty)"))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[enter] confirm empty  [e] mark empty  [s] skip"))
		return b.String()
	}

	d := slot.Snapshot
	conf := v.styles.Confidence(d.Confidence).Render(fmt.Sprintf("%.0f%%", d.Confidence*100))
	b.WriteString(fmt.Sprintf("%s  %s", v.styles.Normal.Render(d.ItemName), conf))
	b.WriteString("\n")

	alts := d.QuickSelectAlternatives()
	if len(alts) > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Alternatives:"))
		b.WriteString("\n")
		for i, alt := range alts {
			line := fmt.Sprintf("  [%d] %s (%.0f%%)", i+1, alt.ItemName, alt.Confidence*100)
			b.WriteString(v.styles.Normal.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[enter] accept  [1-6] alternative  [e] empty  [s] skip  [f] finish"))

	return b.String()
}

// labeledCount counts queue slots with a ledger entry.
func (v *View) labeledCount() int {
	count := 0
	for _, slot := range v.workflow.Queue() {
		if slot.Labeled {
			count++
		}
	}
	return count
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusBar.SetWidth(width)
}

// Err returns the last error that occurred.
func (v *View) Err() error {
	return v.err
}
