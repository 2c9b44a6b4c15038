package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slotlab/slotcheck-cli/internal/adapters/driving/tui/messages"
	"github.com/slotlab/slotcheck-cli/internal/adapters/driving/tui/styles"
	"github.com/slotlab/slotcheck-cli/internal/adapters/driving/tui/views/batch"
	"github.com/slotlab/slotcheck-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// batchView is the slot-by-slot review view component.
	batchView *batch.View

	// summary holds the finished session's summary for display.
	summary *domain.BatchSummary

	// score holds the post-session agreement with ground truth, if any.
	score *domain.Score

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	batchView := batch.NewView(s, ports.Batch)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		batchView:   batchView,
		currentView: messages.ViewReview,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("slotcheck - Batch Review"),
		a.batchView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.batchView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewReview:
			if msg.String() == "?" {
				a.currentView = messages.ViewHelp
				return a, nil
			}
			a.batchView, cmd = a.batchView.Update(msg)
			a.err = a.batchView.Err()
			return a, cmd

		case messages.ViewSummary:
			// Any key from the summary exits
			return a, tea.Quit

		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewReview
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.SessionFinished:
		if msg.Err != nil {
			a.err = msg.Err
			return a, tea.Quit
		}
		a.summary = msg.Summary
		a.currentView = messages.ViewSummary
		return a, a.computeScore()

	case messages.ScoreComputed:
		// Scoring is best-effort: missing truth just means no score line.
		if msg.Err == nil {
			a.score = msg.Score
		}
		return a, nil

	case messages.DetectionsReloaded:
		// Reload failures are transient; the review view reports them
		// and the previous pass stays loaded.
		a.batchView, cmd = a.batchView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.batchView, cmd = a.batchView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view
	if a.currentView == messages.ViewReview {
		a.batchView, cmd = a.batchView.Update(msg)
	}

	return a, cmd
}

// computeScore scores the effective labeling against ground truth once a
// session finishes.
func (a *App) computeScore() tea.Cmd {
	return func() tea.Msg {
		score, err := a.ports.Review.ScoreAgainst(a.ctx)
		return messages.ScoreComputed{Score: score, Err: err}
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewReview:
		return a.batchView.View()
	case messages.ViewSummary:
		return a.viewSummary()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.batchView.View()
	}
}

// viewSummary renders the session summary.
func (a *App) viewSummary() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Session Summary"))
	b.WriteString("\n\n")

	if a.summary != nil {
		b.WriteString(fmt.Sprintf("  New labels:  %d\n", a.summary.NewLabels))
		b.WriteString(fmt.Sprintf("  Skipped:     %d\n", a.summary.Skipped))
		b.WriteString(fmt.Sprintf("  Total slots: %d\n", a.summary.Total))
		b.WriteString(fmt.Sprintf("  Elapsed:     %.1fs\n", a.summary.ElapsedSeconds))
	}

	if a.score != nil {
		b.WriteString("\n")
		b.WriteString(a.styles.Subtitle.Render("Agreement with ground truth"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  Precision: %.3f\n", a.score.Precision))
		b.WriteString(fmt.Sprintf("  Recall:    %.3f\n", a.score.Recall))
		b.WriteString(fmt.Sprintf("  F1:        %.3f\n", a.score.F1))
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("press any key to exit"))

	return b.String()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Review:
  ←/h →/l     Previous / next slot
  enter       Accept detection (or confirm empty)
  1-6         Apply ranked alternative
  e           Mark slot empty
  s           Skip slot
  f, esc      Finish session

Global:
  ?           This help
  ctrl+c      Quit

[esc] back to review`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Summary returns the finished session's summary, if any.
func (a *App) Summary() *domain.BatchSummary {
	return a.summary
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.batchView.SetDimensions(width, height)
}
