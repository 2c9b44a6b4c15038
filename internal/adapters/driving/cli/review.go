package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/slotlab/slotcheck-cli/internal/adapters/driven/detectionfile"
	"github.com/slotlab/slotcheck-cli/internal/adapters/driving/tui"
	"github.com/slotlab/slotcheck-cli/internal/adapters/driving/tui/messages"
	"github.com/slotlab/slotcheck-cli/internal/core/domain"
	"github.com/slotlab/slotcheck-cli/internal/logger"
)

var reviewWatch bool

var reviewCmd = &cobra.Command{
	Use:   "review <detections.json>",
	Short: "Review a detection pass slot by slot",
	Long: `Launch the interactive batch-review session for a detection pass.

Each slot is presented in turn with its detected item, confidence, and
up to six ranked alternatives. Accepting, overriding, or marking a slot
empty writes a correction; the session ends with a summary and, when
ground truth exists for the image, a precision/recall/F1 score.

Controls:
  ←/h →/l - Previous / next slot
  Enter   - Accept detection (or confirm empty)
  1-6     - Apply ranked alternative
  e       - Mark slot empty
  s       - Skip slot
  f, Esc  - Finish session`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().BoolVar(&reviewWatch, "watch", true, "reload the pass when the file changes")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if batchWorkflow == nil || reviewService == nil || detectionStore == nil || correctionLedger == nil {
		return errors.New("review services not configured")
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("review requires an interactive terminal")
	}

	path := args[0]
	if err := detectionfile.Load(path, detectionStore, correctionLedger); err != nil {
		return fmt.Errorf("loading detections: %w", err)
	}

	if err := batchWorkflow.Enter(); err != nil {
		if errors.Is(err, domain.ErrNothingToReview) {
			cmd.Println("Nothing to review: the pass has no slots.")
			return nil
		}
		return fmt.Errorf("starting session: %w", err)
	}

	ports := tui.NewPorts(batchWorkflow, reviewService, truthService)
	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if reviewWatch {
		watchCtx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		watcher := detectionfile.NewWatcher(path, detectionStore, correctionLedger)
		watcher.OnReload = func() {
			p.Send(messages.DetectionsReloaded{})
		}
		// Stderr is hidden behind the altscreen; report failures
		// through the TUI instead.
		watcher.OnError = func(err error) {
			p.Send(messages.DetectionsReloaded{Err: err})
		}

		go func() {
			if err := watcher.Watch(watchCtx); err != nil {
				logger.Warn("watcher stopped: %v", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
