package detectionfile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/slotlab/slotcheck-cli/internal/core/ports/driven"
	"github.com/slotlab/slotcheck-cli/internal/logger"
)

// reloadRate caps how often filesystem events translate into reloads.
// Pipelines rewrite the file in several chunks; one reload per second is
// plenty for a human reviewer.
var reloadRate = rate.Limit(1)

// Watcher reloads the detection store whenever the detections file
// changes on disk.
type Watcher struct {
	path    string
	store   driven.DetectionStoreWriter
	ledger  driven.CorrectionLedger
	limiter *rate.Limiter

	// OnReload, if set, is called after every successful reload.
	OnReload func()

	// OnError, if set, is called when a reload fails and takes over
	// error reporting from the watcher's own log line. Watching
	// continues; a half-written file usually parses on the next event.
	OnError func(err error)
}

// NewWatcher creates a watcher for the given detections file.
func NewWatcher(path string, store driven.DetectionStoreWriter, ledger driven.CorrectionLedger) *Watcher {
	return &Watcher{
		path:    path,
		store:   store,
		ledger:  ledger,
		limiter: rate.NewLimiter(reloadRate, 1),
	}
}

// Watch blocks, reloading on file changes, until ctx is cancelled.
// The parent directory is watched rather than the file itself so
// rename-over-write (the usual atomic save) keeps working.
func (w *Watcher) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Debug("watching %s for detection updates", w.path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !w.limiter.Allow() {
				continue // coalesce event bursts
			}
			w.reload()
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	if err := Load(w.path, w.store, w.ledger); err != nil {
		if w.OnError != nil {
			w.OnError(err)
		} else {
			logger.Warn("reload failed: %v", err)
		}
		return
	}
	if w.OnReload != nil {
		w.OnReload()
	}
}
