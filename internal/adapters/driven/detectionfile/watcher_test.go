package detectionfile

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotlab/slotcheck-cli/internal/adapters/driven/storage/memory"
	"github.com/slotlab/slotcheck-cli/internal/logger"
)

func TestWatcher_ReloadSuccess(t *testing.T) {
	path := writePass(t, `{"image": "a.png", "slots": [{"index": 0, "empty": true}]}`)
	store := memory.NewDetectionStore()
	w := NewWatcher(path, store, memory.NewLedger())

	reloads := 0
	w.OnReload = func() { reloads++ }

	w.reload()

	assert.Equal(t, 1, reloads)
	assert.Equal(t, "a.png", store.ImagePath())
}

func TestWatcher_ReloadFailureKeepsStore(t *testing.T) {
	path := writePass(t, `{"image": "a.png", "slots": [{"index": 0, "empty": true}]}`)
	store := memory.NewDetectionStore()
	w := NewWatcher(path, store, memory.NewLedger())
	w.reload()

	var gotErr error
	w.OnError = func(err error) { gotErr = err }
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0600))

	w.reload()

	assert.Error(t, gotErr)
	// The previous pass stays loaded
	assert.Equal(t, "a.png", store.ImagePath())
	assert.Equal(t, 1, store.Size())
}

func TestWatcher_WatchStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detections.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"image":"a.png","slots":[]}`), 0600))
	w := NewWatcher(path, memory.NewDetectionStore(), memory.NewLedger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcher_ReloadFailureLogsOnce(t *testing.T) {
	path := writePass(t, `{broken`)
	w := NewWatcher(path, memory.NewDetectionStore(), memory.NewLedger())

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})

	// With a callback set, the callback owns error reporting.
	errs := 0
	w.OnError = func(error) { errs++ }
	w.reload()
	assert.Equal(t, 1, errs)
	assert.NotContains(t, buf.String(), "reload failed")

	// Without a callback, the watcher logs the failure itself.
	w.OnError = nil
	w.reload()
	assert.Equal(t, 1, strings.Count(buf.String(), "reload failed"))
}
