package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Equal(t, StateIdle, bar.State())
	assert.Equal(t, 80, bar.Width())
}

func TestBar_SetProgress(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateReviewing)
	bar.SetProgress(3, 10, 1)

	out := bar.View()
	assert.Contains(t, out, "3/10 labeled")
	assert.Contains(t, out, "1 skipped")
}

func TestBar_View(t *testing.T) {
	t.Run("idle shows ready", func(t *testing.T) {
		bar := NewBar(nil, nil)
		assert.Contains(t, bar.View(), "Ready")
	})

	t.Run("error shows message", func(t *testing.T) {
		bar := NewBar(nil, nil)
		bar.SetState(StateError)
		bar.SetMessage("pass file missing")
		assert.Contains(t, bar.View(), "pass file missing")
	})

	t.Run("finished shows completion", func(t *testing.T) {
		bar := NewBar(nil, nil)
		bar.SetState(StateFinished)
		assert.Contains(t, bar.View(), "Session complete")
	})

	t.Run("reviewing shows review hints", func(t *testing.T) {
		bar := NewBar(nil, nil)
		bar.SetState(StateReviewing)
		out := bar.View()
		assert.Contains(t, out, "accept")
		assert.Contains(t, out, "skip")
	})
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetProgress(5, 10, 2)

	bar.Clear()

	assert.Equal(t, StateIdle, bar.State())
	assert.Empty(t, bar.Message())
	assert.Equal(t, 0, bar.Labeled())
}
