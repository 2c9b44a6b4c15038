package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotlab/slotcheck-cli/internal/core/domain"
)

func TestServer_handleResolveEffective(t *testing.T) {
	ctx := context.Background()

	t.Run("returns effective labeling in slot order", func(t *testing.T) {
		mockReview := &mockReviewService{
			effective: []domain.EffectiveDetection{
				{SlotIndex: 0, ItemName: "Rusty Sword"},
				{SlotIndex: 2, ItemName: "Health Potion"},
			},
		}

		ports := &Ports{Review: mockReview}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleResolveEffective(ctx, nil, EffectiveInput{})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Len(t, output.Slots, 2)
		assert.Equal(t, 0, output.Slots[0].SlotIndex)
		assert.Equal(t, "Rusty Sword", output.Slots[0].ItemName)
		assert.Equal(t, 2, output.Slots[1].SlotIndex)
		assert.Equal(t, "Health Potion", output.Slots[1].ItemName)
	})

	t.Run("empty labeling yields zero count", func(t *testing.T) {
		ports := &Ports{Review: &mockReviewService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleResolveEffective(ctx, nil, EffectiveInput{})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.Empty(t, output.Slots)
	})
}

func TestServer_handleScoreImage(t *testing.T) {
	ctx := context.Background()

	t.Run("returns score", func(t *testing.T) {
		mockReview := &mockReviewService{
			score: &domain.Score{
				Precision:      0.75,
				Recall:         0.6,
				F1:             0.6666666666666666,
				TruePositives:  3,
				FalsePositives: 1,
				FalseNegatives: 2,
			},
		}

		ports := &Ports{Review: mockReview}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleScoreImage(ctx, nil, ScoreInput{})

		require.NoError(t, err)
		assert.Equal(t, 0.75, output.Precision)
		assert.Equal(t, 0.6, output.Recall)
		assert.Equal(t, 3, output.TruePositives)
		assert.Equal(t, 1, output.FalsePositives)
		assert.Equal(t, 2, output.FalseNegatives)
	})

	t.Run("no image loaded maps to friendly error", func(t *testing.T) {
		mockReview := &mockReviewService{err: domain.ErrNoImageLoaded}
		ports := &Ports{Review: mockReview}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleScoreImage(ctx, nil, ScoreInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no detection pass")
	})

	t.Run("missing truth maps to friendly error", func(t *testing.T) {
		mockReview := &mockReviewService{err: domain.ErrNotFound}
		ports := &Ports{Review: mockReview}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleScoreImage(ctx, nil, ScoreInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ground truth")
	})
}

func TestServer_handleScoreNames(t *testing.T) {
	ctx := context.Background()

	t.Run("passes through service score", func(t *testing.T) {
		mockReview := &mockReviewService{
			named: domain.Score{Precision: 1, Recall: 0.5, F1: 0.6666666666666666, TruePositives: 1, FalseNegatives: 1},
		}
		ports := &Ports{Review: mockReview}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ScoreNamesInput{Effective: []string{"A"}, Truth: []string{"A", "B"}}
		_, output, err := server.handleScoreNames(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1.0, output.Precision)
		assert.Equal(t, 0.5, output.Recall)
		assert.Equal(t, 1, output.TruePositives)
	})
}

func TestServer_handleClassifyResolution(t *testing.T) {
	ctx := context.Background()

	t.Run("returns preset on exact match", func(t *testing.T) {
		mockPreset := &mockPresetService{
			preset: &domain.CalibrationPreset{
				ID:         "preset-1",
				Width:      1920,
				Height:     1080,
				GridLeft:   640,
				GridTop:    270,
				CellWidth:  64,
				CellHeight: 64,
				Columns:    10,
				Rows:       6,
			},
			match: domain.MatchExact,
		}

		ports := &Ports{Review: &mockReviewService{}, Preset: mockPreset}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ClassifyInput{Width: 1920, Height: 1080}
		_, output, err := server.handleClassifyResolution(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "exact", output.Match)
		require.NotNil(t, output.Preset)
		assert.Equal(t, "preset-1", output.Preset.ID)
		assert.Equal(t, 64, output.Preset.CellWidth)
	})

	t.Run("default tier has no preset", func(t *testing.T) {
		mockPreset := &mockPresetService{match: domain.MatchDefault}
		ports := &Ports{Review: &mockReviewService{}, Preset: mockPreset}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ClassifyInput{Width: 1366, Height: 768}
		_, output, err := server.handleClassifyResolution(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "default", output.Match)
		assert.Nil(t, output.Preset)
	})

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		ports := &Ports{Review: &mockReviewService{}, Preset: &mockPresetService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleClassifyResolution(ctx, nil, ClassifyInput{Width: 0, Height: 1080})
		require.Error(t, err)
	})

	t.Run("missing preset service returns error", func(t *testing.T) {
		ports := &Ports{Review: &mockReviewService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleClassifyResolution(ctx, nil, ClassifyInput{Width: 1920, Height: 1080})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not configured")
	})

	t.Run("propagates service failure", func(t *testing.T) {
		mockPreset := &mockPresetService{err: errors.New("store unavailable")}
		ports := &Ports{Review: &mockReviewService{}, Preset: mockPreset}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleClassifyResolution(ctx, nil, ClassifyInput{Width: 1920, Height: 1080})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store unavailable")
	})
}
