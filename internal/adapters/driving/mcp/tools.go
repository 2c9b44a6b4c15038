package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/slotlab/slotcheck-cli/internal/core/domain"
)

// EffectiveInput is the input schema for the resolve_effective tool.
type EffectiveInput struct{}

// EffectiveOutput is the output schema for the resolve_effective tool.
type EffectiveOutput struct {
	Slots []EffectiveSlotOutput `json:"slots"`
	Count int                   `json:"count"`
}

// EffectiveSlotOutput represents one slot of the effective labeling.
type EffectiveSlotOutput struct {
	SlotIndex int    `json:"slot_index"`
	ItemName  string `json:"item_name"`
}

// ScoreInput is the input schema for the score_image tool.
type ScoreInput struct{}

// ScoreOutput is the output schema for the score_image and score_names tools.
type ScoreOutput struct {
	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	F1             float64 `json:"f1"`
	TruePositives  int     `json:"true_positives"`
	FalsePositives int     `json:"false_positives"`
	FalseNegatives int     `json:"false_negatives"`
}

// ScoreNamesInput is the input schema for the score_names tool.
type ScoreNamesInput struct {
	Effective []string `json:"effective" jsonschema:"item names asserted by the labeling being scored"`
	Truth     []string `json:"truth" jsonschema:"reference item names to score against"`
}

// ClassifyInput is the input schema for the classify_resolution tool.
type ClassifyInput struct {
	Width  int `json:"width" jsonschema:"screen width in pixels"`
	Height int `json:"height" jsonschema:"screen height in pixels"`
}

// ClassifyOutput is the output schema for the classify_resolution tool.
type ClassifyOutput struct {
	Match  string        `json:"match"`
	Preset *PresetOutput `json:"preset,omitempty"`
}

// PresetOutput represents a calibration preset.
type PresetOutput struct {
	ID         string `json:"id"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	GridLeft   int    `json:"grid_left"`
	GridTop    int    `json:"grid_top"`
	CellWidth  int    `json:"cell_width"`
	CellHeight int    `json:"cell_height"`
	Columns    int    `json:"columns"`
	Rows       int    `json:"rows"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_effective",
		Description: "Return the effective labeling of the loaded image: corrections merged over raw detections",
	}, s.handleResolveEffective)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "score_image",
		Description: "Score the effective labeling of the loaded image against its stored ground truth",
	}, s.handleScoreImage)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "score_names",
		Description: "Score an item-name multiset against a reference multiset (precision, recall, F1)",
	}, s.handleScoreNames)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "classify_resolution",
		Description: "Classify a screen resolution against stored calibration presets",
	}, s.handleClassifyResolution)
}

// handleResolveEffective handles the resolve_effective tool invocation.
func (s *Server) handleResolveEffective(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EffectiveInput,
) (*mcp.CallToolResult, EffectiveOutput, error) {
	effective := s.ports.Review.Effective()

	output := EffectiveOutput{
		Slots: make([]EffectiveSlotOutput, len(effective)),
		Count: len(effective),
	}
	for i := range effective {
		output.Slots[i] = EffectiveSlotOutput{
			SlotIndex: effective[i].SlotIndex,
			ItemName:  effective[i].ItemName,
		}
	}

	return nil, output, nil
}

// handleScoreImage handles the score_image tool invocation.
func (s *Server) handleScoreImage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ScoreInput,
) (*mcp.CallToolResult, ScoreOutput, error) {
	score, err := s.ports.Review.ScoreAgainst(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoImageLoaded) {
			return nil, ScoreOutput{}, errors.New("no detection pass is loaded")
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ScoreOutput{}, errors.New("no ground truth entry for the loaded image")
		}
		return nil, ScoreOutput{}, err
	}

	return nil, scoreOutput(*score), nil
}

// handleScoreNames handles the score_names tool invocation.
func (s *Server) handleScoreNames(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ScoreNamesInput,
) (*mcp.CallToolResult, ScoreOutput, error) {
	score := s.ports.Review.ScoreNames(input.Effective, input.Truth)
	return nil, scoreOutput(score), nil
}

// handleClassifyResolution handles the classify_resolution tool invocation.
func (s *Server) handleClassifyResolution(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ClassifyInput,
) (*mcp.CallToolResult, ClassifyOutput, error) {
	if s.ports.Preset == nil {
		return nil, ClassifyOutput{}, errors.New("preset service is not configured")
	}
	if input.Width <= 0 || input.Height <= 0 {
		return nil, ClassifyOutput{}, errors.New("width and height must be positive")
	}

	preset, match, err := s.ports.Preset.Classify(ctx, input.Width, input.Height)
	if err != nil {
		return nil, ClassifyOutput{}, err
	}

	output := ClassifyOutput{Match: string(match)}
	if preset != nil {
		output.Preset = &PresetOutput{
			ID:         preset.ID,
			Width:      preset.Width,
			Height:     preset.Height,
			GridLeft:   preset.GridLeft,
			GridTop:    preset.GridTop,
			CellWidth:  preset.CellWidth,
			CellHeight: preset.CellHeight,
			Columns:    preset.Columns,
			Rows:       preset.Rows,
		}
	}

	return nil, output, nil
}

// scoreOutput converts a domain score to the tool output shape.
func scoreOutput(s domain.Score) ScoreOutput {
	return ScoreOutput{
		Precision:      s.Precision,
		Recall:         s.Recall,
		F1:             s.F1,
		TruePositives:  s.TruePositives,
		FalsePositives: s.FalsePositives,
		FalseNegatives: s.FalseNegatives,
	}
}
