package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slotlab/slotcheck-cli/internal/adapters/driven/detectionfile"
	"github.com/slotlab/slotcheck-cli/internal/core/domain"
)

var scoreJSON bool

var scoreCmd = &cobra.Command{
	Use:   "score <detections.json>",
	Short: "Score a detection pass against ground truth",
	Long: `Load a detection pass and score its effective labeling against the
stored ground truth for the image. Without corrections, the effective
labeling is just what the detector produced; run after a review session
to score the corrected labeling instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "output the score as JSON")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	if reviewService == nil || detectionStore == nil || correctionLedger == nil {
		return errors.New("review service not configured")
	}

	if err := detectionfile.Load(args[0], detectionStore, correctionLedger); err != nil {
		return fmt.Errorf("loading detections: %w", err)
	}

	score, err := reviewService.ScoreAgainst(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("no ground truth entry for this image; add one with 'slotcheck truth import'")
		}
		return fmt.Errorf("scoring failed: %w", err)
	}

	if scoreJSON {
		return outputScoreJSON(cmd, score)
	}

	return outputScoreText(cmd, score)
}

func outputScoreJSON(cmd *cobra.Command, score *domain.Score) error {
	data, err := json.MarshalIndent(map[string]any{
		"precision":       score.Precision,
		"recall":          score.Recall,
		"f1":              score.F1,
		"true_positives":  score.TruePositives,
		"false_positives": score.FalsePositives,
		"false_negatives": score.FalseNegatives,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal score: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputScoreText(cmd *cobra.Command, score *domain.Score) error {
	cmd.Printf("Precision: %.3f\n", score.Precision)
	cmd.Printf("Recall:    %.3f\n", score.Recall)
	cmd.Printf("F1:        %.3f\n", score.F1)
	cmd.Println()
	cmd.Printf("TP: %d  FP: %d  FN: %d\n",
		score.TruePositives, score.FalsePositives, score.FalseNegatives)
	return nil
}
