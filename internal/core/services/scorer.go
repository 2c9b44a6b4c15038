package services

import "github.com/slotlab/slotcheck-cli/internal/core/domain"

// ScoreNames computes multiset precision/recall/F1 between an effective
// labeling and a ground truth labeling.
//
// For every distinct name, the matched count min(effective, truth) is a
// true positive; surplus effective occurrences are false positives and
// surplus truth occurrences are false negatives. Names absent from the
// effective labeling contribute their full truth count as false
// negatives. Zero denominators yield 0, never NaN: precision is 0 when
// nothing was asserted, recall is 0 when truth is empty, F1 is 0 when
// both components are 0.
func ScoreNames(effective, truth []string) domain.Score {
	effCounts := countNames(effective)
	truthCounts := countNames(truth)

	var score domain.Score
	for name, d := range effCounts {
		t := truthCounts[name]
		if d < t {
			score.TruePositives += d
		} else {
			score.TruePositives += t
			score.FalsePositives += d - t
		}
	}
	for name, t := range truthCounts {
		if d := effCounts[name]; t > d {
			score.FalseNegatives += t - d
		}
	}

	if asserted := score.TruePositives + score.FalsePositives; asserted > 0 {
		score.Precision = float64(score.TruePositives) / float64(asserted)
	}
	if relevant := score.TruePositives + score.FalseNegatives; relevant > 0 {
		score.Recall = float64(score.TruePositives) / float64(relevant)
	}
	if sum := score.Precision + score.Recall; sum > 0 {
		score.F1 = 2 * score.Precision * score.Recall / sum
	}
	return score
}

func countNames(names []string) map[string]int {
	counts := make(map[string]int, len(names))
	for _, name := range names {
		counts[name]++
	}
	return counts
}
