package scoring

import (
	"fmt"

	"github.com/jonathan/ats-checker/internal/config"
	"github.com/jonathan/ats-checker/internal/types"
)

// Aggregate combines the four sub-scores under the configured weights.
//
// Keyword match is matchedCount/requiredCount (100% when the required set
// is empty), completeness is the mandatory-section fraction, formatting is
// 100 minus a per-warning penalty floored at 0, and density comes from
// Density. The final score is the weighted sum rounded to the nearest
// integer and clamped to [0, 100].
//
// Returns an error when the weights do not sum to 100; the caller surfaces
// it as an invalid-config failure.
func Aggregate(matchedCount, requiredCount int, completeness float64, warningCount, density int, cfg *config.Config) (int, types.ScoreBreakdown, error) {
	if sum := cfg.Weights.Sum(); sum != 100 {
		return 0, types.ScoreBreakdown{}, fmt.Errorf("weights must sum to 100, got %d", sum)
	}

	keywordScore := 100
	if requiredCount > 0 {
		keywordScore = round(100 * float64(matchedCount) / float64(requiredCount))
	}

	formattingScore := 100 - cfg.PenaltyPerWarning*warningCount
	if formattingScore < 0 {
		formattingScore = 0
	}

	breakdown := types.ScoreBreakdown{
		KeywordMatch: clamp(keywordScore),
		Completeness: clamp(round(100 * completeness)),
		Formatting:   formattingScore,
		Density:      clamp(density),
	}

	weighted := float64(breakdown.KeywordMatch)*float64(cfg.Weights.KeywordMatch) +
		float64(breakdown.Completeness)*float64(cfg.Weights.Completeness) +
		float64(breakdown.Formatting)*float64(cfg.Weights.Formatting) +
		float64(breakdown.Density)*float64(cfg.Weights.Density)

	return clamp(round(weighted / 100)), breakdown, nil
}
