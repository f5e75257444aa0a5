// Package scoring computes the density sub-score and the final weighted
// aggregation. All arithmetic is integer-rounded and clamped so identical
// inputs always produce identical scores.
package scoring

import "github.com/jonathan/ats-checker/internal/config"

// Density maps the keyword repetition ratio (total matched occurrences over
// resume token count) through the configured policy band:
//
//   - below DensityBandLow the score ramps linearly from 0 (relevant skills
//     are under-emphasized);
//   - within [DensityBandLow, DensityBandHigh] the score is 100;
//   - above DensityBandHigh the score decays toward 0 (keyword stuffing).
//
// With no required keywords there is nothing to over- or under-use, so the
// score is vacuously 100, mirroring the coverage rule.
func Density(totalOccurrences, resumeTokenCount, requiredCount int, cfg *config.Config) int {
	if requiredCount == 0 {
		return 100
	}
	if resumeTokenCount == 0 {
		return 0
	}

	ratio := float64(totalOccurrences) / float64(resumeTokenCount)

	switch {
	case ratio < cfg.DensityBandLow:
		return clamp(round(100 * ratio / cfg.DensityBandLow))
	case ratio <= cfg.DensityBandHigh:
		return 100
	default:
		return clamp(round(100 * cfg.DensityBandHigh / ratio))
	}
}

// Ratio returns the raw density ratio, used by the suggestion generator to
// tell under-use from stuffing.
func Ratio(totalOccurrences, resumeTokenCount int) float64 {
	if resumeTokenCount == 0 {
		return 0
	}
	return float64(totalOccurrences) / float64(resumeTokenCount)
}

func round(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
