// Package suggestions turns analysis gaps into ranked, human-readable
// advice. Ordering follows the aggregation weights so the most
// score-impactful fix appears first: keyword gaps, then section gaps, then
// density, then formatting.
package suggestions

import (
	"fmt"

	"github.com/jonathan/ats-checker/internal/config"
	"github.com/jonathan/ats-checker/internal/sections"
	"github.com/jonathan/ats-checker/internal/types"
)

// Priority groups, lower is more impactful.
const (
	priorityKeyword = iota + 1
	prioritySection
	priorityDensity
	priorityFormatting
)

// Generate builds the suggestion list from the missing-keyword partition,
// section presence, formatting warnings, and the density ratio. Output is
// deterministic: same gaps, same suggestions, same order.
func Generate(matches []types.KeywordMatch, presence sections.Presence, warnings []types.Warning, densityRatio float64, requiredCount int, cfg *config.Config) []types.Suggestion {
	out := []types.Suggestion{}

	// One suggestion per missing keyword, in match (dictionary) order.
	for _, m := range matches {
		if m.Matched {
			continue
		}
		out = append(out, types.Suggestion{
			Message:  fmt.Sprintf("Add experience with %s; the job description asks for it but your resume never mentions it.", m.Keyword),
			Priority: priorityKeyword,
		})
	}

	// One suggestion per missing mandatory section.
	for _, s := range presence.MissingMandatory() {
		out = append(out, types.Suggestion{
			Message:  fmt.Sprintf("Add a clearly labeled %q section so parsers can file your background correctly.", s),
			Priority: prioritySection,
		})
	}

	// Density outside the target band.
	if requiredCount > 0 {
		switch {
		case densityRatio < cfg.DensityBandLow:
			out = append(out, types.Suggestion{
				Message: fmt.Sprintf("The skills the job asks for barely appear in your resume. Work them into your experience bullets (roughly %.0f%% of your text).",
					cfg.DensityBandTarget*100),
				Priority: priorityDensity,
			})
		case densityRatio > cfg.DensityBandHigh:
			out = append(out, types.Suggestion{
				Message: fmt.Sprintf("Keywords repeat so often it reads as stuffing. Cut repetition back toward %.0f%% of your text and add supporting detail instead.",
					cfg.DensityBandTarget*100),
				Priority: priorityDensity,
			})
		}
	}

	// Formatting advice for the remaining warning kinds; section warnings
	// were already covered above.
	for _, w := range warnings {
		if msg := formattingAdvice(w.Kind); msg != "" {
			out = append(out, types.Suggestion{Message: msg, Priority: priorityFormatting})
		}
	}

	return out
}

func formattingAdvice(kind types.WarningKind) string {
	switch kind {
	case types.WarningTooShort:
		return "Expand your resume with concrete accomplishments; very short documents score poorly with parsers and recruiters alike."
	case types.WarningTooLong:
		return "Trim your resume to the most relevant roles and achievements."
	case types.WarningNoContact:
		return "Add your email address and phone number as plain text near the top of the document."
	case types.WarningNonLinearLayout:
		return "Switch to a single-column layout; tables and columns often scramble ATS text extraction."
	case types.WarningFewBullets:
		return "Convert paragraph descriptions into bullet points so each achievement parses as a separate item."
	default:
		return ""
	}
}
