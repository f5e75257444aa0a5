// Package types defines the shared data model for resume analysis results.
package types

// KeywordMatch records the outcome of matching one required keyword against
// the resume token stream.
type KeywordMatch struct {
	Keyword        string   `json:"keyword"`                  // Canonical keyword name
	Category       string   `json:"category"`                 // Dictionary category
	Matched        bool     `json:"matched"`                  // Whether any alias was found
	Occurrences    int      `json:"occurrences"`              // Total whole-token/phrase hits
	MatchedAliases []string `json:"matchedAliases,omitempty"` // Alias variants actually found
}

// WarningKind identifies a formatting rule that fired.
type WarningKind string

const (
	WarningTooShort        WarningKind = "too_short"
	WarningTooLong         WarningKind = "too_long"
	WarningNoContact       WarningKind = "no_contact"
	WarningMissingSection  WarningKind = "missing_section"
	WarningNonLinearLayout WarningKind = "non_linear_layout"
	WarningFewBullets      WarningKind = "few_bullets"
)

// Warning is a single ATS-risk finding produced by the format checker.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
}

// Suggestion is an actionable improvement tip. Priority groups suggestions by
// the weight of the sub-score they affect; lower is more impactful.
type Suggestion struct {
	Message  string `json:"message"`
	Priority int    `json:"priority"`
}

// ScoreBreakdown exposes the four weighted sub-scores for auditability.
// Each value is an integer in [0, 100] before weighting.
type ScoreBreakdown struct {
	KeywordMatch int `json:"keywordMatch"`
	Completeness int `json:"completeness"`
	Formatting   int `json:"formatting"`
	Density      int `json:"density"`
}

// AnalysisResult is the engine's output contract. Field names are fixed for
// compatibility with any presentation layer.
type AnalysisResult struct {
	ATSScore        int             `json:"atsScore"`
	MatchedKeywords []string        `json:"matchedKeywords"`
	MissingKeywords []string        `json:"missingKeywords"`
	Warnings        []string        `json:"warnings"`
	Suggestions     []string        `json:"suggestions"`
	Breakdown       *ScoreBreakdown `json:"breakdown,omitempty"`

	// Matches carries the per-keyword detail behind the matched/missing
	// partition. Omitted from compact presentation payloads.
	Matches []KeywordMatch `json:"matches,omitempty"`
}

// Messages flattens a warning list to its display strings, preserving order.
func Messages(warnings []Warning) []string {
	out := make([]string, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, w.Message)
	}
	return out
}

// SuggestionMessages flattens a suggestion list to its display strings,
// preserving order.
func SuggestionMessages(suggestions []Suggestion) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, s.Message)
	}
	return out
}
