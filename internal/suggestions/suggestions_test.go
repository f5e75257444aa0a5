package suggestions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-checker/internal/config"
	"github.com/jonathan/ats-checker/internal/sections"
	"github.com/jonathan/ats-checker/internal/types"
)

func fullPresence() sections.Presence {
	p := make(sections.Presence)
	for _, s := range sections.Standard {
		p[s] = sections.Detection{Found: true}
	}
	return p
}

func TestGenerateMissingKeywords(t *testing.T) {
	cfg := config.Default()
	matches := []types.KeywordMatch{
		{Keyword: "Python", Matched: true, Occurrences: 2},
		{Keyword: "SQL", Matched: false},
		{Keyword: "AWS", Matched: false},
	}

	out := Generate(matches, fullPresence(), nil, 0.05, 3, &cfg)

	require.Len(t, out, 2)
	assert.Contains(t, out[0].Message, "SQL")
	assert.Contains(t, out[1].Message, "AWS")
	assert.Equal(t, 1, out[0].Priority)
	assert.Equal(t, 1, out[1].Priority)
}

func TestGenerateMissingSections(t *testing.T) {
	cfg := config.Default()
	presence := sections.Analyze("Experience")

	out := Generate(nil, presence, nil, 0.05, 1, &cfg)

	require.Len(t, out, 2)
	assert.Contains(t, out[0].Message, `"education"`)
	assert.Contains(t, out[1].Message, `"skills"`)
	assert.Equal(t, 2, out[0].Priority)
}

func TestGenerateDensity(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name     string
		ratio    float64
		required int
		want     string
	}{
		{"Under-use", 0.002, 3, "barely appear"},
		{"In band", 0.05, 3, ""},
		{"Stuffing", 0.5, 3, "stuffing"},
		{"No required keywords suppresses advice", 0.5, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Generate(nil, fullPresence(), nil, tt.ratio, tt.required, &cfg)
			if tt.want == "" {
				assert.Empty(t, out)
			} else {
				require.Len(t, out, 1)
				assert.Contains(t, out[0].Message, tt.want)
				assert.Equal(t, 3, out[0].Priority)
			}
		})
	}
}

func TestGenerateFormattingAdvice(t *testing.T) {
	cfg := config.Default()
	warnings := []types.Warning{
		{Kind: types.WarningTooShort},
		{Kind: types.WarningNoContact},
		{Kind: types.WarningMissingSection}, // covered by the section suggestions, no advice here
		{Kind: types.WarningNonLinearLayout},
		{Kind: types.WarningFewBullets},
	}

	out := Generate(nil, fullPresence(), warnings, 0.05, 1, &cfg)

	require.Len(t, out, 4)
	for _, s := range out {
		assert.Equal(t, 4, s.Priority)
	}
	assert.Contains(t, out[0].Message, "Expand your resume")
	assert.Contains(t, out[1].Message, "email address")
	assert.Contains(t, out[2].Message, "single-column")
	assert.Contains(t, out[3].Message, "bullet points")
}

func TestGeneratePriorityOrdering(t *testing.T) {
	cfg := config.Default()
	matches := []types.KeywordMatch{{Keyword: "Docker", Matched: false}}
	presence := sections.Analyze("Experience\nEducation")
	warnings := []types.Warning{{Kind: types.WarningTooLong}}

	out := Generate(matches, presence, warnings, 0.5, 1, &cfg)

	require.Len(t, out, 4)
	priorities := make([]int, 0, len(out))
	for _, s := range out {
		priorities = append(priorities, s.Priority)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, priorities)
	assert.IsNonDecreasing(t, priorities)
}

func TestGenerateEmptyGaps(t *testing.T) {
	cfg := config.Default()
	out := Generate([]types.KeywordMatch{{Keyword: "Go", Matched: true}}, fullPresence(), nil, 0.05, 1, &cfg)

	assert.NotNil(t, out)
	assert.Empty(t, out)
}
