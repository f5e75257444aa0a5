package observability

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-checker/internal/dictionary"
	"github.com/jonathan/ats-checker/internal/types"
)

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(&types.AnalysisResult{
		ATSScore:        84,
		MatchedKeywords: []string{"Python", "SQL"},
		MissingKeywords: []string{"AWS"},
		Warnings:        []string{},
		Suggestions:     []string{"Add experience with AWS"},
		Breakdown:       &types.ScoreBreakdown{KeywordMatch: 67, Completeness: 100, Formatting: 100, Density: 100},
	})

	out := buf.String()
	assert.Contains(t, out, "ANALYSIS RESULT")
	assert.Contains(t, out, "ATS Score: 84 / 100")
	assert.Contains(t, out, "keyword match 67")
	assert.Contains(t, out, "Matched keywords:")
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "Missing keywords:")
	assert.Contains(t, out, "AWS")
	assert.NotContains(t, out, "Warnings:", "empty lists are omitted")
}

func TestPrintResultTruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	missing := make([]string, 12)
	for i := range missing {
		missing[i] = fmt.Sprintf("Keyword%d", i)
	}
	p.PrintResult(&types.AnalysisResult{ATSScore: 10, MissingKeywords: missing})

	out := buf.String()
	assert.Contains(t, out, "Keyword7")
	assert.NotContains(t, out, "Keyword8")
	assert.Contains(t, out, "... and 4 more")
}

func TestPrintResultNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResult(nil)
	assert.Empty(t, buf.String())
}

func TestPrintDictionary(t *testing.T) {
	dict, err := dictionary.Load([]byte(`{"version":"9.9.9","entries":[
		{"canonical":"Go","category":"language"},
		{"canonical":"Rust","category":"language"},
		{"canonical":"Docker","category":"tool"}]}`))
	require.NoError(t, err)

	var buf bytes.Buffer
	NewPrinter(&buf).PrintDictionary(dict)

	out := buf.String()
	assert.Contains(t, out, "KEYWORD DICTIONARY")
	assert.Contains(t, out, "Version:  9.9.9")
	assert.Contains(t, out, "Keywords: 3")
	assert.Contains(t, out, "language")
	assert.Contains(t, out, "tool")
	assert.NotContains(t, out, "framework", "empty categories are omitted")
}

func TestPrintBoxTruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	long := make([]byte, 100)
	for i := range long {
		long[i] = 'x'
	}
	p.printBox("TITLE", string(long))

	assert.Contains(t, buf.String(), "...")
	for _, line := range bytes.Split(buf.Bytes(), []byte("\n")) {
		assert.LessOrEqual(t, len([]rune(string(line))), boxWidth, "box lines stay within width")
	}
}
