// Package format flags structural patterns known to break real ATS
// parsers. Every rule is evaluated independently and in a fixed order;
// warnings never suppress one another.
package format

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/ats-checker/internal/config"
	"github.com/jonathan/ats-checker/internal/sections"
	"github.com/jonathan/ats-checker/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`)
	// Runs of three or more spaces suggest column alignment.
	spaceRunPattern = regexp.MustCompile(`[^\S\n]{3,}`)
)

// bulletPrefixes are the characters that open a bulleted line.
var bulletPrefixes = []string{"-", "*", "•", "·", "‣", "–"}

// Check evaluates all formatting rules against the resume text. wordCount
// is the whitespace-delimited word count of the document.
func Check(text string, wordCount int, presence sections.Presence, cfg *config.Config) []types.Warning {
	warnings := []types.Warning{}

	// Document length
	if wordCount < cfg.MinWordCount {
		warnings = append(warnings, types.Warning{
			Kind: types.WarningTooShort,
			Message: fmt.Sprintf("Resume is very short (%d words). ATS parsers may treat it as an incomplete document; aim for at least %d words.",
				wordCount, cfg.MinWordCount),
		})
	} else if wordCount > cfg.MaxWordCount {
		warnings = append(warnings, types.Warning{
			Kind: types.WarningTooLong,
			Message: fmt.Sprintf("Resume is very long (%d words). Recruiters and parsers favor documents under %d words.",
				wordCount, cfg.MaxWordCount),
		})
	}

	// Contact information
	if !emailPattern.MatchString(text) && !phonePattern.MatchString(text) {
		warnings = append(warnings, types.Warning{
			Kind:    types.WarningNoContact,
			Message: "No email address or phone number detected. Include contact information in plain text near the top.",
		})
	}

	// Mandatory sections, one warning each, in fixed order
	for _, s := range presence.MissingMandatory() {
		warnings = append(warnings, types.Warning{
			Kind:    types.WarningMissingSection,
			Message: fmt.Sprintf("No %q section header detected. ATS parsers rely on standard section headings.", s),
		})
	}

	// Tabular / multi-column layout evidence
	if markers := layoutMarkers(text); markers > cfg.MaxLayoutMarkers {
		warnings = append(warnings, types.Warning{
			Kind: types.WarningNonLinearLayout,
			Message: fmt.Sprintf("Detected %d layout markers (tabs, pipes, aligned columns). Multi-column layouts often scramble ATS text extraction.",
				markers),
		})
	}

	// Structured detail: expect bullets proportional to length
	if required := int(float64(wordCount) / 100.0 * cfg.MinBulletsPer100Words); required > 0 {
		if bullets := countBullets(text); bullets < required {
			warnings = append(warnings, types.Warning{
				Kind: types.WarningFewBullets,
				Message: fmt.Sprintf("Only %d bullet points for %d words. Break achievements into bullet points so parsers can attribute them.",
					bullets, wordCount),
			})
		}
	}

	return warnings
}

// layoutMarkers counts the tab characters, pipe characters, and long space
// runs that indicate column-style alignment.
func layoutMarkers(text string) int {
	return strings.Count(text, "\t") +
		strings.Count(text, "|") +
		len(spaceRunPattern.FindAllString(text, -1))
}

// countBullets counts lines starting with a bullet character.
func countBullets(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		for _, prefix := range bulletPrefixes {
			if strings.HasPrefix(trimmed, prefix+" ") {
				count++
				break
			}
		}
	}
	return count
}
