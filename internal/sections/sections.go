// Package sections detects the presence of standard resume sections by
// scanning for header-style lines. Detection is intentionally permissive:
// a false positive costs little, while missing a real section produces a
// misleading warning for the user.
package sections

import (
	"strings"

	"github.com/jonathan/ats-checker/internal/tokenizer"
)

// Section names the standard resume sections the analyzer tracks.
type Section string

const (
	Summary    Section = "summary"
	Experience Section = "experience"
	Education  Section = "education"
	Skills     Section = "skills"
	Contact    Section = "contact"
)

// Standard lists all tracked sections in report order.
var Standard = []Section{Summary, Experience, Education, Skills, Contact}

// Mandatory lists the sections whose absence triggers warnings and drives
// the completeness sub-score.
var Mandatory = []Section{Experience, Education, Skills}

// synonyms maps each section to the header texts that mark it present.
var synonyms = map[Section][]string{
	Summary: {
		"summary", "professional summary", "objective", "career objective",
		"profile", "about me", "about",
	},
	Experience: {
		"experience", "work experience", "work history", "employment",
		"employment history", "professional experience", "career history",
	},
	Education: {
		"education", "academic background", "academics", "academic history",
		"qualifications",
	},
	Skills: {
		"skills", "technical skills", "core competencies", "competencies",
		"technologies", "tech stack",
	},
	Contact: {
		"contact", "contact information", "contact details", "personal details",
	},
}

// maxHeaderLen bounds how long a line can be and still count as a header.
const maxHeaderLen = 60

// Detection records whether a section was found and the header line that
// marked it.
type Detection struct {
	Found  bool   `json:"found"`
	Header string `json:"header,omitempty"`
}

// Presence maps each standard section to its detection result.
type Presence map[Section]Detection

// MissingMandatory returns the mandatory sections not found, in Mandatory
// order.
func (p Presence) MissingMandatory() []Section {
	var missing []Section
	for _, s := range Mandatory {
		if !p[s].Found {
			missing = append(missing, s)
		}
	}
	return missing
}

// Completeness returns the fraction of mandatory sections present, in
// [0, 1].
func (p Presence) Completeness() float64 {
	found := 0
	for _, s := range Mandatory {
		if p[s].Found {
			found++
		}
	}
	return float64(found) / float64(len(Mandatory))
}

// Analyze scans the document line by line for section headers. A section is
// present as soon as any of its synonyms appears as a header-style line
// anywhere in the document; the first header found is recorded.
func Analyze(text string) Presence {
	presence := make(Presence, len(Standard))
	for _, s := range Standard {
		presence[s] = Detection{}
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || len(line) > maxHeaderLen {
			continue
		}

		folded := tokenizer.Fold(line)
		for _, s := range Standard {
			if presence[s].Found {
				continue
			}
			if matchesSection(line, folded, s) {
				presence[s] = Detection{Found: true, Header: line}
			}
		}
	}

	return presence
}

// matchesSection reports whether a trimmed line marks the given section.
// Accepted forms: the synonym alone (with optional trailing colon), the
// synonym introducing inline content via a colon ("Skills: Python, SQL"),
// or an emphasized header line starting with the synonym ("WORK EXPERIENCE
// AND PROJECTS").
func matchesSection(line, folded string, s Section) bool {
	for _, syn := range synonyms[s] {
		switch {
		case folded == syn, folded == syn+":":
			return true
		case strings.HasPrefix(folded, syn+":"):
			return true
		case strings.HasPrefix(folded, syn+" ") && isEmphasized(line):
			return true
		}
	}
	return false
}

// isEmphasized reports whether a line looks like a styled header: all
// uppercase, or every word capitalized.
func isEmphasized(line string) bool {
	letters := false
	for _, r := range line {
		if r >= 'a' && r <= 'z' {
			letters = true
			break
		}
	}
	if !letters {
		return true // No lowercase letters at all: all caps
	}

	for _, word := range strings.Fields(line) {
		r := rune(word[0])
		if r >= 'a' && r <= 'z' {
			return false
		}
	}
	return true
}
