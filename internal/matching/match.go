// Package matching implements word-boundary keyword matching against a
// token stream. A keyword matches only when its canonical form or an alias
// occurs as a whole token or a whole phrase window; substrings of larger
// tokens never count.
package matching

import (
	"github.com/jonathan/ats-checker/internal/dictionary"
	"github.com/jonathan/ats-checker/internal/tokenizer"
	"github.com/jonathan/ats-checker/internal/types"
)

// Hit accumulates occurrences of one dictionary entry in a token stream.
type Hit struct {
	Occurrences int
	Aliases     []string // Display forms of the terms that matched, first-seen order
}

// Scan slides a phrase window over the token stream and counts every
// dictionary term occurrence. The result maps entry index to its hits. A
// phrase whose aliases belong to several entries counts toward every one of
// them; there is no first-match-wins suppression.
func Scan(d *dictionary.Dictionary, tokens []tokenizer.Token) map[int]*Hit {
	hits := make(map[int]*Hit)
	maxN := d.MaxPhraseTokens()

	for i := range tokens {
		for n := 1; n <= maxN && i+n <= len(tokens); n++ {
			refs := d.Lookup(tokenizer.PhraseText(tokens, i, n))
			for _, ref := range refs {
				h := hits[ref.Entry]
				if h == nil {
					h = &Hit{}
					hits[ref.Entry] = h
				}
				h.Occurrences++
				h.addAlias(ref.Alias)
			}
		}
	}

	return hits
}

func (h *Hit) addAlias(alias string) {
	for _, a := range h.Aliases {
		if a == alias {
			return
		}
	}
	h.Aliases = append(h.Aliases, alias)
}

// Match checks each required keyword against the resume token stream and
// reports the outcome per keyword. Result order mirrors the required list,
// which itself follows dictionary scan order, so output is reproducible.
func Match(d *dictionary.Dictionary, resumeTokens []tokenizer.Token, required []int) []types.KeywordMatch {
	hits := Scan(d, resumeTokens)

	matches := make([]types.KeywordMatch, 0, len(required))
	for _, idx := range required {
		entry := d.Entry(idx)
		m := types.KeywordMatch{
			Keyword:  entry.Canonical,
			Category: string(entry.Category),
		}
		if h, ok := hits[idx]; ok {
			m.Matched = true
			m.Occurrences = h.Occurrences
			m.MatchedAliases = h.Aliases
		}
		matches = append(matches, m)
	}

	return matches
}

// TotalOccurrences sums matched-keyword occurrences across a match list;
// this is the numerator of the density ratio.
func TotalOccurrences(matches []types.KeywordMatch) int {
	total := 0
	for _, m := range matches {
		total += m.Occurrences
	}
	return total
}
