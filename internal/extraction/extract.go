// Package extraction derives the required keyword set from a job
// description. A keyword is required only if it textually appears in the
// job description, using the same word-boundary alias matching the resume
// matcher uses.
package extraction

import (
	"github.com/jonathan/ats-checker/internal/dictionary"
	"github.com/jonathan/ats-checker/internal/matching"
	"github.com/jonathan/ats-checker/internal/tokenizer"
)

// Required returns the indices of dictionary entries present in the job
// description tokens, in dictionary scan order. An empty result is a valid
// outcome (the job description mentions no known skills); downstream
// coverage is defined as 100% in that case.
func Required(d *dictionary.Dictionary, jdTokens []tokenizer.Token) []int {
	hits := matching.Scan(d, jdTokens)

	required := make([]int, 0, len(hits))
	for i := 0; i < d.Len(); i++ {
		if _, ok := hits[i]; ok {
			required = append(required, i)
		}
	}
	return required
}
