package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-checker/internal/dictionary"
)

func newTestDictionary(t *testing.T) *dictionary.Dictionary {
	t.Helper()
	dict, err := dictionary.Load([]byte(`{"version":"test","entries":[
		{"canonical":"Python","category":"language"},
		{"canonical":"SQL","category":"language"},
		{"canonical":"AWS","category":"tool","aliases":["Amazon Web Services"]},
		{"canonical":"Docker","category":"tool"}]}`))
	require.NoError(t, err)
	return dict
}

func TestRequired(t *testing.T) {
	dict := newTestDictionary(t)

	tests := []struct {
		name     string
		jd       string
		expected []int
	}{
		{
			name:     "Keywords in dictionary order regardless of mention order",
			jd:       "Requires AWS experience, strong SQL, and Python scripting.",
			expected: []int{0, 1, 2},
		},
		{
			name:     "Repeated mentions deduplicated",
			jd:       "Python, Python, and more Python",
			expected: []int{0},
		},
		{
			name:     "Alias phrase pulls in its entry",
			jd:       "Deploy to Amazon Web Services",
			expected: []int{2},
		},
		{
			name:     "No known keywords",
			jd:       "Looking for a friendly barista",
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := dict.Tokenizer().Tokenize(tt.jd)
			required := Required(dict, tokens)

			assert.NotNil(t, required)
			assert.Equal(t, tt.expected, required)
		})
	}
}
