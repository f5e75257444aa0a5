// Package dictionary provides the versioned, read-only keyword dictionary
// the engine matches against. The dictionary is loaded once at process start
// (from the embedded default, a JSON file, or Postgres) and shared across
// all requests without locking.
package dictionary

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/ats-checker/internal/schemas"
	"github.com/jonathan/ats-checker/internal/tokenizer"
)

//go:embed dictionary.schema.json
var schemaJSON []byte

//go:embed dictionary.json
var defaultJSON []byte

// maxAliasPhraseTokens bounds the sliding-window size used for phrase
// matching. Aliases longer than this are rejected at load time so request
// processing stays linear in document length.
const maxAliasPhraseTokens = 5

// Category classifies a dictionary entry.
type Category string

const (
	CategoryLanguage  Category = "language"
	CategoryFramework Category = "framework"
	CategoryTool      Category = "tool"
	CategorySoftSkill Category = "soft-skill"
	CategoryOther     Category = "other"
)

// Entry is one canonical keyword with its alias table. Immutable after load.
type Entry struct {
	Canonical string   `json:"canonical"`
	Category  Category `json:"category"`
	Aliases   []string `json:"aliases,omitempty"`
}

// Terms returns the canonical name followed by all aliases; every term
// counts as a match for this entry.
func (e Entry) Terms() []string {
	terms := make([]string, 0, len(e.Aliases)+1)
	terms = append(terms, e.Canonical)
	terms = append(terms, e.Aliases...)
	return terms
}

// AliasRef points from a normalized phrase back to the dictionary entry and
// the display form of the term that produced it.
type AliasRef struct {
	Entry int    // Index into the dictionary's entry list
	Alias string // Original-case term text, for reporting matched variants
}

type dictionaryFile struct {
	Version string  `json:"version"`
	Entries []Entry `json:"entries"`
}

// Dictionary is the loaded keyword set plus its derived matching structures:
// the tokenizer exception list, the phrase index, and the phrase-window
// bound. All fields are read-only after construction.
type Dictionary struct {
	version         string
	entries         []Entry
	tok             *tokenizer.Tokenizer
	index           map[string][]AliasRef
	maxPhraseTokens int
}

// Load parses and validates dictionary JSON.
func Load(data []byte) (*Dictionary, error) {
	if err := schemas.ValidateBytes(schemaJSON, data); err != nil {
		return nil, fmt.Errorf("dictionary does not match schema: %w", err)
	}

	var file dictionaryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary JSON: %w", err)
	}

	return build(file.Version, file.Entries)
}

// LoadFile loads a dictionary from a JSON file on disk.
func LoadFile(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file %s: %w", path, err)
	}
	return Load(data)
}

// Default loads the embedded default dictionary.
func Default() (*Dictionary, error) {
	return Load(defaultJSON)
}

// build assembles the derived structures shared by all load paths.
func build(version string, entries []Entry) (*Dictionary, error) {
	if version == "" {
		return nil, fmt.Errorf("dictionary version is empty")
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("dictionary has no entries")
	}

	seen := make(map[string]bool, len(entries))
	var exceptions []string
	for _, e := range entries {
		key := tokenizer.Fold(e.Canonical)
		if seen[key] {
			return nil, fmt.Errorf("duplicate canonical keyword %q", e.Canonical)
		}
		seen[key] = true

		// Alias words containing technical characters must survive
		// tokenization as single tokens.
		for _, term := range e.Terms() {
			for _, word := range strings.Fields(term) {
				if strings.ContainsAny(word, "#+./") {
					exceptions = append(exceptions, word)
				}
			}
		}
	}

	d := &Dictionary{
		version: version,
		entries: entries,
		tok:     tokenizer.New(exceptions),
		index:   make(map[string][]AliasRef),
	}

	for i, e := range entries {
		for _, term := range e.Terms() {
			tokens := d.tok.Tokenize(term)
			if len(tokens) == 0 {
				return nil, fmt.Errorf("keyword %q: term %q has no tokens", e.Canonical, term)
			}
			if len(tokens) > maxAliasPhraseTokens {
				return nil, fmt.Errorf("keyword %q: term %q exceeds %d tokens", e.Canonical, term, maxAliasPhraseTokens)
			}

			key := tokenizer.PhraseText(tokens, 0, len(tokens))
			if d.hasRef(key, i) {
				continue
			}
			d.index[key] = append(d.index[key], AliasRef{Entry: i, Alias: term})
			if len(tokens) > d.maxPhraseTokens {
				d.maxPhraseTokens = len(tokens)
			}
		}
	}

	return d, nil
}

func (d *Dictionary) hasRef(key string, entry int) bool {
	for _, ref := range d.index[key] {
		if ref.Entry == entry {
			return true
		}
	}
	return false
}

// Version returns the dictionary version string.
func (d *Dictionary) Version() string {
	return d.version
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Entries returns the entry list in dictionary scan order. Callers must
// treat it as read-only.
func (d *Dictionary) Entries() []Entry {
	return d.entries
}

// Entry returns the entry at index i.
func (d *Dictionary) Entry(i int) Entry {
	return d.entries[i]
}

// Tokenizer returns the tokenizer configured with this dictionary's
// technical-token exceptions.
func (d *Dictionary) Tokenizer() *tokenizer.Tokenizer {
	return d.tok
}

// Lookup returns the entries whose canonical name or aliases normalize to
// the given phrase key. A phrase shared by several entries returns all of
// them.
func (d *Dictionary) Lookup(phrase string) []AliasRef {
	return d.index[phrase]
}

// MaxPhraseTokens returns the longest alias length in tokens, bounding the
// sliding window used by scanners.
func (d *Dictionary) MaxPhraseTokens() int {
	return d.maxPhraseTokens
}

// CountByCategory returns entry counts per category.
func (d *Dictionary) CountByCategory() map[Category]int {
	counts := make(map[Category]int)
	for _, e := range d.entries {
		counts[e.Category]++
	}
	return counts
}
