// Package tokenizer normalizes raw document text into a case-folded,
// diacritic-folded token stream with source offsets. Matching elsewhere is
// strictly token-based; this is what guarantees word-boundary correctness
// (e.g. "Java" never matches inside "JavaScript").
package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Token is a single normalized word from a source document.
type Token struct {
	Text     string // Lowercase, diacritic-folded form used for matching
	Original string // Original-case source text, for display
	Offset   int    // Byte offset of Original in the source text
}

// Characters that may appear inside technical tokens ("C++", "C#",
// "Node.js", "CI/CD"). They are kept while scanning and resolved against the
// exception list afterwards.
const technicalChars = "#+./"

// Tokenizer splits text on non-alphanumeric boundaries while preserving a
// configured set of technical tokens as single units. Safe for concurrent
// use; the exception set is read-only after construction.
type Tokenizer struct {
	exceptions map[string]struct{}
}

// New creates a Tokenizer. Exceptions are the technical tokens that must
// survive splitting, given in any case; they are folded internally.
func New(exceptions []string) *Tokenizer {
	set := make(map[string]struct{}, len(exceptions))
	for _, e := range exceptions {
		folded := Fold(e)
		if folded != "" {
			set[folded] = struct{}{}
		}
	}
	return &Tokenizer{exceptions: set}
}

// Fold lowercases s and strips combining diacritical marks, so "Résumé"
// folds to "resume".
func Fold(s string) string {
	lower := strings.ToLower(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, lower)
	if err != nil {
		return lower
	}
	return folded
}

// Tokenize splits text into normalized tokens. Empty or whitespace-only
// input yields an empty slice.
func (t *Tokenizer) Tokenize(text string) []Token {
	tokens := make([]Token, 0, len(text)/6)

	start := -1
	for i, r := range text {
		if isTokenRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			t.emit(text[start:i], start, &tokens)
			start = -1
		}
	}
	if start >= 0 {
		t.emit(text[start:], start, &tokens)
	}

	return tokens
}

// PhraseText joins the folded text of n consecutive tokens starting at i
// with single spaces, for sliding-window phrase matching. Returns "" if the
// window exceeds the stream.
func PhraseText(tokens []Token, i, n int) string {
	if i+n > len(tokens) {
		return ""
	}
	if n == 1 {
		return tokens[i].Text
	}
	parts := make([]string, n)
	for j := 0; j < n; j++ {
		parts[j] = tokens[i+j].Text
	}
	return strings.Join(parts, " ")
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(technicalChars, r)
}

func isTechnicalByte(b byte) bool {
	return strings.IndexByte(technicalChars, b) >= 0
}

// emit resolves a raw scanned span into one or more tokens. Exception tokens
// are kept whole; otherwise surrounding technical punctuation is trimmed one
// character at a time (re-checking the exception set after each trim, so
// "C++." resolves to "C++") and any remaining technical characters split the
// span into sub-tokens ("and/or" becomes "and", "or").
func (t *Tokenizer) emit(raw string, offset int, out *[]Token) {
	for raw != "" {
		folded := Fold(raw)
		if _, ok := t.exceptions[folded]; ok {
			*out = append(*out, Token{Text: folded, Original: raw, Offset: offset})
			return
		}
		if isTechnicalByte(raw[len(raw)-1]) {
			raw = raw[:len(raw)-1]
			continue
		}
		if isTechnicalByte(raw[0]) {
			raw = raw[1:]
			offset++
			continue
		}
		break
	}
	if raw == "" {
		return
	}

	// Split the remainder on technical characters.
	partStart := 0
	for i := 0; i <= len(raw); i++ {
		if i < len(raw) && !isTechnicalByte(raw[i]) {
			continue
		}
		if i > partStart {
			part := raw[partStart:i]
			*out = append(*out, Token{Text: Fold(part), Original: part, Offset: offset + partStart})
		}
		partStart = i + 1
	}
}
