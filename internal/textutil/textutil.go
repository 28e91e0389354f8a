// Package textutil provides the text normalization and keyword-overlap
// primitives shared by every resolution tier.
package textutil

import (
	"strings"
	"unicode"
)

// Stop words removed before keyword comparison. Articles, auxiliary verbs,
// pronouns and common question words carry no matching signal.
var stopWords = map[string]bool{
	"what": true, "is": true, "are": true, "the": true, "a": true, "an": true,
	"and": true, "or": true, "but": true, "in": true, "on": true, "at": true,
	"to": true, "for": true, "of": true, "with": true, "by": true, "does": true,
	"do": true, "how": true, "can": true, "will": true, "would": true,
	"should": true, "could": true, "tell": true, "me": true, "about": true,
	"i": true, "you": true, "your": true, "my": true, "this": true, "that": true,
}

// Normalize lowercases, strips non-alphanumeric/non-space characters and
// collapses whitespace. Total: empty input yields "".
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// NormalizeForMatching normalizes and additionally removes stop words.
func NormalizeForMatching(text string) string {
	words := strings.Fields(Normalize(text))
	kept := words[:0]
	for _, w := range words {
		if !stopWords[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// Keywords returns the stop-word-filtered token set of text.
func Keywords(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(NormalizeForMatching(text)) {
		set[w] = true
	}
	return set
}

// CommonCount counts tokens present in both sets.
func CommonCount(a, b map[string]bool) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for w := range a {
		if b[w] {
			n++
		}
	}
	return n
}

// OverlapRatio is the fraction of tokens in base that also appear in other.
// Returns 0 when base is empty.
func OverlapRatio(base, other map[string]bool) float64 {
	if len(base) == 0 {
		return 0
	}
	return float64(CommonCount(base, other)) / float64(len(base))
}
