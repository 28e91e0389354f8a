// Package location detects center mentions in queries and resolves them to
// center slugs and center data through the location APIs.
package location

import (
	"regexp"
	"strings"
)

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:in|at|from|near|around)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\s+(?:city|state|country|location)`),
	regexp.MustCompile(`\bI\s+(?:am|live|located)\s+(?:in|at|near)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`\b(?:location|place|area|region):\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
}

var locationKeywords = []string{
	"location", "city", "state", "country", "area", "region",
	"near", "around", "in", "at", "from", "local",
}

// excludedWords are question words, pronouns, and common verbs that pattern
// captures must never treat as place names.
var excludedWords = map[string]bool{
	"what": true, "where": true, "when": true, "how": true, "why": true, "who": true, "which": true, "whom": true,
	"i": true, "you": true, "he": true, "she": true, "it": true, "we": true, "they": true, "this": true, "that": true, "these": true, "those": true,
	"the": true, "a": true, "an": true, "is": true, "are": true, "was": true, "were": true, "am": true, "be": true, "been": true, "being": true,
	"can": true, "could": true, "should": true, "would": true, "will": true, "shall": true, "may": true, "might": true, "must": true,
	"do": true, "does": true, "did": true, "done": true, "have": true, "has": true, "had": true, "having": true,
	"get": true, "got": true, "give": true, "gave": true, "go": true, "went": true, "come": true, "came": true,
	"say": true, "said": true, "tell": true, "told": true, "know": true, "knew": true, "think": true, "thought": true,
	"see": true, "saw": true, "look": true, "looked": true, "want": true, "wanted": true, "need": true, "needed": true,
	"make": true, "made": true, "take": true, "took": true, "use": true, "used": true, "find": true, "found": true,
	"work": true, "worked": true, "call": true, "called": true, "try": true, "tried": true, "ask": true, "asked": true,
}

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// ExtractLocation pulls a place name out of free text. Returns "" when no
// confident mention is found.
func ExtractLocation(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	for _, pat := range locationPatterns {
		matches := pat.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}
		// The last mention is usually the one the user means.
		cand := strings.TrimSpace(matches[len(matches)-1][1])
		if len(cand) > 2 && !excludedWords[strings.ToLower(cand)] {
			return cand
		}
	}

	return capitalizedSequenceNearKeyword(text)
}

// capitalizedSequenceNearKeyword is the loose fallback: runs of capitalized
// words count as a location only when a location keyword sits within 50
// characters of them.
func capitalizedSequenceNearKeyword(text string) string {
	var sequences []string
	var current []string
	for _, word := range strings.Fields(text) {
		clean := nonWordRe.ReplaceAllString(word, "")
		if len(clean) > 2 && clean[0] >= 'A' && clean[0] <= 'Z' && !excludedWords[strings.ToLower(clean)] {
			current = append(current, clean)
			continue
		}
		if len(current) > 0 {
			sequences = append(sequences, strings.Join(current, " "))
			current = nil
		}
	}
	if len(current) > 0 {
		sequences = append(sequences, strings.Join(current, " "))
	}

	textLower := strings.ToLower(text)
	for _, seq := range sequences {
		seqPos := strings.Index(textLower, strings.ToLower(seq))
		if seqPos < 0 {
			continue
		}
		for _, kw := range locationKeywords {
			kwPos := strings.Index(textLower, kw)
			if kwPos < 0 {
				continue
			}
			dist := seqPos - kwPos
			if dist < 0 {
				dist = -dist
			}
			if dist < 50 {
				return seq
			}
		}
	}
	return ""
}

// HasLocationContext reports whether the text mentions anything
// location-flavored at all.
func HasLocationContext(text string) bool {
	textLower := strings.ToLower(text)
	for _, kw := range locationKeywords {
		if strings.Contains(textLower, kw) {
			return true
		}
	}
	return false
}
