package textutil

import (
	"strings"
	"unicode"
)

// AnswerWordBudget is the word limit applied to structured and generative
// answers before they reach the caller.
const AnswerWordBudget = 50

// TruncateWords cuts text to the first limit words. If the cut lands
// mid-sentence (last word ends in a comma or a lowercase letter), the text is
// trimmed back to the last period inside the final 40% of the truncated text;
// when no such period exists, trailing punctuation is stripped and a period
// appended. Idempotent: truncating an already-truncated text is a no-op.
func TruncateWords(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) <= limit {
		return strings.TrimSpace(text)
	}

	truncated := strings.Join(words[:limit], " ")
	last := words[limit-1]

	if !looksMidSentence(last) {
		return truncated
	}

	// Look for a sentence boundary near the end of the truncated text.
	if idx := strings.LastIndex(truncated, "."); idx >= int(float64(len(truncated))*0.6) {
		return strings.TrimSpace(truncated[:idx+1])
	}

	truncated = strings.TrimRight(truncated, ",.")
	return truncated + "."
}

func looksMidSentence(word string) bool {
	if word == "" {
		return false
	}
	if strings.HasSuffix(word, ",") {
		return true
	}
	r := rune(word[len(word)-1])
	return unicode.IsLower(r)
}
