package faq

import (
	"strings"

	"github.com/harshitcn/cn-chatbot-sub000/internal/textutil"
)

// Matcher resolves queries against the curated banks using exact,
// containment, and keyword-overlap strategies, in that order.
type Matcher struct {
	Banks []Bank
}

// NewMatcher builds a matcher over the default curated banks.
func NewMatcher() *Matcher {
	return &Matcher{Banks: DefaultBanks()}
}

// MenuShortCircuit reports whether the query is a navigation reset or a
// browsing prompt. It runs before any matching tier.
func MenuShortCircuit(query string) (Payload, bool) {
	norm := textutil.Normalize(query)
	if norm == "" {
		return Payload{}, false
	}
	for _, p := range browsingPhrases {
		if norm == textutil.Normalize(p) {
			return Payload{Prose: BrowsingPrompt}, true
		}
	}
	for _, p := range menuPhrases {
		if norm == textutil.Normalize(p) {
			return WelcomeMenu, true
		}
	}
	tokens := strings.Fields(norm)
	if len(tokens) <= 3 {
		for _, t := range tokens {
			if menuWords[t] {
				return WelcomeMenu, true
			}
		}
	}
	return Payload{}, false
}

// EscalatesToGenerative reports whether the query exact-matches one of the
// curated questions that should be answered by the generative tier instead.
func EscalatesToGenerative(query string) bool {
	norm := textutil.Normalize(query)
	for _, q := range generativeEscalations {
		if norm == textutil.Normalize(q) {
			return true
		}
	}
	return false
}

// Match returns the curated payload for the query, if any bank produces a
// confident match.
func (m *Matcher) Match(query string) (Payload, bool) {
	norm := textutil.Normalize(query)
	if norm == "" {
		return Payload{}, false
	}
	queryKW := textutil.Keywords(query)

	// Strategy 1: exact normalized match, banks in order.
	for _, bank := range m.Banks {
		for _, e := range bank.Entries {
			if e.Payload.IsZero() {
				continue
			}
			if textutil.Normalize(e.Question) == norm {
				return e.Payload, true
			}
		}
	}

	// Strategy 2: containment with keyword support. The overlap ratio is
	// measured against the shorter string's keywords so a few shared words
	// inside a long question do not count as containment.
	for _, bank := range m.Banks {
		for _, e := range bank.Entries {
			if e.Payload.IsZero() {
				continue
			}
			entryNorm := textutil.Normalize(e.Question)
			if entryNorm == "" {
				continue
			}
			if !strings.Contains(norm, entryNorm) && !strings.Contains(entryNorm, norm) {
				continue
			}
			entryKW := textutil.Keywords(e.Question)
			base := entryKW
			if len(norm) < len(entryNorm) {
				base = queryKW
			}
			other := queryKW
			if len(norm) < len(entryNorm) {
				other = entryKW
			}
			if textutil.OverlapRatio(base, other) >= bank.ContainmentThreshold {
				return e.Payload, true
			}
		}
	}

	// Strategy 3: symmetric keyword overlap. Take the best-scoring entry
	// across all banks; ties keep the first one seen.
	var (
		best      Payload
		bestScore float64
		found     bool
	)
	for _, bank := range m.Banks {
		for _, e := range bank.Entries {
			if e.Payload.IsZero() {
				continue
			}
			entryKW := textutil.Keywords(e.Question)
			common := textutil.CommonCount(queryKW, entryKW)
			if common < 3 {
				continue
			}
			score := (textutil.OverlapRatio(queryKW, entryKW) + textutil.OverlapRatio(entryKW, queryKW)) / 2
			if score < 0.8 {
				continue
			}
			if !found || score > bestScore {
				best = e.Payload
				bestScore = score
				found = true
			}
		}
	}
	return best, found
}
