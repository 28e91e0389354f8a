// Package faq holds the curated question banks and the exact/keyword matcher
// that forms the first resolution tier.
package faq

import (
	"encoding/json"
	"strings"
)

// Payload is a curated entry's answer: prose, a selectable menu, or both.
type Payload struct {
	Prose string
	Menu  []string
}

// IsZero reports whether the payload carries no content.
func (p Payload) IsZero() bool {
	return p.Prose == "" && len(p.Menu) == 0
}

// Encode renders the payload as the single answer string sent to callers.
// Menus are appended as a JSON array so clients can render options.
func (p Payload) Encode() string {
	if len(p.Menu) == 0 {
		return p.Prose
	}
	raw, err := json.Marshal(p.Menu)
	if err != nil {
		return p.Prose
	}
	if p.Prose == "" {
		return string(raw)
	}
	return p.Prose + "," + string(raw)
}

// DecodeMenu extracts menu options from an encoded answer string. Both the
// JSON array form and the legacy python-repr form ('Option A', 'Option B')
// are accepted.
func DecodeMenu(s string) ([]string, bool) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end <= start {
		return nil, false
	}
	list := s[start : end+1]

	var options []string
	if err := json.Unmarshal([]byte(list), &options); err == nil && len(options) > 0 {
		return options, true
	}

	// Legacy form: ['Option A', 'Option B']
	inner := strings.TrimSpace(list[1 : len(list)-1])
	if inner == "" {
		return nil, false
	}
	for _, part := range strings.Split(inner, ",") {
		part = strings.TrimSpace(part)
		part = strings.Trim(part, `'"`)
		if part != "" {
			options = append(options, part)
		}
	}
	return options, len(options) > 0
}

// Entry is one curated question with its payload. The canonical question is
// never empty.
type Entry struct {
	Question string
	Payload  Payload
}

// Bank is a named, ordered collection of curated entries with its own
// containment-match threshold.
type Bank struct {
	Name                 string
	ContainmentThreshold float64
	Entries              []Entry
}
