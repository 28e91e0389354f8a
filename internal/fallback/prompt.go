package fallback

import "strings"

// Templates holds the three category prompts. Empty fields fall back to the
// built-in defaults, so config only needs to override what it changes.
// Placeholders: {query} and {location}.
type Templates struct {
	Franchise string
	Parent    string
	General   string
}

const defaultFranchisePrompt = `You are a Code Ninjas franchise assistant answering a current or prospective franchise owner.
Answer in at most 2-3 sentences and never more than 50 words. Do not open with filler phrases.
If you do not know the answer, reply exactly: I don't have that information.

Question: {query}`

const defaultParentPrompt = `You are a Code Ninjas assistant answering a parent or guardian about kids coding programs, camps, and enrollment.
Answer in at most 2-3 sentences and never more than 50 words. Do not open with filler phrases.
If you do not know the answer, reply exactly: I don't have that information.

Question: {query}`

const defaultGeneralPrompt = `You are a Code Ninjas assistant. Answer the question about Code Ninjas below.
Answer in at most 2-3 sentences and never more than 50 words. Do not open with filler phrases.
If you do not know the answer, reply exactly: I don't have that information.

Question: {query}`

const locationLine = "\nThe question is about the {location} center."

// Build renders the prompt for a category, substituting the query and the
// optional human-readable location.
func (t Templates) Build(category PromptCategory, query, locationDisplay string) string {
	var tmpl string
	switch category {
	case CategoryFranchise:
		tmpl = t.Franchise
		if tmpl == "" {
			tmpl = defaultFranchisePrompt
		}
	case CategoryParent:
		tmpl = t.Parent
		if tmpl == "" {
			tmpl = defaultParentPrompt
		}
	default:
		tmpl = t.General
		if tmpl == "" {
			tmpl = defaultGeneralPrompt
		}
	}

	if locationDisplay != "" {
		tmpl += strings.ReplaceAll(locationLine, "{location}", locationDisplay)
	}
	return strings.ReplaceAll(tmpl, "{query}", query)
}
