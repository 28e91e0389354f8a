// Package intent classifies queries into the structured-data categories the
// center API can answer.
package intent

import "strings"

type Category string

const (
	Camps    Category = "camps"
	Events   Category = "events"
	Clubs    Category = "clubs"
	Programs Category = "programs"
	Facility Category = "facility"
	General  Category = "general"
)

// Keyword membership per category. Order matters: camps win over events,
// events over clubs, and so on down to the facility catch-all.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{Camps, []string{"camp", "camps", "upcoming camp", "camp schedule"}},
	{Events, []string{"event", "events", "upcoming event", "upcoming events"}},
	{Clubs, []string{"club", "clubs"}},
	{Programs, []string{"program", "programs", "create", "academy", "academies", "jr"}},
	{Facility, []string{"facility", "location", "address", "contact", "info", "about"}},
}

// Classify picks the first category with a keyword present in the query.
// Queries matching nothing are General.
func Classify(query string) Category {
	queryLower := strings.ToLower(query)
	for _, c := range categoryKeywords {
		for _, kw := range c.keywords {
			if strings.Contains(queryLower, kw) {
				return c.category
			}
		}
	}
	return General
}
