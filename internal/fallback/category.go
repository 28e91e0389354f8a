// Package fallback is the generative last tier: category-specific prompts,
// a model retry ladder, and an optional web-search tool loop.
package fallback

import "strings"

type PromptCategory string

const (
	CategoryFranchise PromptCategory = "franchise"
	CategoryParent    PromptCategory = "parent"
	CategoryGeneral   PromptCategory = "general"
)

// Franchise keywords win over parent keywords; a franchise owner asking
// about camp revenue is still a franchise question.
var franchiseKeywords = []string{
	"franchise", "franchisee", "franchising", "fdd", "royalty", "royalties",
	"territory", "ownership", "own a center", "invest", "investment",
	"business model", "resale", "buy a center", "sell my",
}

var parentKeywords = []string{
	"kid", "kids", "child", "children", "son", "daughter", "enroll",
	"enrollment", "camp", "camps", "class", "classes", "program", "programs",
	"belt", "age", "parent", "birthday", "after school",
}

// DetectCategory classifies the query for prompt selection.
func DetectCategory(query string) PromptCategory {
	queryLower := strings.ToLower(query)
	for _, kw := range franchiseKeywords {
		if strings.Contains(queryLower, kw) {
			return CategoryFranchise
		}
	}
	for _, kw := range parentKeywords {
		if strings.Contains(queryLower, kw) {
			return CategoryParent
		}
	}
	return CategoryGeneral
}
