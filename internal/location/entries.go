package location

import (
	"fmt"

	"github.com/harshitcn/cn-chatbot-sub000/internal/vector"
)

// FlattenToEntries converts an arbitrary center-data document into
// question/answer entries that can be merged into the embedding index for
// the duration of one query. Wrapper keys (content, data, results) are
// unwrapped; scalar fields, nested objects, and lists each become entries.
func FlattenToEntries(doc any, locationName string) []vector.Entry {
	if doc == nil {
		return nil
	}
	var entries []vector.Entry

	switch v := doc.(type) {
	case string:
		return []vector.Entry{{
			Question: fmt.Sprintf("Tell me about %s", locationName),
			Answer:   v,
		}}

	case []any:
		for i, item := range v {
			switch it := item.(type) {
			case map[string]any:
				entries = append(entries, FlattenToEntries(it, locationName)...)
			case string, float64, int, bool:
				entries = append(entries, vector.Entry{
					Question: fmt.Sprintf("What is item %d for %s?", i+1, locationName),
					Answer:   fmt.Sprintf("%v", it),
				})
			}
		}

	case map[string]any:
		if content, ok := v["content"]; ok {
			if s, isStr := content.(string); isStr {
				entries = append(entries, vector.Entry{
					Question: fmt.Sprintf("Tell me about %s", locationName),
					Answer:   s,
				})
			} else {
				entries = append(entries, FlattenToEntries(content, locationName)...)
			}
		}
		if data, ok := v["data"]; ok {
			entries = append(entries, FlattenToEntries(data, locationName)...)
		}
		if results, ok := v["results"].([]any); ok {
			for _, item := range results {
				entries = append(entries, FlattenToEntries(item, locationName)...)
			}
		}

		for key, value := range v {
			if key == "content" || key == "data" || key == "results" {
				continue
			}
			switch val := value.(type) {
			case string, float64, int, bool:
				entries = append(entries, vector.Entry{
					Question: fmt.Sprintf("What is the %s for %s?", key, locationName),
					Answer:   fmt.Sprintf("For %s, %s is %v.", locationName, key, val),
				})
			case map[string]any:
				for subKey, subVal := range val {
					switch subVal.(type) {
					case string, float64, int, bool:
						entries = append(entries, vector.Entry{
							Question: fmt.Sprintf("What is the %s for %s?", subKey, locationName),
							Answer:   fmt.Sprintf("For %s, %s is %v.", locationName, subKey, subVal),
						})
					}
				}
			case []any:
				for i, item := range val {
					switch item.(type) {
					case string, float64, int, bool:
						entries = append(entries, vector.Entry{
							Question: fmt.Sprintf("What is %s item %d for %s?", key, i+1, locationName),
							Answer:   fmt.Sprintf("For %s, %s item %d is %v.", locationName, key, i+1, item),
						})
					}
				}
			}
		}
	}

	// Nothing structured flattened: keep a single generic entry so the
	// merged index still carries something about the center.
	if len(entries) == 0 {
		entries = append(entries, vector.Entry{
			Question: fmt.Sprintf("Tell me about %s", locationName),
			Answer:   fmt.Sprintf("Here is information about %s: %v", locationName, doc),
		})
	}
	return entries
}
