package location

import "strings"

// NormalizeSlug strips the brand prefix but keeps the state prefix:
// "cn-tx-alamo-ranch" becomes "tx-alamo-ranch".
func NormalizeSlug(slug string) string {
	return strings.TrimPrefix(slug, "cn-")
}

// FormatDisplay renders a slug for humans: "cn-tx-alamo-ranch" becomes
// "TX – Alamo Ranch".
func FormatDisplay(slug string) string {
	if slug == "" {
		return ""
	}
	parts := strings.Split(NormalizeSlug(slug), "-")
	if len(parts) < 2 {
		return titleWords(strings.ReplaceAll(slug, "-", " "))
	}
	state := strings.ToUpper(parts[0])
	city := titleWords(strings.Join(parts[1:], " "))
	return state + " – " + city
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
