package textutil

import (
	"regexp"
	"strings"
)

var (
	markdownLinkRe = regexp.MustCompile(`\[[^\]]*\]\(([^)\s]+)\)`)
	bareLinkRe     = regexp.MustCompile(`(?i)\b(?:[a-z0-9][a-z0-9-]*\.)+(?:com|org|net|io|edu|gov|co|us|ca|uk)\b(?:/[^\s,)\]]*)?`)
)

// FormatURLs rewrites links so clients can render them directly: markdown
// [text](url) links collapse to the bare URL, and bare domains or www. hosts
// gain an explicit https:// scheme. Idempotent.
func FormatURLs(text string) string {
	if text == "" {
		return text
	}

	text = markdownLinkRe.ReplaceAllString(text, "$1")

	return replaceAllStringIndexFunc(text, bareLinkRe, func(match string, start int) string {
		if hasScheme(text, start) {
			return match
		}
		// Skip email addresses.
		if start > 0 && isEmailLocalPart(text[:start]) {
			return match
		}
		return "https://" + match
	})
}

// hasScheme reports whether the match at start is already preceded by a URI
// scheme such as "https://".
func hasScheme(text string, start int) bool {
	prefix := text[:start]
	for _, s := range []string{"http://", "https://", "ftp://"} {
		if strings.HasSuffix(prefix, s) {
			return true
		}
	}
	// "www.codeninjas.com" inside "https://www.codeninjas.com" is matched at
	// the "www." boundary only, so scheme suffix checks above suffice.
	return false
}

func isEmailLocalPart(prefix string) bool {
	return strings.HasSuffix(prefix, "@")
}

func replaceAllStringIndexFunc(text string, re *regexp.Regexp, fn func(match string, start int) string) string {
	locs := re.FindAllStringIndex(text, -1)
	if locs == nil {
		return text
	}
	var b strings.Builder
	prev := 0
	for _, loc := range locs {
		b.WriteString(text[prev:loc[0]])
		b.WriteString(fn(text[loc[0]:loc[1]], loc[0]))
		prev = loc[1]
	}
	b.WriteString(text[prev:])
	return b.String()
}
