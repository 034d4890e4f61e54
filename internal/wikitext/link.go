package wikitext

import "strings"

// SanitizeLink normalizes a raw VOD link for use as a template argument
// value. Literal "=" would be read as the template's own key/value separator,
// so it is replaced with its numeric character entity. Reports false for an
// empty link.
func SanitizeLink(link string) (string, bool) {
	if link == "" {
		return "", false
	}
	if !strings.HasPrefix(link, "https://") {
		link = "https://" + link
	}
	return strings.ReplaceAll(link, "=", "&#61;"), true
}
