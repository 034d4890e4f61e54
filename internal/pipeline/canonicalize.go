package pipeline

import (
	"strings"

	"streamindex/internal"
)

// Canonicalize applies the configured title replacements, in order. Later
// rules see the output of earlier ones.
func Canonicalize(replacements []internal.Replacement, value string) string {
	for _, r := range replacements {
		value = strings.ReplaceAll(value, r.Target, r.With)
	}
	return value
}
