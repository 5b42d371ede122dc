package domain

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the stable key of a word or title:
//   - Unicode NFKD decomposition, combining marks dropped
//   - lowercase, trimmed
//   - every run of characters outside [a-z0-9] becomes a single "-"
//   - no leading or trailing "-"
//
// "Käse " and "Käse" share a slug; "ß" has no decomposition and is dropped.
func Slugify(text string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	s, _, err := transform.String(t, text)
	if err != nil {
		s = text
	}
	s = strings.TrimSpace(strings.ToLower(s))
	s = nonSlugRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// CollapseSpaces trims text and compresses every whitespace run into one space.
// Case and diacritics are preserved.
func CollapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeEmail prepares an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
