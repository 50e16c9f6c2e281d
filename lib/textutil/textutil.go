package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

var innerWhitespace = regexp.MustCompile(`\s+`)

// CleanText normalizes scraped text: drops non-printable runes, collapses
// whitespace runs into single spaces and trims the ends.
func CleanText(s string) string {
	var b strings.Builder
	for _, c := range s {
		if unicode.IsPrint(c) || unicode.IsSpace(c) {
			b.WriteRune(c)
		}
	}
	collapsed := innerWhitespace.ReplaceAllString(b.String(), " ")
	return strings.Trim(collapsed, " ")
}

// IsNumeric reports whether s consists solely of digits.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return true
}
