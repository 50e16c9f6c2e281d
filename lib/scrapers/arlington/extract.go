package arlington

import (
	"strings"
	"unicode"

	"rostersite/lib/htmlutil"
	"rostersite/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// extractParticipantName recovers "First Last" from one roster
// participant card. The markup is inconsistent across seasons: the first
// name reliably sits in an h3, but the last name may share its h2 with
// jersey numbers or hide in a stray span/div/p. Cards where no plausible
// last name can be found report ok=false and are skipped by the caller.
func extractParticipantName(participant *goquery.Selection) (name string, ok bool) {
	firstName := textutil.CleanText(participant.Find("h3").First().Text())

	var lastName string
	for _, n := range participant.Find("h2").Nodes {
		text := textutil.CleanText(htmlutil.GetText(n))
		if isPlausibleLastName(text, firstName) {
			lastName = text
			break
		}
	}

	if lastName == "" {
		participant.Find("span, div, p").EachWithBreak(func(_ int, el *goquery.Selection) bool {
			text := textutil.CleanText(el.Text())
			if text == firstName || strings.HasPrefix(text, "#") {
				return true
			}
			// last names are short and contain at least one letter
			if len(text) > 30 || !containsLetter(text) {
				return true
			}
			if !isPlausibleLastName(text, firstName) {
				return true
			}
			lastName = text
			return false
		})
	}

	if firstName == "" || lastName == "" {
		return "", false
	}
	return firstName + " " + lastName, true
}

// jersey numbers, bare "#" markers and one-character fragments are not
// names
func isPlausibleLastName(text, firstName string) bool {
	return text != "" &&
		text != "#" &&
		text != firstName &&
		!textutil.IsNumeric(text) &&
		len(text) > 1
}

func containsLetter(s string) bool {
	for _, c := range s {
		if unicode.IsLetter(c) {
			return true
		}
	}
	return false
}
