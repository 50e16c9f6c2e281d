package roster

import (
	"regexp"
	"strconv"
)

var seasonPattern = regexp.MustCompile(`(\d{2,4})[\s/\\-]+(\d{2,4})`)
var yearPattern = regexp.MustCompile(`\d{4}`)

// NormalizeSeason canonicalizes a free-form season label into "YYYY/YYYY".
// It looks for two numeric year tokens separated by whitespace, slash,
// backslash or hyphen, expanding 2-digit years with a pivot of 50
// (<50 becomes 20xx, >=50 becomes 19xx). Labels with no such pair pass
// through unchanged and act as their own canonical season.
//
// Already-canonical labels match their own pattern and resolve back to
// themselves, so the function is idempotent.
func NormalizeSeason(raw string) string {
	m := seasonPattern.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	return expandYear(m[1]) + "/" + expandYear(m[2])
}

func expandYear(token string) string {
	if len(token) != 2 {
		return token
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return token
	}
	if n < 50 {
		return "20" + token
	}
	return "19" + token
}

// SeasonStartYear extracts the first 4-digit year token of a canonical
// season as an integer. Seasons without one (pass-through labels like
// "Fall League") report ok=false and sort after every numeric season.
func SeasonStartYear(season string) (year int, ok bool) {
	token := yearPattern.FindString(season)
	if token == "" {
		return 0, false
	}
	year, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return year, true
}
