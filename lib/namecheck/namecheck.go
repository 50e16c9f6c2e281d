// Package namecheck flags player names that are suspiciously close to
// each other, usually misspellings introduced by the upstream roster
// pages. It only reports, it never rewrites.
package namecheck

import (
	"sort"

	"github.com/antzucaro/matchr"
)

type Suspect struct {
	Left       string
	Right      string
	Similarity float64
}

// SimilarNames compares every pair of distinct names and returns those
// whose Jaro-Winkler similarity meets the threshold, most similar
// first. Identical strings are never reported.
func SimilarNames(names []string, threshold float64) []Suspect {
	unique := map[string]struct{}{}
	for _, name := range names {
		unique[name] = struct{}{}
	}
	sorted := make([]string, 0, len(unique))
	for name := range unique {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	var suspects []Suspect
	for i, left := range sorted {
		for _, right := range sorted[i+1:] {
			similarity := matchr.JaroWinkler(left, right, false)
			if similarity < threshold {
				continue
			}
			suspects = append(suspects, Suspect{
				Left:       left,
				Right:      right,
				Similarity: similarity,
			})
		}
	}

	sort.SliceStable(suspects, func(a, b int) bool {
		return suspects[a].Similarity > suspects[b].Similarity
	})
	return suspects
}
