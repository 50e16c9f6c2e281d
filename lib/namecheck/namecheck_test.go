package namecheck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimilarNames(t *testing.T) {
	names := []string{
		"Jordan Baker",
		"Jordan Bakker",
		"Sam Roy",
		"Jordan Baker",
	}

	suspects := SimilarNames(names, 0.9)
	require.Len(t, suspects, 1)
	require.Equal(t, "Jordan Baker", suspects[0].Left)
	require.Equal(t, "Jordan Bakker", suspects[0].Right)
	require.Greater(t, suspects[0].Similarity, 0.9)
}

func TestSimilarNamesNoDuplicatePairs(t *testing.T) {
	suspects := SimilarNames([]string{"Sam Roy", "Sam Roy"}, 0.5)
	require.Empty(t, suspects)
}

func TestSimilarNamesThreshold(t *testing.T) {
	suspects := SimilarNames([]string{"Alex Lee", "Quinn Park"}, 0.95)
	require.Empty(t, suspects)
}
