package roster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeSeason(t *testing.T) {
	cases := []struct {
		raw      string
		expected string
	}{
		{"23/24 Season", "2023/2024"},
		{"23/24", "2023/2024"},
		{"99/00", "1999/2000"},
		{"2025/2026 SEASON", "2025/2026"},
		{"2019-2020", "2019/2020"},
		{"19 20", "2019/2020"},
		{"23\\24", "2023/2024"},
		{"Fall League", "Fall League"},
		{"", ""},
		{"2024", "2024"},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, NormalizeSeason(test.raw), "raw: %q", test.raw)
	}
}

func TestNormalizeSeasonIdempotent(t *testing.T) {
	inputs := []string{
		"23/24 Season",
		"99/00",
		"2025/2026 SEASON",
		"2023/2024",
		"Fall League",
		"",
		"49/50",
	}

	for _, raw := range inputs {
		once := NormalizeSeason(raw)
		require.Equal(t, once, NormalizeSeason(once), "raw: %q", raw)
	}
}

func TestSeasonStartYear(t *testing.T) {
	cases := []struct {
		season string
		year   int
		ok     bool
	}{
		{"2023/2024", 2023, true},
		{"1999/2000", 1999, true},
		{"Fall League", 0, false},
		{"23/24", 0, false},
		{"", 0, false},
	}

	for _, test := range cases {
		year, ok := SeasonStartYear(test.season)
		require.Equal(t, test.ok, ok, "season: %q", test.season)
		require.Equal(t, test.year, year, "season: %q", test.season)
	}
}
