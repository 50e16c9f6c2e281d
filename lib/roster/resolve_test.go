package roster

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func scenarioRecords() []Record {
	return []Record{
		{TeamID: 1, Season: "2023/2024", TeamName: "Lightning", PlayerName: "Alex Lee"},
		{TeamID: 1, Season: "2023/2024", TeamName: "Lightning", PlayerName: "Sam Roy"},
		{TeamID: 2, Season: "2024/2025", TeamName: "Thunder", PlayerName: "Alex Lee"},
	}
}

func TestResolveScenario(t *testing.T) {
	m := Resolve(context.Background(), scenarioRecords())

	require.Equal(t, []string{"Alex Lee", "Sam Roy"}, m.Players)
	require.Len(t, m.Teams, 2)
	require.Equal(t, "Lightning", m.Teams[0].TeamName)
	require.Equal(t, "Thunder", m.Teams[1].TeamName)
	require.Equal(t, []string{"Alex Lee", "Sam Roy"}, m.Teams[0].Roster)

	memberships := m.Memberships["Alex Lee"]
	require.Len(t, memberships, 2)
	require.Equal(t, "2023/2024", memberships[0].Team.Season)
	require.Equal(t, []string{"Sam Roy"}, memberships[0].Teammates)
	require.Equal(t, "2024/2025", memberships[1].Team.Season)
	require.Empty(t, memberships[1].Teammates)

	sam := m.Memberships["Sam Roy"]
	require.Len(t, sam, 1)
	require.Equal(t, []string{"Alex Lee"}, sam[0].Teammates)
}

func TestResolveFirstSeenTeamName(t *testing.T) {
	m := Resolve(context.Background(), []Record{
		{TeamID: 7, Season: "2022/2023", TeamName: "Comets", PlayerName: "A"},
		{TeamID: 7, Season: "2022/2023", TeamName: "Comets (renamed)", PlayerName: "B"},
	})

	require.Len(t, m.Teams, 1)
	require.Equal(t, "Comets", m.Teams[0].TeamName)
	require.Equal(t, []string{"A", "B"}, m.Teams[0].Roster)
}

func TestResolveTeammateExclusion(t *testing.T) {
	records := []Record{
		{TeamID: 1, Season: "2023/2024", TeamName: "Lightning", PlayerName: "Alex Lee"},
		{TeamID: 1, Season: "2023/2024", TeamName: "Lightning", PlayerName: "Sam Roy"},
		{TeamID: 1, Season: "2023/2024", TeamName: "Lightning", PlayerName: "Pat Moor"},
		{TeamID: 3, Season: "2021/2022", TeamName: "Bears", PlayerName: "Pat Moor"},
	}

	m := Resolve(context.Background(), records)
	for player, memberships := range m.Memberships {
		for _, membership := range memberships {
			require.NotContains(t, membership.Teammates, player)
		}
	}
}

func TestResolveMembershipOrdering(t *testing.T) {
	records := []Record{
		{TeamID: 5, Season: "Fall League", TeamName: "Pickup", PlayerName: "Alex Lee"},
		{TeamID: 2, Season: "2024/2025", TeamName: "Thunder", PlayerName: "Alex Lee"},
		{TeamID: 1, Season: "2019/2020", TeamName: "Lightning", PlayerName: "Alex Lee"},
	}

	m := Resolve(context.Background(), records)
	memberships := m.Memberships["Alex Lee"]
	require.Len(t, memberships, 3)
	require.Equal(t, "2019/2020", memberships[0].Team.Season)
	require.Equal(t, "2024/2025", memberships[1].Team.Season)
	// unparsable seasons sort after every numeric one
	require.Equal(t, "Fall League", memberships[2].Team.Season)
}

func TestResolveDeterministicUnderShuffle(t *testing.T) {
	records := []Record{
		{TeamID: 1, Season: "2023/2024", TeamName: "Lightning", PlayerName: "Alex Lee"},
		{TeamID: 1, Season: "2023/2024", TeamName: "Lightning", PlayerName: "Sam Roy"},
		{TeamID: 2, Season: "2024/2025", TeamName: "Thunder", PlayerName: "Alex Lee"},
		{TeamID: 3, Season: "2022/2023", TeamName: "Bears", PlayerName: "Sam Roy"},
		{TeamID: 4, Season: "Fall League", TeamName: "Pickup", PlayerName: "Sam Roy"},
	}

	// Resolve consumes Load's canonical order; shuffling then re-sorting
	// mimics the same record set arriving split across files arbitrarily.
	baseline := Resolve(context.Background(), canonicalOrder(records))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]Record(nil), records...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		m := Resolve(context.Background(), canonicalOrder(shuffled))
		if diff := cmp.Diff(baseline.Players, m.Players); diff != "" {
			t.Fatal(diff)
		}
		if diff := cmp.Diff(baseline.Teams, m.Teams); diff != "" {
			t.Fatal(diff)
		}
		if diff := cmp.Diff(baseline.Memberships, m.Memberships); diff != "" {
			t.Fatal(diff)
		}
	}
}

func canonicalOrder(records []Record) []Record {
	out := append([]Record(nil), records...)
	for i := range out {
		for j := i + 1; j < len(out); j++ {
			a, b := out[i], out[j]
			if b.TeamID < a.TeamID ||
				(b.TeamID == a.TeamID && b.Season < a.Season) ||
				(b.TeamID == a.TeamID && b.Season == a.Season && b.PlayerName < a.PlayerName) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}
