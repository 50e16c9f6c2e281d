package site

import (
	"context"
	"testing"

	"rostersite/lib/roster"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func scenarioModel(t *testing.T) (*roster.Model, *roster.SlugTable) {
	t.Helper()
	m := roster.Resolve(context.Background(), []roster.Record{
		{TeamID: 1, Season: "2023/2024", TeamName: "Lightning", PlayerName: "Alex Lee"},
		{TeamID: 1, Season: "2023/2024", TeamName: "Lightning", PlayerName: "Sam Roy"},
		{TeamID: 2, Season: "2024/2025", TeamName: "Thunder", PlayerName: "Alex Lee"},
	})
	slugs, err := roster.BuildSlugs(m)
	require.NoError(t, err)
	return m, slugs
}

func TestHomePageModel(t *testing.T) {
	m, slugs := scenarioModel(t)

	page := HomePageModel(m, slugs)
	expected := HomePage{
		PlayerLinks: []PlayerLink{
			{Name: "Alex Lee", Href: "players/Alex_Lee.html"},
			{Name: "Sam Roy", Href: "players/Sam_Roy.html"},
		},
		TeamLinks: []TeamLink{
			{TeamName: "Lightning", Season: "2023/2024", Href: "teams/1_2023_2024.html"},
			{TeamName: "Thunder", Season: "2024/2025", Href: "teams/2_2024_2025.html"},
		},
		PlayerCount: 2,
		TeamCount:   2,
	}
	if diff := cmp.Diff(expected, page); diff != "" {
		t.Fatal(diff)
	}
}

func TestPlayerPageModel(t *testing.T) {
	m, slugs := scenarioModel(t)

	page := PlayerPageModel(m, slugs, "Alex Lee")
	expected := PlayerPage{
		Name: "Alex Lee",
		Slug: "Alex_Lee",
		Memberships: []PlayerMembership{
			{
				TeamName: "Lightning",
				Season:   "2023/2024",
				TeamID:   1,
				TeamHref: "../teams/1_2023_2024.html",
				Teammates: []PlayerLink{
					{Name: "Sam Roy", Href: "../players/Sam_Roy.html"},
				},
			},
			{
				TeamName: "Thunder",
				Season:   "2024/2025",
				TeamID:   2,
				TeamHref: "../teams/2_2024_2025.html",
			},
		},
		TotalUniqueTeammates: 1,
	}
	if diff := cmp.Diff(expected, page); diff != "" {
		t.Fatal(diff)
	}
}

func TestPlayerPageModelUniqueTeammatesAcrossTeams(t *testing.T) {
	// the same teammate on two shared rosters counts once
	m := roster.Resolve(context.Background(), []roster.Record{
		{TeamID: 1, Season: "2022/2023", TeamName: "Lightning", PlayerName: "Alex Lee"},
		{TeamID: 1, Season: "2022/2023", TeamName: "Lightning", PlayerName: "Sam Roy"},
		{TeamID: 2, Season: "2023/2024", TeamName: "Thunder", PlayerName: "Alex Lee"},
		{TeamID: 2, Season: "2023/2024", TeamName: "Thunder", PlayerName: "Sam Roy"},
		{TeamID: 2, Season: "2023/2024", TeamName: "Thunder", PlayerName: "Pat Moor"},
	})
	slugs, err := roster.BuildSlugs(m)
	require.NoError(t, err)

	page := PlayerPageModel(m, slugs, "Alex Lee")
	require.Equal(t, 2, page.TotalUniqueTeammates)
}

func TestTeamPageModel(t *testing.T) {
	m, slugs := scenarioModel(t)

	page := TeamPageModel(m.Teams[0], slugs)
	expected := TeamPage{
		TeamName: "Lightning",
		Season:   "2023/2024",
		TeamID:   1,
		Slug:     "1_2023_2024",
		Roster: []PlayerLink{
			{Name: "Alex Lee", Href: "../players/Alex_Lee.html"},
			{Name: "Sam Roy", Href: "../players/Sam_Roy.html"},
		},
	}
	if diff := cmp.Diff(expected, page); diff != "" {
		t.Fatal(diff)
	}
}
