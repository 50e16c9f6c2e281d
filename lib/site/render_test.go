package site

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"rostersite/lib/roster"

	"github.com/stretchr/testify/require"
)

func TestWriteSiteLayout(t *testing.T) {
	m, _ := scenarioModel(t)
	out := filepath.Join(t.TempDir(), "docs")

	err := WriteSite(context.Background(), m, out)
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(index), `href="players/Alex_Lee.html"`)
	require.Contains(t, string(index), `href="teams/1_2023_2024.html"`)
	require.Contains(t, string(index), "Total Players: 2 | Total Teams: 2")

	player, err := os.ReadFile(filepath.Join(out, "players", "Alex_Lee.html"))
	require.NoError(t, err)
	require.Contains(t, string(player), `href="../index.html"`)
	require.Contains(t, string(player), `href="../players/Sam_Roy.html"`)
	require.Contains(t, string(player), `href="../teams/2_2024_2025.html"`)
	require.Contains(t, string(player), "Total Unique Teammates: 1")

	team, err := os.ReadFile(filepath.Join(out, "teams", "2_2024_2025.html"))
	require.NoError(t, err)
	require.Contains(t, string(team), `href="../players/Alex_Lee.html"`)
	require.Contains(t, string(team), "Team ID: 2")
}

func TestWriteSiteEscapesNames(t *testing.T) {
	m := roster.Resolve(context.Background(), []roster.Record{
		{TeamID: 1, Season: "2023/2024", TeamName: "Bears <& Cubs>", PlayerName: "A <b> C"},
	})
	out := filepath.Join(t.TempDir(), "docs")

	err := WriteSite(context.Background(), m, out)
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(index), "Bears &lt;&amp; Cubs&gt;")
	require.NotContains(t, string(index), "<b> C")
}

func TestWriteSiteDeterministic(t *testing.T) {
	m, _ := scenarioModel(t)
	dir := t.TempDir()
	first := filepath.Join(dir, "one")
	second := filepath.Join(dir, "two")

	require.NoError(t, WriteSite(context.Background(), m, first))
	require.NoError(t, WriteSite(context.Background(), m, second))

	for _, rel := range []string{
		"index.html",
		filepath.Join("players", "Alex_Lee.html"),
		filepath.Join("players", "Sam_Roy.html"),
		filepath.Join("teams", "1_2023_2024.html"),
		filepath.Join("teams", "2_2024_2025.html"),
	} {
		a, err := os.ReadFile(filepath.Join(first, rel))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(second, rel))
		require.NoError(t, err)
		require.Equal(t, string(a), string(b), "page: %s", rel)
	}
}

func TestWriteSiteAbortsOnCollision(t *testing.T) {
	m := roster.Resolve(context.Background(), []roster.Record{
		{TeamID: 1, Season: "2023/2024", TeamName: "Lightning", PlayerName: "A/B Smith"},
		{TeamID: 1, Season: "2023/2024", TeamName: "Lightning", PlayerName: "A\\B Smith"},
	})
	out := filepath.Join(t.TempDir(), "docs")

	err := WriteSite(context.Background(), m, out)
	var collision *roster.SlugCollisionError
	require.ErrorAs(t, err, &collision)

	// the collision must be caught before anything is written
	_, statErr := os.Stat(out)
	require.True(t, os.IsNotExist(statErr))
}
