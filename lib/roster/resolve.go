package roster

import (
	"context"
	"sort"

	"go.opentelemetry.io/otel/attribute"
)

// TeamInstance is one team scoped to a single canonical season.
type TeamInstance struct {
	TeamID   int64
	Season   string
	TeamName string
	// Roster holds the distinct player names recorded for this team
	// instance, sorted.
	Roster []string
}

func (t *TeamInstance) Key() TeamKey {
	return TeamKey{TeamID: t.TeamID, Season: t.Season}
}

// Membership pairs a player with one team instance and the other players
// recorded on it.
type Membership struct {
	Team *TeamInstance
	// Teammates is the instance's roster minus the player, sorted.
	Teammates []string
}

// Model is the fully resolved view of a record set. It is built once and
// only read afterwards, so page generation can traverse it from any number
// of goroutines.
type Model struct {
	// Players holds every distinct player name, sorted.
	Players []string
	// Teams holds every team instance in listing order: season start
	// year ascending, then season label, team name and id. Seasons
	// without a parsable year sort after all numeric ones.
	Teams []*TeamInstance
	// Memberships maps a player to their team history, ordered by
	// ascending season start year. Unparsable seasons keep their
	// relative order at the end.
	Memberships map[string][]Membership

	byKey map[TeamKey]*TeamInstance
}

// Team looks up a team instance by key.
func (m *Model) Team(key TeamKey) *TeamInstance {
	return m.byKey[key]
}

// Resolve derives the distinct players, team instances and per-player
// membership lists from a deduplicated record set. Records must already be
// in Load's canonical order; given that, the result is identical no matter
// how the source rows were originally distributed across files.
func Resolve(ctx context.Context, records []Record) *Model {
	_, span := tracer.Start(ctx, "Resolve")
	defer span.End()

	m := &Model{
		Memberships: make(map[string][]Membership),
		byKey:       make(map[TeamKey]*TeamInstance),
	}

	playerSet := make(map[string]struct{})
	rosterSets := make(map[TeamKey]map[string]struct{})
	// membership keys per player, in canonical record order
	teamsByPlayer := make(map[string][]TeamKey)

	for _, r := range records {
		key := r.teamKey()
		team := m.byKey[key]
		if team == nil {
			// first-seen name wins when the same (id, season) key
			// carries different team names across rows
			team = &TeamInstance{
				TeamID:   r.TeamID,
				Season:   r.Season,
				TeamName: r.TeamName,
			}
			m.byKey[key] = team
			m.Teams = append(m.Teams, team)
			rosterSets[key] = make(map[string]struct{})
		}

		if _, ok := rosterSets[key][r.PlayerName]; !ok {
			rosterSets[key][r.PlayerName] = struct{}{}
			team.Roster = append(team.Roster, r.PlayerName)
		}
		if _, ok := playerSet[r.PlayerName]; !ok {
			playerSet[r.PlayerName] = struct{}{}
			m.Players = append(m.Players, r.PlayerName)
		}
		teamsByPlayer[r.PlayerName] = appendTeamKey(teamsByPlayer[r.PlayerName], key)
	}

	sort.Strings(m.Players)
	for _, team := range m.Teams {
		sort.Strings(team.Roster)
	}
	sort.SliceStable(m.Teams, func(i, j int) bool {
		return teamListingLess(m.Teams[i], m.Teams[j])
	})

	for player, keys := range teamsByPlayer {
		memberships := make([]Membership, 0, len(keys))
		for _, key := range keys {
			team := m.byKey[key]
			memberships = append(memberships, Membership{
				Team:      team,
				Teammates: withoutPlayer(team.Roster, player),
			})
		}
		// stable: same-year and unparsable seasons keep canonical order
		sort.SliceStable(memberships, func(i, j int) bool {
			return seasonLess(memberships[i].Team.Season, memberships[j].Team.Season)
		})
		m.Memberships[player] = memberships
	}

	span.SetAttributes(
		attribute.Int("players", len(m.Players)),
		attribute.Int("teams", len(m.Teams)),
	)
	return m
}

func appendTeamKey(keys []TeamKey, key TeamKey) []TeamKey {
	for _, k := range keys {
		if k == key {
			return keys
		}
	}
	return append(keys, key)
}

func withoutPlayer(sortedRoster []string, player string) []string {
	teammates := make([]string, 0, len(sortedRoster)-1)
	for _, name := range sortedRoster {
		if name != player {
			teammates = append(teammates, name)
		}
	}
	return teammates
}

// seasonLess orders by parsed start year only; it is used with a stable
// sort so that everything else keeps its prior order.
func seasonLess(a, b string) bool {
	ya, oka := SeasonStartYear(a)
	yb, okb := SeasonStartYear(b)
	if oka && okb {
		return ya < yb
	}
	// numeric seasons before unparsable ones
	return oka && !okb
}

func teamListingLess(a, b *TeamInstance) bool {
	ya, oka := SeasonStartYear(a.Season)
	yb, okb := SeasonStartYear(b.Season)
	switch {
	case oka && !okb:
		return true
	case !oka && okb:
		return false
	case oka && okb && ya != yb:
		return ya < yb
	}
	if a.Season != b.Season {
		return a.Season < b.Season
	}
	if a.TeamName != b.TeamName {
		return a.TeamName < b.TeamName
	}
	return a.TeamID < b.TeamID
}
