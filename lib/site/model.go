// Package site turns a resolved roster model into the static page set:
// one home index, one page per player, one page per team instance.
package site

import (
	"rostersite/lib/roster"
)

// PlayerLink points at a player page. Href is relative to the linking
// page's directory.
type PlayerLink struct {
	Name string
	Href string
}

// TeamLink points at a team page.
type TeamLink struct {
	TeamName string
	Season   string
	Href     string
}

type HomePage struct {
	PlayerLinks []PlayerLink
	TeamLinks   []TeamLink
	PlayerCount int
	TeamCount   int
}

type PlayerMembership struct {
	TeamName  string
	Season    string
	TeamID    int64
	TeamHref  string
	Teammates []PlayerLink
}

type PlayerPage struct {
	Name        string
	Slug        string
	Memberships []PlayerMembership
	// TotalUniqueTeammates counts each distinct teammate once, however
	// many rosters they share with the player.
	TotalUniqueTeammates int
}

type TeamPage struct {
	TeamName string
	Season   string
	TeamID   int64
	Slug     string
	Roster   []PlayerLink
}

// HomePageModel lists every player and team in the model's resolved
// orders. Links are relative to the output root.
func HomePageModel(m *roster.Model, slugs *roster.SlugTable) HomePage {
	page := HomePage{
		PlayerCount: len(m.Players),
		TeamCount:   len(m.Teams),
	}
	for _, name := range m.Players {
		page.PlayerLinks = append(page.PlayerLinks, PlayerLink{
			Name: name,
			Href: "players/" + slugs.Players[name] + ".html",
		})
	}
	for _, team := range m.Teams {
		page.TeamLinks = append(page.TeamLinks, TeamLink{
			TeamName: team.TeamName,
			Season:   team.Season,
			Href:     "teams/" + slugs.Teams[team.Key()] + ".html",
		})
	}
	return page
}

// PlayerPageModel renders one player's team history. Links are relative
// to the players/ directory.
func PlayerPageModel(m *roster.Model, slugs *roster.SlugTable, name string) PlayerPage {
	page := PlayerPage{
		Name: name,
		Slug: slugs.Players[name],
	}

	unique := make(map[string]struct{})
	for _, membership := range m.Memberships[name] {
		team := membership.Team
		pm := PlayerMembership{
			TeamName: team.TeamName,
			Season:   team.Season,
			TeamID:   team.TeamID,
			TeamHref: "../teams/" + slugs.Teams[team.Key()] + ".html",
		}
		for _, teammate := range membership.Teammates {
			unique[teammate] = struct{}{}
			pm.Teammates = append(pm.Teammates, PlayerLink{
				Name: teammate,
				Href: "../players/" + slugs.Players[teammate] + ".html",
			})
		}
		page.Memberships = append(page.Memberships, pm)
	}

	page.TotalUniqueTeammates = len(unique)
	return page
}

// TeamPageModel renders one team instance's roster. Links are relative
// to the teams/ directory.
func TeamPageModel(team *roster.TeamInstance, slugs *roster.SlugTable) TeamPage {
	page := TeamPage{
		TeamName: team.TeamName,
		Season:   team.Season,
		TeamID:   team.TeamID,
		Slug:     slugs.Teams[team.Key()],
	}
	for _, name := range team.Roster {
		page.Roster = append(page.Roster, PlayerLink{
			Name: name,
			Href: "../players/" + slugs.Players[name] + ".html",
		})
	}
	return page
}
