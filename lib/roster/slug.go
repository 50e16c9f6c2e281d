package roster

import (
	"fmt"
	"strings"
	"unicode"
)

var slugSeparators = strings.NewReplacer(" ", "_", "/", "_", "\\", "_")

func sanitizeSlug(s string) string {
	s = slugSeparators.Replace(s)
	var b strings.Builder
	for _, c := range s {
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '.' || c == '_' || c == '-' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// PlayerSlug derives the output page identifier for a player name.
func PlayerSlug(name string) (string, error) {
	slug := sanitizeSlug(name)
	if slug == "" {
		return "", &DegenerateSlugError{Namespace: "player", Entity: name}
	}
	return slug, nil
}

// TeamSlug derives the output page identifier for a team instance.
func TeamSlug(teamID int64, season string) (string, error) {
	entity := fmt.Sprintf("%d_%s", teamID, season)
	slug := sanitizeSlug(entity)
	if slug == "" {
		return "", &DegenerateSlugError{Namespace: "team", Entity: entity}
	}
	return slug, nil
}

// SlugTable holds the verified page identifier for every player and team
// instance in a model.
type SlugTable struct {
	Players map[string]string
	Teams   map[TeamKey]string
}

// BuildSlugs computes every slug up front and checks uniqueness within
// each namespace. It must run to completion before any page is written;
// a collision surfaces as an error instead of one page silently
// overwriting another.
func BuildSlugs(m *Model) (*SlugTable, error) {
	t := &SlugTable{
		Players: make(map[string]string, len(m.Players)),
		Teams:   make(map[TeamKey]string, len(m.Teams)),
	}

	owners := make(map[string]string, len(m.Players))
	for _, name := range m.Players {
		slug, err := PlayerSlug(name)
		if err != nil {
			return nil, err
		}
		if prev, taken := owners[slug]; taken {
			return nil, &SlugCollisionError{
				Namespace: "player",
				Slug:      slug,
				First:     prev,
				Second:    name,
			}
		}
		owners[slug] = name
		t.Players[name] = slug
	}

	owners = make(map[string]string, len(m.Teams))
	for _, team := range m.Teams {
		slug, err := TeamSlug(team.TeamID, team.Season)
		if err != nil {
			return nil, err
		}
		entity := fmt.Sprintf("%s (%d, %s)", team.TeamName, team.TeamID, team.Season)
		if prev, taken := owners[slug]; taken {
			return nil, &SlugCollisionError{
				Namespace: "team",
				Slug:      slug,
				First:     prev,
				Second:    entity,
			}
		}
		owners[slug] = entity
		t.Teams[team.Key()] = slug
	}

	return t, nil
}
