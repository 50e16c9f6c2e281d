package roster

// Record is one player's recorded appearance on one team in one season.
// After Load, Season always holds the canonical form produced by
// NormalizeSeason. FetchedAt is carried through verbatim and never
// interpreted.
type Record struct {
	TeamID     int64
	Season     string
	TeamName   string
	PlayerName string
	FetchedAt  string
}

// TeamKey identifies a team instance: one team in one normalized season.
type TeamKey struct {
	TeamID int64
	Season string
}

// identity is the dedup key for records. Two rows that agree on these
// four fields are the same appearance, no matter when they were fetched.
type identity struct {
	TeamID     int64
	Season     string
	TeamName   string
	PlayerName string
}

func (r Record) identity() identity {
	return identity{
		TeamID:     r.TeamID,
		Season:     r.Season,
		TeamName:   r.TeamName,
		PlayerName: r.PlayerName,
	}
}

func (r Record) teamKey() TeamKey {
	return TeamKey{TeamID: r.TeamID, Season: r.Season}
}
