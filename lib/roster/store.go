package roster

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	_ "modernc.org/sqlite"
)

var tracer = otel.Tracer("rostersite.lib.roster")

var requiredColumns = []string{"team_id", "season", "team_name", "player_name", "fetched_at"}

// Load reads every source, normalizes season labels, and collapses exact
// duplicates. Sources ending in .db or .sqlite are read as crawl databases,
// everything else as CSV. Rows missing a required field and sources that
// cannot be read at all are skipped with a warning; only an empty combined
// dataset is fatal.
//
// The returned slice is sorted by (team_id, season, team_name, player_name),
// so everything derived from it is a pure function of the record set and
// never depends on file order.
func Load(ctx context.Context, sources []string) ([]Record, error) {
	ctx, span := tracer.Start(ctx, "Load")
	defer span.End()
	span.SetAttributes(attribute.Int("sources", len(sources)))

	if len(sources) == 0 {
		span.SetStatus(codes.Error, ErrNoInput.Error())
		return nil, ErrNoInput
	}

	seen := make(map[identity]struct{})
	var records []Record
	for _, src := range sources {
		rows, err := loadSource(ctx, src)
		if err != nil {
			// a bad file should not abort a run over the remaining
			// sources, an all-bad set is caught below
			span.RecordError(err)
			slog.WarnContext(ctx, "skipping unreadable source", "source", src, "err", err)
			continue
		}
		slog.InfoContext(ctx, "loaded roster source", "source", src, "rows", len(rows))

		for _, r := range rows {
			r.Season = NormalizeSeason(r.Season)
			id := r.identity()
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			records = append(records, r)
		}
	}

	if len(records) == 0 {
		span.SetStatus(codes.Error, ErrEmptyDataset.Error())
		return nil, ErrEmptyDataset
	}

	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.TeamID != b.TeamID {
			return a.TeamID < b.TeamID
		}
		if a.Season != b.Season {
			return a.Season < b.Season
		}
		if a.TeamName != b.TeamName {
			return a.TeamName < b.TeamName
		}
		return a.PlayerName < b.PlayerName
	})

	span.SetAttributes(attribute.Int("records", len(records)))
	return records, nil
}

func loadSource(ctx context.Context, src string) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(src)) {
	case ".db", ".sqlite":
		return readDatabase(ctx, src)
	default:
		return readCSV(ctx, src)
	}
}

func readCSV(ctx context.Context, path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	var records []Record
	line := 1
	for {
		row, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		record, err := parseRow(columns, row)
		if err != nil {
			slog.WarnContext(ctx, "skipping malformed row",
				"source", path, "line", line, "err", err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func parseRow(columns map[string]int, row []string) (Record, error) {
	field := func(name string) (string, error) {
		i := columns[name]
		if i >= len(row) || strings.TrimSpace(row[i]) == "" {
			return "", fmt.Errorf("missing field %q", name)
		}
		return row[i], nil
	}

	rawID, err := field("team_id")
	if err != nil {
		return Record{}, err
	}
	teamID, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("team_id %q is not an integer", rawID)
	}
	season, err := field("season")
	if err != nil {
		return Record{}, err
	}
	teamName, err := field("team_name")
	if err != nil {
		return Record{}, err
	}
	playerName, err := field("player_name")
	if err != nil {
		return Record{}, err
	}

	// fetched_at is carried through but never interpreted, an empty
	// value is not worth dropping the row over.
	fetchedAt := ""
	if i := columns["fetched_at"]; i < len(row) {
		fetchedAt = row[i]
	}

	return Record{
		TeamID:     teamID,
		Season:     season,
		TeamName:   teamName,
		PlayerName: playerName,
		FetchedAt:  fetchedAt,
	}, nil
}

func readDatabase(ctx context.Context, path string) ([]Record, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT team_id, season, team_name, player_name, fetched_at
		 FROM roster_records`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		err := rows.Scan(&r.TeamID, &r.Season, &r.TeamName, &r.PlayerName, &r.FetchedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
