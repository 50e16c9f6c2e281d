// Package rosterdb persists raw roster records in a sqlite database, the
// crawl command's alternative output to CSV. Databases written here can be
// fed straight back into roster.Load as a source.
package rosterdb

import (
	"context"
	"database/sql"
	"strings"

	"rostersite/lib/roster"

	_ "embed"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var Schema string

type Store struct {
	db *sql.DB
}

// NewStore wraps an already-opened database. The schema must have been
// applied.
func NewStore(db *sql.DB) Store {
	return Store{db: db}
}

// Open creates (or reuses) a roster database at path.
func Open(path string) (Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return Store{}, err
	}
	_, err = db.Exec(Schema)
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		db.Close()
		return Store{}, err
	}
	return Store{db: db}, nil
}

func (s Store) Close() error {
	return s.db.Close()
}

// Push inserts records, ignoring rows whose identity is already present.
func (s Store) Push(ctx context.Context, records []roster.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO roster_records
		 (team_id, season, team_name, player_name, fetched_at)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.ExecContext(ctx, r.TeamID, r.Season, r.TeamName, r.PlayerName, r.FetchedAt)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Records reads back every stored record.
func (s Store) Records(ctx context.Context) ([]roster.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT team_id, season, team_name, player_name, fetched_at
		 FROM roster_records`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []roster.Record
	for rows.Next() {
		var r roster.Record
		err := rows.Scan(&r.TeamID, &r.Season, &r.TeamName, &r.PlayerName, &r.FetchedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
