// Package crawler walks a range of team IDs against a roster fetcher,
// pacing requests with a random delay so the crawl stays gentle.
package crawler

import (
	"context"
	"log/slog"
	"time"

	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"rostersite/lib/roster"
)

var tracer = otel.Tracer("rostersite.lib.crawler")

// Fetcher retrieves the roster records of a single team.
type Fetcher interface {
	FetchTeamRoster(ctx context.Context, teamID int64) ([]roster.Record, error)
}

type Options struct {
	// MaxDelay caps the random pause inserted before each request.
	// Zero disables pacing entirely, which tests rely on.
	MaxDelay time.Duration
}

// Crawl fetches rosters for count team IDs starting at startID. Teams
// that fail to fetch are logged and skipped, so a single missing page
// does not abort a long crawl.
func Crawl(ctx context.Context, fetcher Fetcher, startID int64, count int, opts Options) ([]roster.Record, error) {
	ctx, span := tracer.Start(ctx, "Crawl")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("start_id", startID),
		attribute.Int("count", count),
	)

	var out []roster.Record
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		teamID := startID + int64(i)

		if err := pause(ctx, opts.MaxDelay); err != nil {
			return out, err
		}

		records, err := fetcher.FetchTeamRoster(ctx, teamID)
		if err != nil {
			if ctx.Err() != nil {
				return out, ctx.Err()
			}
			slog.WarnContext(
				ctx, "failed to fetch team roster",
				"teamId", teamID,
				"err", err,
			)
			continue
		}
		slog.InfoContext(
			ctx, "fetched team roster",
			"teamId", teamID,
			"players", len(records),
		)
		out = append(out, records...)
	}

	return out, nil
}

func pause(ctx context.Context, maxDelay time.Duration) error {
	if maxDelay <= 0 {
		return nil
	}
	ms, err := random.IntRange(0, int(maxDelay.Milliseconds())+1)
	if err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(time.Duration(ms) * time.Millisecond):
		return nil
	}
}
