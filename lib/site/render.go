package site

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"rostersite/lib/roster"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("rostersite.lib.site")

//go:embed templates/*.tmpl
var templateFS embed.FS

var pages = template.Must(
	template.New("site").
		Funcs(template.FuncMap{
			"inc": func(i int) int { return i + 1 },
		}).
		ParseFS(templateFS, "templates/*.tmpl"),
)

// WriteSite renders the whole page set under outDir:
//
//	<outDir>/index.html
//	<outDir>/players/<player-slug>.html
//	<outDir>/teams/<team-slug>.html
//
// Every slug is computed and checked for collisions before the first file
// is written; player and team pages then render concurrently, which is
// safe because distinct slugs mean distinct output paths and the model is
// never mutated here.
func WriteSite(ctx context.Context, m *roster.Model, outDir string) error {
	ctx, span := tracer.Start(ctx, "WriteSite")
	defer span.End()
	span.SetAttributes(
		attribute.String("out", outDir),
		attribute.Int("players", len(m.Players)),
		attribute.Int("teams", len(m.Teams)),
	)

	slugs, err := roster.BuildSlugs(m)
	if err != nil {
		span.RecordError(err)
		return err
	}

	for _, dir := range []string{outDir, filepath.Join(outDir, "players"), filepath.Join(outDir, "teams")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	err = writePage(filepath.Join(outDir, "index.html"), "home", HomePageModel(m, slugs))
	if err != nil {
		return err
	}

	var errList []error
	var errLock sync.Mutex
	wg := sync.WaitGroup{}
	fail := func(err error) {
		errLock.Lock()
		defer errLock.Unlock()
		errList = append(errList, err)
	}

	for _, name := range m.Players {
		name := name
		wg.Add(1)
		go func() {
			defer wg.Done()
			page := PlayerPageModel(m, slugs, name)
			err := writePage(filepath.Join(outDir, "players", page.Slug+".html"), "player", page)
			if err != nil {
				fail(fmt.Errorf("player page %q: %w", name, err))
			}
		}()
	}
	for _, team := range m.Teams {
		team := team
		wg.Add(1)
		go func() {
			defer wg.Done()
			page := TeamPageModel(team, slugs)
			err := writePage(filepath.Join(outDir, "teams", page.Slug+".html"), "team", page)
			if err != nil {
				fail(fmt.Errorf("team page %q: %w", team.TeamName, err))
			}
		}()
	}
	wg.Wait()

	if len(errList) > 0 {
		err := errors.Join(errList...)
		span.RecordError(err)
		return err
	}

	slog.InfoContext(ctx, "site written",
		"out", outDir,
		"players", len(m.Players),
		"teams", len(m.Teams),
	)
	return nil
}

func writePage(path string, name string, data any) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
