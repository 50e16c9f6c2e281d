package commands

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"rostersite/lib/configutil"
	"rostersite/lib/crawler"
	"rostersite/lib/restyutil"
	"rostersite/lib/roster"
	"rostersite/lib/rosterdb"
	"rostersite/lib/scrapers/arlington"
	"rostersite/lib/serviceutil"
	"rostersite/lib/telemetry"
)

type Config struct {
	BaseUrl string `json:"baseUrl"`
}

var crawlDb *string
var crawlCapture *string
var crawlDelay *time.Duration

func init() {
	crawlDb = crawlCmd.Flags().String("db", "", "Also push crawled records into this sqlite database.")
	crawlCapture = crawlCmd.Flags().String("capture", "", "Dump raw HTTP exchanges into this directory.")
	crawlDelay = crawlCmd.Flags().Duration("delay", time.Second, "Upper bound on the random pause between requests.")
	rootCmd.AddCommand(crawlCmd)
}

var crawlCmd = &cobra.Command{
	Use:   "crawl <start_id> <num_teams>",
	Short: "Crawls a range of team rosters and writes them to a CSV file.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		startID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			serviceutil.Fatal("invalid start_id", err)
		}
		count, err := strconv.Atoi(args[1])
		if err != nil {
			serviceutil.Fatal("invalid num_teams", err)
		}

		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			serviceutil.Fatal("failed to read config", err)
		}

		if *crawlCapture != "" {
			arlington.SetRestyCaptureOutput(restyutil.NewFilesystemOutput(*crawlCapture))
		}
		telemetry.InstrumentPerfStats(cmd.Context())

		client, err := arlington.NewClient(cmd.Context(), arlington.ClientOptions{
			BaseUrl: cfg.BaseUrl,
		})
		if err != nil {
			serviceutil.Fatal("failed to initialize roster client", err)
		}

		t1 := time.Now()
		records, err := crawler.Crawl(cmd.Context(), client, startID, count, crawler.Options{
			MaxDelay: *crawlDelay,
		})
		if err != nil {
			serviceutil.Fatal("crawl aborted", err)
		}
		slog.Info("crawl time", "seconds", time.Since(t1).Seconds())

		if len(records) == 0 {
			slog.Warn("no data retrieved")
			return
		}

		filename := fmt.Sprintf("ArlingtonIce-%d-%d.csv", startID, startID+int64(count)-1)
		if err := writeCsv(filename, records); err != nil {
			serviceutil.Fatal("failed to write csv", err)
		}
		slog.Info("wrote crawl results", "file", filename, "records", len(records))

		if *crawlDb != "" {
			store, err := rosterdb.Open(*crawlDb)
			if err != nil {
				serviceutil.Fatal("failed to open db", err)
			}
			defer store.Close()

			if err := store.Push(cmd.Context(), records); err != nil {
				serviceutil.Fatal("failed to push records to db", err)
			}
			slog.Info("pushed crawl results", "db", *crawlDb)
		}
	},
}

func writeCsv(path string, records []roster.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"team_id", "season", "team_name", "player_name", "fetched_at"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.TeamID, 10),
			r.Season,
			r.TeamName,
			r.PlayerName,
			r.FetchedAt,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
