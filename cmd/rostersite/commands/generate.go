package commands

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"rostersite/lib/roster"
	"rostersite/lib/serviceutil"
	"rostersite/lib/site"
)

var generateOut *string

func init() {
	generateOut = generateCmd.Flags().String("out", "docs", "The directory to write the generated site into.")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <sources...>",
	Short: "Builds the static roster site from CSV files or sqlite databases.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var sources []string
		for _, arg := range args {
			matches, err := filepath.Glob(arg)
			if err != nil {
				serviceutil.Fatal("invalid source pattern", err)
			}
			if len(matches) == 0 {
				// literal path, let the loader report it missing
				sources = append(sources, arg)
				continue
			}
			sources = append(sources, matches...)
		}

		t1 := time.Now()

		records, err := roster.Load(cmd.Context(), sources)
		if err != nil {
			serviceutil.Fatal("failed to load roster records", err)
		}

		model := roster.Resolve(cmd.Context(), records)

		if err := site.WriteSite(cmd.Context(), model, *generateOut); err != nil {
			serviceutil.Fatal("failed to write site", err)
		}

		slog.Info(
			"generated site",
			"out", *generateOut,
			"players", len(model.Players),
			"teams", len(model.Teams),
			"seconds", time.Since(t1).Seconds(),
		)
	},
}
