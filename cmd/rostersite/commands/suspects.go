package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"rostersite/lib/namecheck"
	"rostersite/lib/roster"
	"rostersite/lib/serviceutil"
)

var suspectsThreshold *float64

func init() {
	suspectsThreshold = suspectsCmd.Flags().Float64("threshold", 0.93, "Minimum Jaro-Winkler similarity to report.")
	rootCmd.AddCommand(suspectsCmd)
}

var suspectsCmd = &cobra.Command{
	Use:   "suspects <sources...>",
	Short: "Reports player names that look like misspellings of each other.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var sources []string
		for _, arg := range args {
			matches, err := filepath.Glob(arg)
			if err != nil {
				serviceutil.Fatal("invalid source pattern", err)
			}
			if len(matches) == 0 {
				sources = append(sources, arg)
				continue
			}
			sources = append(sources, matches...)
		}

		records, err := roster.Load(cmd.Context(), sources)
		if err != nil {
			serviceutil.Fatal("failed to load roster records", err)
		}

		names := make([]string, len(records))
		for i, r := range records {
			names[i] = r.PlayerName
		}

		suspects := namecheck.SimilarNames(names, *suspectsThreshold)
		if len(suspects) == 0 {
			fmt.Println("no suspicious name pairs found")
			return
		}

		t := table.NewWriter()
		t.SetStyle(table.StyleRounded)
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"left", "right", "similarity"})
		for _, s := range suspects {
			t.AppendRow(table.Row{s.Left, s.Right, fmt.Sprintf("%.3f", s.Similarity)})
		}
		t.Render()
	},
}
