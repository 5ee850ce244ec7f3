package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-word spelling statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		stats, err := d.store.EventRepo().WordStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(stats) == 0 {
			fmt.Fprintln(out, "No words spelled yet.")
			return nil
		}

		fmt.Fprintf(out, "%-24s  %7s  %8s  %8s\n", "Word", "Spelled", "Mistakes", "Best")
		fmt.Fprintln(out, strings.Repeat("─", 55))

		var completions, mistakes int
		for _, s := range stats {
			fmt.Fprintf(out, "%-24s  %7d  %8d  %7.1fs\n",
				s.WordKey, s.Completions, s.TotalMistakes, float64(s.BestMs)/1000)
			completions += s.Completions
			mistakes += s.TotalMistakes
		}
		fmt.Fprintf(out, "\n%d words, %d completions, %d mistakes\n", len(stats), completions, mistakes)
		return nil
	},
}
