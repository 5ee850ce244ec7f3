package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default word list",
	Long: "Replace the stored word list with the default words.\n" +
		"With --all the completion history is cleared as well.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		d.inv.RemoveAll(ctx)
		d.inv.ResetPractice(ctx)
		fmt.Fprintf(cmd.OutOrStdout(), "Word list reset to %d default words\n", d.inv.Len())

		if all {
			if err := d.store.EventRepo().ClearCompletions(ctx); err != nil {
				return fmt.Errorf("clear history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Also clear the completion history")
}
