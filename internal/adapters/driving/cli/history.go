package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	Long: `Shows the most recent settled search attempts, newest first.
Only attempts that reached the network are recorded.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded searches",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	ctx, cancel := contextWithTimeout(cmd, searchTimeout)
	defer cancel()

	entries, err := historyService.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		cmd.Println("No searches recorded.")
		return nil
	}

	for _, e := range entries {
		when := e.CreatedAt.Local().Format("2006-01-02 15:04:05")
		switch e.Outcome {
		case domain.StateSuccess:
			cmd.Printf("  %s  %-20s %d result(s)\n", when, e.Query, e.ResultCount)
		default:
			cmd.Printf("  %s  %-20s failed: %s\n", when, e.Query, e.Err)
		}
	}

	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	ctx, cancel := contextWithTimeout(cmd, searchTimeout)
	defer cancel()

	if err := historyService.Clear(ctx); err != nil {
		return err
	}

	cmd.Println("History cleared.")
	return nil
}
