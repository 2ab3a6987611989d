package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
	"github.com/San-Shiro/studentsearch/internal/logger"
)

var (
	searchJSON    bool
	searchTimeout time.Duration
)

var searchCmd = &cobra.Command{
	Use:   "search [identifier]",
	Short: "Search the student directory",
	Long: `Looks up student records by identifier (roll number) and prints
the matching name, identifier and location fields.

When the bot-verification gate is active, the command first completes
the challenge; when the session gate is active, a prior login is
required unless guest mode is enabled.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().DurationVar(&searchTimeout, "timeout", 2*time.Minute,
		"maximum time to wait for gate and response")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchPipeline == nil {
		return errors.New("search pipeline not configured")
	}

	ctx, cancel := contextWithTimeout(cmd, searchTimeout)
	defer cancel()

	if err := ensureGate(ctx); err != nil {
		return err
	}

	state := searchPipeline.Submit(ctx, query)
	if state.Err != "" {
		return errors.New(state.Err)
	}

	if searchJSON {
		return outputRecordsJSON(cmd, state.Results)
	}
	return outputRecordsTable(cmd, state.Results)
}

// contextWithTimeout derives a bounded context from the command.
func contextWithTimeout(cmd *cobra.Command, d time.Duration) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// ensureGate satisfies the configured gate before a one-shot search.
func ensureGate(ctx context.Context) error {
	switch gateMode {
	case domain.GateModeToken:
		if verifyService == nil {
			return errors.New("verify service not configured")
		}
		if verifyService.Satisfied() {
			return nil
		}
		logger.Info("completing verification challenge")
		if err := verifyService.Begin(ctx); err != nil {
			return fmt.Errorf("verification unavailable: %w", err)
		}
		if err := verifyService.AwaitToken(ctx); err != nil {
			return fmt.Errorf("verification did not complete: %w", err)
		}
	case domain.GateModeSession:
		if sessionService == nil {
			return errors.New("session service not configured")
		}
		if !sessionService.Check(ctx).Authenticated {
			return fmt.Errorf("%w: not logged in, run 'studentsearch login' first", domain.ErrGateUnsatisfied)
		}
	}
	return nil
}

func outputRecordsJSON(cmd *cobra.Command, records []domain.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecordsTable(cmd *cobra.Command, records []domain.Record) error {
	if len(records) == 0 {
		cmd.Println("No records found.")
		return nil
	}

	cmd.Println("Records:")
	cmd.Println()
	for i := range records {
		cmd.Printf("  [%d] %s\n", i+1, records[i].Name)
		cmd.Printf("      Identifier: %s\n", records[i].Roll)
		cmd.Printf("      Location:   %s\n", records[i].Hometown)
		cmd.Println()
	}

	return nil
}
