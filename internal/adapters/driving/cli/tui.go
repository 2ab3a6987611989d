package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui"
	"github.com/San-Shiro/studentsearch/internal/core/domain"
	"github.com/San-Shiro/studentsearch/internal/core/ports/driving"
)

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	SearchPipeline driving.SearchPipeline
	SessionService driving.SessionService
	VerifyService  driving.VerifyService
	HistoryService driving.HistoryService
	GateMode       domain.GateMode
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for studentsearch.

The TUI provides a visual interface for looking up student records with
keyboard navigation. Depending on the configured gate it shows a login
form or runs the verification challenge before searching.

Controls:
  ↑/k, ↓/j - Navigate records
  Enter    - Search / Submit
  n        - New search
  ?        - Toggle help
  ctrl+c   - Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	// Build ports from configuration
	ports := &tui.Ports{}

	if tuiConfig != nil {
		ports.Search = tuiConfig.SearchPipeline
		ports.Session = tuiConfig.SessionService
		ports.Verify = tuiConfig.VerifyService
		ports.History = tuiConfig.HistoryService
		ports.GateMode = tuiConfig.GateMode
	}

	// Create the TUI app
	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	// Set up context from command
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
