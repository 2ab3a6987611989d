// Package cli provides the command-line interface for studentsearch.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
	"github.com/San-Shiro/studentsearch/internal/core/ports/driving"
	"github.com/San-Shiro/studentsearch/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by main before Execute. Commands check for nil and
// fail with a clear message instead of panicking.
var (
	searchPipeline driving.SearchPipeline
	historyService driving.HistoryService
	sessionService driving.SessionService
	verifyService  driving.VerifyService
	gateMode       domain.GateMode
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "studentsearch",
	Short: "Look up student records by roll number",
	Long: `studentsearch queries the student directory service by identifier
and renders the matching records.

Depending on configuration, access is gated either by a bot-verification
challenge or by a username/password session.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose output")
}

// RootConfig holds the services the commands depend on.
type RootConfig struct {
	SearchPipeline driving.SearchPipeline
	HistoryService driving.HistoryService
	SessionService driving.SessionService
	VerifyService  driving.VerifyService
	GateMode       domain.GateMode
	Version        string
}

// SetRootConfig injects services into the command tree. Must be called
// before Execute.
func SetRootConfig(config *RootConfig) {
	if config == nil {
		return
	}
	searchPipeline = config.SearchPipeline
	historyService = config.HistoryService
	sessionService = config.SessionService
	verifyService = config.VerifyService
	gateMode = config.GateMode
	if config.Version != "" {
		version = config.Version
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
