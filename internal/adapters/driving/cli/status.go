package cli

import (
	"github.com/spf13/cobra"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show gate mode and current access state",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cmd.Printf("Gate mode: %s (%s)\n", gateMode, gateMode.Description())

	switch gateMode {
	case domain.GateModeSession:
		if sessionService == nil {
			cmd.Println("Session:   not configured")
			return nil
		}
		ctx, cancel := contextWithTimeout(cmd, searchTimeout)
		defer cancel()
		if sessionService.Check(ctx).Authenticated {
			cmd.Println("Session:   authenticated")
		} else {
			cmd.Println("Session:   not logged in")
		}
	case domain.GateModeToken:
		if verifyService == nil {
			cmd.Println("Token:     not configured")
			return nil
		}
		if verifyService.Satisfied() {
			cmd.Println("Token:     held")
		} else {
			cmd.Println("Token:     not verified")
		}
	default:
		cmd.Println("Access:    open")
	}

	return nil
}
