package cli

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
)

var loginUsername string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the directory service",
	Long: `Logs in to the directory service with a username and password.
The password is read from the terminal without echo and is not stored.

Only available when the session gate is configured.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the directory service",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "username to log in with")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if err := requireSessionGate(); err != nil {
		return err
	}

	username := loginUsername
	if username == "" {
		cmd.Print("Username: ")
		username = readLine(bufio.NewReader(os.Stdin))
	}
	if username == "" {
		return errors.New("username is required")
	}

	cmd.Print("Password: ")
	password := readPassword()
	cmd.Println()

	ctx, cancel := contextWithTimeout(cmd, searchTimeout)
	defer cancel()

	if err := sessionService.Login(ctx, username, password); err != nil {
		if errors.Is(err, domain.ErrLoginFailed) {
			return errors.New(domain.MsgLoginFailed)
		}
		return err
	}

	cmd.Println("Logged in.")
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if err := requireSessionGate(); err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout(cmd, searchTimeout)
	defer cancel()

	sessionService.Logout(ctx)
	cmd.Println("Logged out.")
	return nil
}

func requireSessionGate() error {
	if gateMode != domain.GateModeSession {
		return errors.New("session gate is not configured for this build")
	}
	if sessionService == nil {
		return errors.New("session service not configured")
	}
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
