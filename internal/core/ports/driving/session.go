package driving

import (
	"context"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
)

// SessionService is the session gate in front of the search screen.
type SessionService interface {
	// Check runs the one-time startup probe and returns the resulting
	// state. Probe failures of any kind, including network failure, are
	// swallowed and reported as unauthenticated.
	Check(ctx context.Context) domain.SessionState

	// Login exchanges credentials for a session cookie. The password is
	// never retained; on success it is the caller's job to clear its
	// input field too.
	Login(ctx context.Context, username, password string) error

	// Logout posts the logout action and always resets local state,
	// regardless of the remote outcome.
	Logout(ctx context.Context)

	// State returns a snapshot of the current session state.
	State() domain.SessionState
}
