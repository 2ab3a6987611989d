package driven

import "context"

// SessionGateway talks to the remote service's session endpoints. All
// calls rely on ambient transport credentials (the cookie jar); no token
// is ever attached.
type SessionGateway interface {
	// Probe asks the service whether a valid session cookie exists,
	// using the dedicated check-only query parameter. Any success
	// status means authenticated. Errors are returned so callers can
	// log them, but the session gate treats every failure, including
	// network failure, the same as "not logged in".
	Probe(ctx context.Context) (bool, error)

	// Login submits credentials as a structured body with the login
	// action marker. Returns domain.ErrLoginFailed (wrapped with the
	// service-provided message when there is one) on rejection.
	Login(ctx context.Context, username, password string) error

	// Logout submits the logout action marker. The caller resets local
	// state regardless of the outcome.
	Logout(ctx context.Context) error
}
