package driving

import "context"

// VerifyService manages the bot-verification gate: it mounts the
// challenge widget and holds at most one valid token at a time.
type VerifyService interface {
	// Begin mounts the widget. Idempotent while a widget is active.
	// Returns domain.ErrWidgetUnavailable when the provider cannot be
	// loaded; the gate then simply stays unsatisfied.
	Begin(ctx context.Context) error

	// AwaitToken blocks until a token is held or ctx is done. Returns
	// immediately when a valid token is already present.
	AwaitToken(ctx context.Context) error

	// Satisfied reports whether a valid token is currently held.
	Satisfied() bool

	// Invalidate discards the held token, forcing re-verification.
	Invalidate()

	// Close unmounts the widget and releases its provider reference.
	Close()
}
