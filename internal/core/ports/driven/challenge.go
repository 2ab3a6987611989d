package driven

import "context"

// WidgetCallbacks are the host's hooks into the third-party challenge
// widget. Both are stored once at widget creation; the adapter never
// re-reads them, so the host must hand over identities that stay valid
// for the whole widget lifetime.
type WidgetCallbacks struct {
	// OnSuccess receives the opaque proof-of-human token after a
	// completed challenge. The adapter performs no validation of the
	// token's contents; that is the remote service's job.
	OnSuccess func(token string)

	// OnExpire is invoked when the provider reports the token's
	// lifetime is over. Any previously delivered token must be treated
	// as invalid from this point.
	OnExpire func()
}

// WidgetOptions configures one challenge widget instance.
type WidgetOptions struct {
	// SiteKey is the opaque site identifier issued by the provider.
	SiteKey string

	// Theme is the provider's visual theme selector.
	Theme string

	// Callbacks are the host hooks described above.
	Callbacks WidgetCallbacks
}

// ChallengeWidget is one rendered instance of the third-party
// verification widget.
type ChallengeWidget interface {
	// Mount renders the widget. The first mount in the process also
	// loads the provider's script exactly once; concurrent first mounts
	// share that load. Mounting an already-mounted widget is a no-op.
	//
	// If the provider script cannot be loaded the widget silently never
	// renders: Mount returns domain.ErrWidgetUnavailable, no token is
	// ever delivered, and the host's search action stays disabled. This
	// is an accepted degraded state, not a crash.
	Mount(ctx context.Context) error

	// Reset re-runs the challenge on the mounted instance, mirroring the
	// provider's reset API. Used after a held token was invalidated.
	// Returns domain.ErrWidgetClosed when the widget is not mounted.
	Reset(ctx context.Context) error

	// Unmount releases the widget instance and its script reference.
	// Never leaves an orphaned instance; safe to call when not mounted.
	Unmount()

	// Mounted reports whether a widget instance is currently active.
	Mounted() bool
}

// ChallengeWidgetFactory creates challenge widgets. One factory exists
// per run; each created widget is bound to its own container.
type ChallengeWidgetFactory interface {
	// NewWidget creates an unmounted widget from the given options.
	NewWidget(opts WidgetOptions) (ChallengeWidget, error)
}
