package driven

// Gate is the precondition that must hold before a search request may be
// issued. The token gate, the session gate and the open (no-op) gate all
// implement it; exactly one is wired per run.
type Gate interface {
	// Satisfied returns true when a search may be issued right now.
	Satisfied() bool

	// Token returns the verification token to attach as a request
	// header. Empty when credentials are ambient (session gate) or no
	// gating is configured.
	Token() string

	// Invalidate discards any held proof. Called after a 401/403 so the
	// next submit requires re-verification or re-login.
	Invalidate()
}
