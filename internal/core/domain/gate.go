package domain

// GateMode selects the gating strategy that must hold before a search
// request may be issued. Exactly one mode is active per run; it is
// resolved once at startup and never changes afterwards.
type GateMode string

// Available gate modes.
const (
	// GateModeNone disables gating entirely (guest mode).
	GateModeNone GateMode = "none"

	// GateModeToken requires a one-time verification token obtained from
	// the challenge widget, sent as a request header.
	GateModeToken GateMode = "token"

	// GateModeSession requires an authenticated session; credentials are
	// ambient (cookie jar), no header is attached.
	GateModeSession GateMode = "session"
)

// IsValid returns true if the gate mode is recognised.
func (m GateMode) IsValid() bool {
	switch m {
	case GateModeNone, GateModeToken, GateModeSession:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m GateMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m GateMode) Description() string {
	switch m {
	case GateModeNone:
		return "Open (no gate)"
	case GateModeToken:
		return "Bot verification (challenge token)"
	case GateModeSession:
		return "Login session"
	default:
		return "Unknown"
	}
}
