package domain

// SessionState is the observable state of the session gate.
type SessionState struct {
	// Authenticated is true when ambient credentials are believed valid.
	Authenticated bool

	// Checking is true only while the initial session probe is in
	// flight. It flips to false once the probe resolves either way.
	Checking bool
}
