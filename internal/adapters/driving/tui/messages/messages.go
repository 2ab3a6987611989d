// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/San-Shiro/studentsearch/internal/core/domain"
)

// SearchCompleted carries the settled pipeline state back to the model.
// Seq identifies the submit that produced it; completions from a
// superseded submit are dropped.
type SearchCompleted struct {
	Seq   int
	State domain.QueryState
}

// VerificationCompleted signals the challenge widget delivered a token.
type VerificationCompleted struct{}

// VerificationFailed signals the challenge provider could not be loaded
// or did not complete.
type VerificationFailed struct {
	Err error
}

// SessionChecked carries the result of the startup session probe.
type SessionChecked struct {
	State domain.SessionState
}

// LoginCompleted signals a login attempt finished.
type LoginCompleted struct {
	Err error
}

// LoggedOut signals the session was ended locally.
type LoggedOut struct{}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSearch is the query input and results view.
	ViewSearch ViewType = iota
	// ViewLogin is the username/password form shown by the session gate.
	ViewLogin
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewLogin:
		return "login"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
