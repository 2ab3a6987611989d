package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrGateUnsatisfied indicates a search was submitted before the
	// active gate (token or session) was satisfied.
	ErrGateUnsatisfied = errors.New("gate unsatisfied")

	// ErrAuthRejected indicates the remote service answered 401 or 403.
	// Any held token or session must be treated as invalid.
	ErrAuthRejected = errors.New("authentication rejected")

	// ErrLoginFailed indicates the service rejected login credentials.
	ErrLoginFailed = errors.New("login failed")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrWidgetUnavailable indicates the challenge provider could not be
	// reached or never became ready. The widget silently never renders;
	// this is a degraded state, not a crash.
	ErrWidgetUnavailable = errors.New("challenge widget unavailable")

	// ErrWidgetClosed indicates the widget was unmounted.
	ErrWidgetClosed = errors.New("challenge widget closed")
)

// StatusError reports a non-success HTTP status that is neither 401 nor
// 403. The numeric code is part of the user-visible message.
type StatusError struct {
	Code int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d", e.Code)
}
