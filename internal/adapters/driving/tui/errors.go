package tui

import "errors"

// Errors returned when required ports are missing.
var (
	// ErrMissingSearchPipeline indicates the search pipeline port is not set.
	ErrMissingSearchPipeline = errors.New("search pipeline is required")

	// ErrMissingSessionService indicates the session gate port is not set.
	ErrMissingSessionService = errors.New("session service is required for the session gate")

	// ErrMissingVerifyService indicates the verification gate port is not set.
	ErrMissingVerifyService = errors.New("verify service is required for the token gate")
)
