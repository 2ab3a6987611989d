// Package tui provides an interactive terminal user interface for studentsearch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/San-Shiro/studentsearch/internal/core/domain"
	"github.com/San-Shiro/studentsearch/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search drives the query/response pipeline.
	Search driving.SearchPipeline

	// Session is the session gate, set only for GateModeSession builds.
	Session driving.SessionService

	// Verify is the bot-verification gate, set only for GateModeToken builds.
	Verify driving.VerifyService

	// History exposes the local search history.
	History driving.HistoryService

	// GateMode selects which gate the UI presents. Exactly one of
	// Session or Verify must be set for the gated modes.
	GateMode domain.GateMode
}

// Validate ensures the ports required by the configured gate mode are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchPipeline
	}
	switch p.GateMode {
	case domain.GateModeSession:
		if p.Session == nil {
			return ErrMissingSessionService
		}
	case domain.GateModeToken:
		if p.Verify == nil {
			return ErrMissingVerifyService
		}
	case domain.GateModeNone:
		// No gate, nothing else required.
	}
	return nil
}
