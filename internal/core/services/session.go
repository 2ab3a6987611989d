package services

import (
	"context"
	"sync"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
	"github.com/San-Shiro/studentsearch/internal/core/ports/driven"
	"github.com/San-Shiro/studentsearch/internal/core/ports/driving"
	"github.com/San-Shiro/studentsearch/internal/logger"
)

// Ensure SessionService implements both sides of the gate.
var (
	_ driving.SessionService = (*SessionService)(nil)
	_ driven.Gate            = (*SessionService)(nil)
)

// SessionService is the session gate in front of the search screen.
// Credentials are ambient: the transport's cookie jar carries them, so
// the gate holds only booleans, never a secret.
//
// guest mode is a startup-time constant. When set the gate is bypassed
// and the service reports an always-authenticated pseudo-state.
type SessionService struct {
	gateway driven.SessionGateway
	guest   bool

	// onReset clears the host's query/result state on logout. May be nil.
	onReset func()

	// onAccept is invoked when credentials are newly accepted. May be nil.
	onAccept func()

	mu    sync.Mutex
	state domain.SessionState
}

// NewSessionService creates the session gate. onReset and onAccept may
// be nil.
func NewSessionService(
	gateway driven.SessionGateway,
	guest bool,
	onReset, onAccept func(),
) *SessionService {
	return &SessionService{
		gateway:  gateway,
		guest:    guest,
		onReset:  onReset,
		onAccept: onAccept,
		state:    domain.SessionState{Authenticated: guest},
	}
}

// Check runs the one-time startup probe. Every probe failure, network
// failure included, reads as "not logged in"; nothing is surfaced.
func (s *SessionService) Check(ctx context.Context) domain.SessionState {
	if s.guest {
		return s.State()
	}

	s.mu.Lock()
	s.state.Checking = true
	s.mu.Unlock()

	ok, err := s.gateway.Probe(ctx)
	if err != nil {
		logger.Debug("Session probe failed: %v", err)
		ok = false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Checking = false
	s.state.Authenticated = ok
	return s.state
}

// Login exchanges credentials for a session cookie.
func (s *SessionService) Login(ctx context.Context, username, password string) error {
	err := s.gateway.Login(ctx, username, password)
	if err != nil {
		logger.Debug("Login rejected: %v", err)
		return err
	}

	s.mu.Lock()
	s.state.Authenticated = true
	s.mu.Unlock()

	logger.Info("Session established for %q", username)
	if s.onAccept != nil {
		s.onAccept()
	}
	return nil
}

// Logout posts the logout action and always resets local state,
// regardless of the remote outcome.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.gateway.Logout(ctx); err != nil {
		logger.Debug("Logout request failed: %v", err)
	}

	s.mu.Lock()
	s.state.Authenticated = s.guest
	s.mu.Unlock()

	if s.onReset != nil {
		s.onReset()
	}
}

// State returns a snapshot of the current session state.
func (s *SessionService) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Satisfied returns true when the session gate holds.
func (s *SessionService) Satisfied() bool {
	if s.guest {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Authenticated
}

// Token returns an empty string; session credentials are ambient.
func (s *SessionService) Token() string {
	return ""
}

// Invalidate drops the session flag after a 401/403 so the gate reverts
// to the login form. A guest-mode gate has nothing to drop.
func (s *SessionService) Invalidate() {
	if s.guest {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Authenticated = false
}
