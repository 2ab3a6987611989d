package services

import (
	"context"
	"sync"

	"github.com/San-Shiro/studentsearch/internal/core/ports/driven"
	"github.com/San-Shiro/studentsearch/internal/core/ports/driving"
	"github.com/San-Shiro/studentsearch/internal/logger"
)

// Ensure VerifyService implements both sides of the gate.
var (
	_ driving.VerifyService = (*VerifyService)(nil)
	_ driven.Gate           = (*VerifyService)(nil)
)

// VerifyService owns the bot-verification gate. It mounts at most one
// challenge widget, holds at most one valid token at a time, and clears
// it on the provider's expiry callback or on a 401/403.
//
// The widget callbacks are bound once at creation and keep stable
// identities for the whole widget lifetime.
type VerifyService struct {
	factory driven.ChallengeWidgetFactory
	siteKey string
	theme   string

	// onAccept is invoked each time a token is newly accepted, so the
	// host can clear a stale error slot. May be nil.
	onAccept func()

	mu     sync.Mutex
	widget driven.ChallengeWidget
	token  string
	ready  chan struct{} // closed once a token is held; remade on clear
}

// NewVerifyService creates the verification gate. onAccept may be nil.
func NewVerifyService(
	factory driven.ChallengeWidgetFactory,
	siteKey, theme string,
	onAccept func(),
) *VerifyService {
	return &VerifyService{
		factory:  factory,
		siteKey:  siteKey,
		theme:    theme,
		onAccept: onAccept,
		ready:    make(chan struct{}),
	}
}

// Begin mounts the widget, creating it on first use. When a widget is
// already mounted but its token was invalidated, the challenge is re-run
// on the existing instance.
func (s *VerifyService) Begin(ctx context.Context) error {
	s.mu.Lock()
	widget := s.widget
	satisfied := s.token != ""
	s.mu.Unlock()

	if widget != nil && widget.Mounted() {
		if satisfied {
			return nil
		}
		return widget.Reset(ctx)
	}

	if widget == nil {
		created, err := s.factory.NewWidget(driven.WidgetOptions{
			SiteKey: s.siteKey,
			Theme:   s.theme,
			Callbacks: driven.WidgetCallbacks{
				OnSuccess: s.accept,
				OnExpire:  s.expire,
			},
		})
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.widget = created
		widget = created
		s.mu.Unlock()
	}

	return widget.Mount(ctx)
}

// AwaitToken blocks until a token is held or ctx is done.
func (s *VerifyService) AwaitToken(ctx context.Context) error {
	s.mu.Lock()
	if s.token != "" {
		s.mu.Unlock()
		return nil
	}
	ready := s.ready
	s.mu.Unlock()

	select {
	case <-ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Satisfied reports whether a valid token is currently held.
func (s *VerifyService) Satisfied() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// Token returns the held token, empty when none.
func (s *VerifyService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Invalidate discards the held token, forcing re-verification.
func (s *VerifyService) Invalidate() {
	s.clear()
	logger.Debug("Verification token invalidated")
}

// Close unmounts the widget and releases its provider reference.
func (s *VerifyService) Close() {
	s.mu.Lock()
	widget := s.widget
	s.widget = nil
	s.mu.Unlock()

	if widget != nil {
		widget.Unmount()
	}
	s.clear()
}

// accept is the widget's OnSuccess callback. The token contents are not
// inspected; validation is the remote service's job.
func (s *VerifyService) accept(token string) {
	s.mu.Lock()
	held := s.token != ""
	s.token = token
	if !held {
		close(s.ready)
	}
	s.mu.Unlock()

	logger.Debug("Verification token accepted")
	if s.onAccept != nil {
		s.onAccept()
	}
}

// expire is the widget's OnExpire callback.
func (s *VerifyService) expire() {
	s.clear()
	logger.Debug("Verification token expired")
}

func (s *VerifyService) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return
	}
	s.token = ""
	s.ready = make(chan struct{})
}
