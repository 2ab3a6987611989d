package tui

import (
	"context"
	"sync"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
)

// mockSearchPipeline is a test double for driving.SearchPipeline.
type mockSearchPipeline struct {
	mu      sync.Mutex
	state   domain.QueryState
	result  domain.QueryState
	submits []string
	cleared int
	resets  int
}

func (m *mockSearchPipeline) Submit(_ context.Context, query string) domain.QueryState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submits = append(m.submits, query)
	m.state = m.result
	return m.result
}

func (m *mockSearchPipeline) State() domain.QueryState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *mockSearchPipeline) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cleared++
	m.state.Err = ""
}

func (m *mockSearchPipeline) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets++
	m.state = domain.QueryState{State: domain.StateIdle}
}

func (m *mockSearchPipeline) clearCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cleared
}

func (m *mockSearchPipeline) resetCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resets
}

// mockSessionService is a test double for driving.SessionService.
type mockSessionService struct {
	mu       sync.Mutex
	state    domain.SessionState
	loginErr error
	logouts  int
}

func (m *mockSessionService) Check(_ context.Context) domain.SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *mockSessionService) Login(_ context.Context, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loginErr != nil {
		return m.loginErr
	}
	m.state.Authenticated = true
	return nil
}

func (m *mockSessionService) Logout(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logouts++
	m.state.Authenticated = false
}

func (m *mockSessionService) State() domain.SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// mockVerifyService is a test double for driving.VerifyService.
type mockVerifyService struct {
	mu        sync.Mutex
	beginErr  error
	awaitErr  error
	satisfied bool
	closed    int
}

func (m *mockVerifyService) Begin(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.beginErr
}

func (m *mockVerifyService) AwaitToken(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.awaitErr != nil {
		return m.awaitErr
	}
	m.satisfied = true
	return nil
}

func (m *mockVerifyService) Satisfied() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.satisfied
}

func (m *mockVerifyService) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.satisfied = false
}

func (m *mockVerifyService) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed++
}

// mockHistoryService is a test double for driving.HistoryService.
type mockHistoryService struct {
	mu      sync.Mutex
	entries []domain.HistoryEntry
}

func (m *mockHistoryService) Recent(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 || limit > len(m.entries) {
		limit = len(m.entries)
	}
	return append([]domain.HistoryEntry(nil), m.entries[:limit]...), nil
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}
