package cli

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
)

// mockPipeline is a test double for driving.SearchPipeline.
type mockPipeline struct {
	mu      sync.Mutex
	state   domain.QueryState
	result  domain.QueryState
	submits []string
}

func (m *mockPipeline) Submit(_ context.Context, query string) domain.QueryState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submits = append(m.submits, query)
	m.state = m.result
	return m.result
}

func (m *mockPipeline) State() domain.QueryState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *mockPipeline) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Err = ""
}

func (m *mockPipeline) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = domain.QueryState{State: domain.StateIdle}
}

// mockSession is a test double for driving.SessionService.
type mockSession struct {
	mu       sync.Mutex
	state    domain.SessionState
	loginErr error
	logins   [][2]string
	logouts  int
}

func (m *mockSession) Check(_ context.Context) domain.SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *mockSession) Login(_ context.Context, username, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logins = append(m.logins, [2]string{username, password})
	if m.loginErr != nil {
		return m.loginErr
	}
	m.state.Authenticated = true
	return nil
}

func (m *mockSession) Logout(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logouts++
	m.state.Authenticated = false
}

func (m *mockSession) State() domain.SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// mockVerify is a test double for driving.VerifyService.
type mockVerify struct {
	mu        sync.Mutex
	beginErr  error
	awaitErr  error
	satisfied bool
	begins    int
}

func (m *mockVerify) Begin(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.begins++
	return m.beginErr
}

func (m *mockVerify) AwaitToken(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.awaitErr != nil {
		return m.awaitErr
	}
	m.satisfied = true
	return nil
}

func (m *mockVerify) Satisfied() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.satisfied
}

func (m *mockVerify) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.satisfied = false
}

func (m *mockVerify) Close() {}

// mockHistory is a test double for driving.HistoryService.
type mockHistory struct {
	mu      sync.Mutex
	entries []domain.HistoryEntry
	cleared int
}

func (m *mockHistory) Recent(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 || limit > len(m.entries) {
		limit = len(m.entries)
	}
	return append([]domain.HistoryEntry(nil), m.entries[:limit]...), nil
}

func (m *mockHistory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cleared++
	m.entries = nil
	return nil
}

// testServices bundles the mocks injected by setupTestServices.
type testServices struct {
	pipeline *mockPipeline
	session  *mockSession
	verify   *mockVerify
	history  *mockHistory
}

// setupTestServices wires mock services into the command tree and
// returns them with a cleanup restoring the previous state.
func setupTestServices(t *testing.T, mode domain.GateMode) *testServices {
	t.Helper()

	s := &testServices{
		pipeline: &mockPipeline{result: domain.QueryState{
			State:     domain.StateSuccess,
			Attempted: true,
		}},
		session: &mockSession{},
		verify:  &mockVerify{},
		history: &mockHistory{},
	}

	searchPipeline = s.pipeline
	sessionService = s.session
	verifyService = s.verify
	historyService = s.history
	gateMode = mode

	t.Cleanup(func() {
		searchPipeline = nil
		sessionService = nil
		verifyService = nil
		historyService = nil
		gateMode = domain.GateModeNone
		rootCmd.SetArgs(nil)
	})

	return s
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "studentsearch", rootCmd.Use)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	assert.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"search", "login", "logout", "status", "history", "version", "tui"} {
		assert.Truef(t, names[want], "expected %q subcommand", want)
	}
}

func TestSetRootConfig(t *testing.T) {
	pipeline := &mockPipeline{}
	t.Cleanup(func() {
		searchPipeline = nil
		gateMode = domain.GateModeNone
		version = "dev"
	})

	SetRootConfig(&RootConfig{
		SearchPipeline: pipeline,
		GateMode:       domain.GateModeToken,
		Version:        "1.2.3",
	})

	assert.Equal(t, pipeline, searchPipeline)
	assert.Equal(t, domain.GateModeToken, gateMode)
	assert.Equal(t, "1.2.3", version)
}

func TestSetRootConfig_NilIsIgnored(t *testing.T) {
	SetRootConfig(nil)
	assert.Nil(t, searchPipeline)
}

func TestContextWithTimeout(t *testing.T) {
	ctx, cancel := contextWithTimeout(rootCmd, time.Minute)
	defer cancel()

	deadline, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestContextWithTimeout_ZeroMeansNoDeadline(t *testing.T) {
	ctx, cancel := contextWithTimeout(rootCmd, 0)
	defer cancel()

	_, ok := ctx.Deadline()
	assert.False(t, ok)
}
