package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
	"github.com/San-Shiro/studentsearch/internal/core/ports/driven"
	"github.com/San-Shiro/studentsearch/internal/core/ports/driving"
	"github.com/San-Shiro/studentsearch/internal/logger"
)

// Ensure SearchController implements the interface.
var _ driving.SearchPipeline = (*SearchController)(nil)

// SearchController owns all mutable query state and drives the
// request/response/parse cycle. It does not enforce deduplication of
// overlapping submits; the UI disables its submit affordance while a
// request is in flight, and a late-settling attempt overwrites state
// with its own outcome.
type SearchController struct {
	gateway driven.DirectoryGateway
	gate    driven.Gate
	history driven.HistoryStore

	// authMsg is the fixed message for 401/403 outcomes. It differs
	// between the token and session gates.
	authMsg string

	mu    sync.Mutex
	state domain.QueryState
}

// NewSearchController creates the pipeline controller. The history store
// is optional; pass nil to skip recording attempts.
func NewSearchController(
	gateway driven.DirectoryGateway,
	gate driven.Gate,
	mode domain.GateMode,
	history driven.HistoryStore,
) *SearchController {
	authMsg := domain.MsgSecurityRejected
	if mode == domain.GateModeSession {
		authMsg = domain.MsgSessionRejected
	}

	return &SearchController{
		gateway: gateway,
		gate:    gate,
		history: history,
		authMsg: authMsg,
		state: domain.QueryState{
			State:   restState(gate),
			Results: []domain.Record{},
		},
	}
}

// restState is the pipeline's state when no attempt is underway: idle
// once the gate admits searches, awaiting verification before then.
func restState(gate driven.Gate) domain.PipelineState {
	if gate.Satisfied() {
		return domain.StateIdle
	}
	return domain.StateAwaitingVerification
}

// Submit runs one search attempt to completion and returns the settled
// state.
func (s *SearchController) Submit(ctx context.Context, query string) domain.QueryState {
	if strings.TrimSpace(query) == "" {
		logger.Debug("Ignoring empty query")
		return s.State()
	}

	if !s.gate.Satisfied() {
		logger.Debug("Gate unsatisfied, refusing to search")
		s.mu.Lock()
		defer s.mu.Unlock()
		s.state.State = domain.StateFailed
		s.state.Err = domain.MsgVerificationRequired
		return s.state
	}

	logger.Section("Search Attempt")
	logger.Debug("Query: %q", query)

	s.mu.Lock()
	s.state.State = domain.StateLoading
	s.state.Text = query
	s.state.Loading = true
	s.state.Err = ""
	s.state.Results = []domain.Record{}
	s.state.Attempted = true
	token := s.gate.Token()
	s.mu.Unlock()

	records, err := s.gateway.Search(ctx, query, token)

	s.mu.Lock()
	defer s.mu.Unlock()

	// The loading flag comes down on every settle path, including the
	// error paths below.
	s.state.Loading = false

	switch {
	case err == nil:
		if records == nil {
			records = []domain.Record{}
		}
		s.state.State = domain.StateSuccess
		s.state.Results = records
		logger.Info("Search settled: %d record(s)", len(records))

	case errors.Is(err, domain.ErrAuthRejected):
		s.gate.Invalidate()
		s.state.State = domain.StateFailed
		s.state.Err = s.authMsg
		logger.Warn("Search rejected by service: %v", err)

	default:
		s.state.State = domain.StateFailed
		s.state.Err = failureMessage(err)
		logger.Warn("Search failed: %v", err)
	}

	s.record(ctx, s.state)
	return s.state
}

// State returns a snapshot of the current query state.
func (s *SearchController) State() domain.QueryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ClearError empties the error slot. The gate callbacks invoke it on
// acceptance, which also moves a pipeline still awaiting verification
// to idle.
func (s *SearchController) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Err = ""
	if s.state.State == domain.StateAwaitingVerification && s.gate.Satisfied() {
		s.state.State = domain.StateIdle
	}
}

// Reset clears results and error and returns the pipeline to its rest
// state. After a logout that is awaiting verification, not idle.
func (s *SearchController) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.QueryState{
		State:   restState(s.gate),
		Results: []domain.Record{},
	}
}

// record appends the settled attempt to the history store. Storage
// failures are logged and swallowed; history is best-effort.
func (s *SearchController) record(ctx context.Context, settled domain.QueryState) {
	if s.history == nil {
		return
	}

	entry := domain.HistoryEntry{
		ID:          uuid.New().String(),
		Query:       settled.Text,
		Outcome:     settled.State,
		ResultCount: len(settled.Results),
		Err:         settled.Err,
		CreatedAt:   time.Now(),
	}
	if err := s.history.Append(ctx, entry); err != nil {
		logger.Warn("Failed to record history entry: %v", err)
	}
}

// failureMessage maps a settled error to the single user-visible error
// slot.
func failureMessage(err error) string {
	var statusErr *domain.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return domain.MsgGenericFailure
}
