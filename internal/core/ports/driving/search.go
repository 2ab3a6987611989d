package driving

import (
	"context"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
)

// SearchPipeline drives the request/verification/render cycle. It owns
// all mutable query state; callers read snapshots.
type SearchPipeline interface {
	// Submit runs one search attempt to completion and returns the
	// settled state. An empty or whitespace-only query is a no-op and
	// changes nothing. Submitting with an unsatisfied gate sets the
	// fixed verification-required error without touching the network.
	Submit(ctx context.Context, query string) domain.QueryState

	// State returns a snapshot of the current query state.
	State() domain.QueryState

	// ClearError empties the error slot. Called whenever a token or
	// credential is newly accepted.
	ClearError()

	// Reset returns the pipeline to idle, clearing results and error.
	// Used by the session gate on logout.
	Reset()
}

// HistoryService exposes the local search history.
type HistoryService interface {
	// Recent returns the most recent settled attempts, newest first.
	Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear removes all recorded attempts.
	Clear(ctx context.Context) error
}
