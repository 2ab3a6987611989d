package services

import (
	"context"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
	"github.com/San-Shiro/studentsearch/internal/core/ports/driven"
	"github.com/San-Shiro/studentsearch/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// defaultHistoryLimit caps Recent when the caller passes no limit.
const defaultHistoryLimit = 20

// HistoryService exposes the local search history to the UI layers.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a history service over the given store.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Recent returns the most recent settled attempts, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.store.Recent(ctx, limit)
}

// Clear removes all recorded attempts.
func (s *HistoryService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
