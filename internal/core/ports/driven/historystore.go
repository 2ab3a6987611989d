package driven

import (
	"context"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
)

// HistoryStore persists settled search attempts locally.
type HistoryStore interface {
	// Append records one settled attempt.
	Append(ctx context.Context, entry domain.HistoryEntry) error

	// Recent returns the most recent entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Close releases the underlying storage.
	Close() error
}
