package driven

import (
	"context"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
)

// DirectoryGateway issues search requests against the remote directory
// service and parses the XML response into records.
type DirectoryGateway interface {
	// Search performs exactly one GET with the query URL-encoded as the
	// id parameter. A non-empty token is attached as the verification
	// header; session credentials, when present, ride on the transport's
	// cookie jar instead.
	//
	// Error contract:
	//   - domain.ErrAuthRejected for a 401 or 403 (body not parsed)
	//   - *domain.StatusError for any other non-success status
	//   - any transport or XML parse error verbatim
	//
	// A success with zero matches returns an empty, non-nil slice.
	Search(ctx context.Context, query, token string) ([]domain.Record, error)
}
