package challenge

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
	"github.com/San-Shiro/studentsearch/internal/logger"
)

// scriptLoader is the process-wide analogue of the provider's loader
// script: the first mount in the process fetches it exactly once, later
// mounts share the result, and teardown happens only when the last
// widget releases its reference.
type scriptLoader struct {
	mu     sync.Mutex
	refs   int
	client *resty.Client
}

// loader is shared by every widget in the process.
var loader scriptLoader

// acquire fetches the loader script on first use and returns the shared
// provider client. Holding the lock across the fetch serialises
// concurrent first mounts, so the script is inserted at most once. A
// failed fetch leaves the loader unacquired; the next mount retries.
func (l *scriptLoader) acquire(ctx context.Context, scriptURL string, timeout time.Duration) (*resty.Client, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.refs > 0 {
		l.refs++
		return l.client, nil
	}

	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	res, err := client.R().SetContext(ctx).Get(scriptURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWidgetUnavailable, err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("%w: loader answered status %d", domain.ErrWidgetUnavailable, res.StatusCode())
	}

	logger.Debug("Challenge provider script loaded from %s", scriptURL)
	l.client = client
	l.refs = 1
	return client, nil
}

// release drops one reference; the shared client is torn down on the
// last release.
func (l *scriptLoader) release() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.refs == 0 {
		return
	}
	l.refs--
	if l.refs == 0 {
		l.client = nil
		logger.Debug("Challenge provider script released")
	}
}
