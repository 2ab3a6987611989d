// Package challenge adapts the third-party bot-verification widget. It
// loads the provider's script once per process, runs the challenge, and
// hands the resulting opaque token to the host through callbacks. The
// adapter never inspects token contents; validating them is the remote
// service's job.
package challenge

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
	"github.com/San-Shiro/studentsearch/internal/core/ports/driven"
	"github.com/San-Shiro/studentsearch/internal/logger"
)

// Provider defaults. The test site key is the provider's documented
// public key that always passes; it is the fallback when no real key is
// configured.
const (
	DefaultScriptURL    = "https://challenges.cloudflare.com/turnstile/v0/api.js"
	DefaultChallengeURL = "https://challenges.cloudflare.com/turnstile/v0/challenge"
	DefaultTestSiteKey  = "1x00000000000000000000AA"

	defaultPollInterval = 500 * time.Millisecond
)

// Config configures the provider endpoints shared by all widgets.
type Config struct {
	// ScriptURL is the fixed loader script location.
	ScriptURL string

	// ChallengeURL is the endpoint the widget polls for a token.
	ChallengeURL string

	// Timeout bounds provider requests. Zero means no timeout.
	Timeout time.Duration

	// PollInterval paces challenge polling.
	PollInterval time.Duration
}

// Factory creates challenge widgets.
type Factory struct {
	cfg Config
}

// Ensure Factory implements the interface.
var _ driven.ChallengeWidgetFactory = (*Factory)(nil)

// NewFactory creates a widget factory, filling unset config from the
// provider defaults.
func NewFactory(cfg Config) *Factory {
	if cfg.ScriptURL == "" {
		cfg.ScriptURL = DefaultScriptURL
	}
	if cfg.ChallengeURL == "" {
		cfg.ChallengeURL = DefaultChallengeURL
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	return &Factory{cfg: cfg}
}

// NewWidget creates an unmounted widget. The callbacks are stored here,
// once; nothing re-reads them, so their identities stay stable for the
// widget's whole lifetime.
func (f *Factory) NewWidget(opts driven.WidgetOptions) (driven.ChallengeWidget, error) {
	if opts.SiteKey == "" || opts.Callbacks.OnSuccess == nil {
		return nil, domain.ErrInvalidInput
	}
	return &Widget{
		cfg:     f.cfg,
		opts:    opts,
		limiter: rate.NewLimiter(rate.Every(f.cfg.PollInterval), 1),
	}, nil
}

// Widget is one rendered instance of the verification widget. At most
// one is active per adapter instance.
type Widget struct {
	cfg     Config
	opts    driven.WidgetOptions
	limiter *rate.Limiter

	mu      sync.Mutex
	mounted bool
	client  *resty.Client
	cancel  context.CancelFunc
	expiry  *time.Timer
}

// Ensure Widget implements the interface.
var _ driven.ChallengeWidget = (*Widget)(nil)

// Mount loads the provider script (shared, once per process) and starts
// the challenge. Mounting an already-mounted widget is a no-op.
//
// When the script cannot be loaded the widget stays unmounted and
// silently never renders: the host receives no token and its search
// action stays disabled. Degraded, not fatal.
func (w *Widget) Mount(ctx context.Context) error {
	// One critical section end to end, so concurrent Mounts cannot both
	// acquire the loader for the same widget.
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.mounted {
		return nil
	}

	client, err := loader.acquire(ctx, w.cfg.ScriptURL, w.cfg.Timeout)
	if err != nil {
		logger.Debug("Challenge widget not rendered: %v", err)
		return err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	w.mounted = true
	w.client = client
	w.cancel = cancel

	go w.run(runCtx)
	return nil
}

// Reset re-runs the challenge on the mounted instance, mirroring the
// provider's reset API.
func (w *Widget) Reset(ctx context.Context) error {
	w.mu.Lock()
	if !w.mounted {
		w.mu.Unlock()
		return domain.ErrWidgetClosed
	}
	if w.expiry != nil {
		w.expiry.Stop()
		w.expiry = nil
	}
	w.cancel()
	runCtx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.mu.Unlock()

	go w.run(runCtx)
	return nil
}

// Unmount releases the widget instance and its script reference. Safe
// to call when not mounted; never leaves an orphan.
func (w *Widget) Unmount() {
	w.mu.Lock()
	if !w.mounted {
		w.mu.Unlock()
		return
	}
	w.mounted = false
	w.cancel()
	if w.expiry != nil {
		w.expiry.Stop()
		w.expiry = nil
	}
	w.client = nil
	w.mu.Unlock()

	loader.release()
}

// Mounted reports whether a widget instance is currently active.
func (w *Widget) Mounted() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mounted
}

// challengeRequest is the body posted while polling for a token.
type challengeRequest struct {
	SiteKey string `json:"sitekey"`
	Theme   string `json:"theme,omitempty"`
}

// challengeResponse is the provider's answer. ExpiresIn is in seconds.
type challengeResponse struct {
	Status    string  `json:"status"`
	Token     string  `json:"token"`
	ExpiresIn float64 `json:"expires_in"`
}

// run polls the provider until the challenge resolves, pacing requests
// with the rate limiter. Every failure path just stops: the widget then
// silently never renders.
func (w *Widget) run(ctx context.Context) {
	for {
		if err := w.limiter.Wait(ctx); err != nil {
			return
		}

		w.mu.Lock()
		client := w.client
		w.mu.Unlock()
		if client == nil {
			return
		}

		res, err := client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(challengeRequest{SiteKey: w.opts.SiteKey, Theme: w.opts.Theme}).
			Post(w.cfg.ChallengeURL)
		if err != nil {
			logger.Debug("Challenge poll failed: %v", err)
			return
		}
		if !res.IsSuccess() {
			logger.Debug("Challenge poll answered status %d", res.StatusCode())
			return
		}

		var body challengeResponse
		if err := json.Unmarshal(res.Body(), &body); err != nil {
			logger.Debug("Challenge poll returned malformed body: %v", err)
			return
		}
		if body.Status == "pending" {
			continue
		}

		w.deliver(ctx, body)
		return
	}
}

// deliver hands the token to the host and schedules the expiry
// callback from the provider-reported lifetime.
func (w *Widget) deliver(ctx context.Context, body challengeResponse) {
	w.mu.Lock()
	if !w.mounted || ctx.Err() != nil {
		w.mu.Unlock()
		return
	}
	if body.ExpiresIn > 0 {
		ttl := time.Duration(body.ExpiresIn * float64(time.Second))
		w.expiry = time.AfterFunc(ttl, w.expire)
	}
	w.mu.Unlock()

	w.opts.Callbacks.OnSuccess(body.Token)
}

func (w *Widget) expire() {
	w.mu.Lock()
	mounted := w.mounted
	w.expiry = nil
	w.mu.Unlock()

	if mounted && w.opts.Callbacks.OnExpire != nil {
		w.opts.Callbacks.OnExpire()
	}
}
