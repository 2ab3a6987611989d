// Package session implements the session gateway over HTTP. All calls
// ride on the transport's cookie jar; the package never sees or stores
// a token.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
	"github.com/San-Shiro/studentsearch/internal/core/ports/driven"
	"github.com/San-Shiro/studentsearch/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.SessionGateway = (*Client)(nil)

// Options configures the session client.
type Options struct {
	// BaseURL is the service endpoint; the same one the search uses.
	BaseURL string

	// Jar carries the session cookie. Share it with the directory
	// client so search requests send the same ambient credentials.
	Jar http.CookieJar

	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration
}

// Client talks to the remote service's session endpoints.
type Client struct {
	http *resty.Client
}

// NewClient creates a session client.
func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, domain.ErrInvalidInput
	}

	jar := opts.Jar
	if jar == nil {
		var err error
		jar, err = cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseURL)
	client.SetCookieJar(jar)
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	return &Client{http: client}, nil
}

// Probe asks whether a valid session cookie exists.
func (c *Client) Probe(ctx context.Context) (bool, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("check_auth", "true").
		Get("")
	if err != nil {
		return false, err
	}
	return res.IsSuccess(), nil
}

// actionRequest is the structured body for session mutations.
type actionRequest struct {
	Action   string `json:"action"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// serviceError is the optional error shape in rejection bodies.
type serviceError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Login submits credentials with the login action marker.
func (c *Client) Login(ctx context.Context, username, password string) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(actionRequest{Action: "login", Username: username, Password: password}).
		Post("")
	if err != nil {
		return err
	}

	if res.IsSuccess() {
		return nil
	}

	// Prefer the service-provided message; fall back to the sentinel.
	var body serviceError
	if err := json.Unmarshal(res.Body(), &body); err == nil {
		msg := body.Error
		if msg == "" {
			msg = body.Message
		}
		if msg != "" {
			return fmt.Errorf("%w: %s", domain.ErrLoginFailed, msg)
		}
	}
	return domain.ErrLoginFailed
}

// Logout submits the logout action marker. Callers reset local state no
// matter what comes back.
func (c *Client) Logout(ctx context.Context) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(actionRequest{Action: "logout"}).
		Post("")
	if err != nil {
		return err
	}
	if !res.IsSuccess() {
		logger.Debug("Logout answered status %d", res.StatusCode())
		return &domain.StatusError{Code: res.StatusCode()}
	}
	return nil
}
