// Package directory implements the remote directory gateway over HTTP.
// It issues the single search GET and parses the XML payload into
// records.
package directory

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/San-Shiro/studentsearch/internal/core/domain"
	"github.com/San-Shiro/studentsearch/internal/core/ports/driven"
	"github.com/San-Shiro/studentsearch/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.DirectoryGateway = (*Client)(nil)

// TokenHeader carries the verification token on gated requests.
const TokenHeader = "x-turnstile-token"

// matchTag is the element name the service uses for one match.
const matchTag = "employee"

// Options configures the directory client.
type Options struct {
	// BaseURL is the full search endpoint.
	BaseURL string

	// Jar carries ambient session credentials. Share it with the
	// session client in the session-gated build; pass nil otherwise and
	// a fresh jar is created.
	Jar http.CookieJar

	// Timeout bounds each request. Zero means no timeout, matching the
	// original front end's behaviour of waiting indefinitely.
	Timeout time.Duration
}

// Client talks to the remote directory service.
type Client struct {
	http *resty.Client
}

// NewClient creates a directory client.
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

// Search performs exactly one GET with the query as the id parameter.
func (c *Client) Search(ctx context.Context, query, token string) ([]domain.Record, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("id", query)
	if token != "" {
		req.SetHeader(TokenHeader, token)
	}

	res, err := req.Get("")
	if err != nil {
		return nil, err
	}

	code := res.StatusCode()
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		// The body is not parsed on a security rejection.
		return nil, domain.ErrAuthRejected
	case !res.IsSuccess():
		return nil, &domain.StatusError{Code: code}
	}

	records, err := parseRecords(res.Body())
	if err != nil {
		return nil, err
	}

	logger.Debug("Directory search %q: %d record(s)", query, len(records))
	return records, nil
}

// employeeXML mirrors one match element in the service response.
type employeeXML struct {
	FirstName string `xml:"first-name"`
	Roll      string `xml:"rollno"`
	Hometown  string `xml:"home-town"`
}

// parseRecords walks the document and collects every match element in
// document order, wherever it sits in the tree. Missing or empty child
// elements fall back to the field placeholder.
func parseRecords(body []byte) ([]domain.Record, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))

	records := []domain.Record{}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != matchTag {
			continue
		}

		var e employeeXML
		if err := dec.DecodeElement(&e, &start); err != nil {
			return nil, err
		}

		records = append(records, domain.Record{
			Name:     strings.TrimSpace(e.FirstName),
			Roll:     strings.TrimSpace(e.Roll),
			Hometown: strings.TrimSpace(e.Hometown),
		}.Normalise())
	}

	return records, nil
}
