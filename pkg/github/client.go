// Package github is a minimal client for the GitHub REST API, covering the
// read-only endpoints profilegen renders from: user profiles, repository
// listings, per-repository language breakdowns, public events, starred
// repositories, the issue/PR search, social accounts, and verified emails.
//
// The client performs single best-effort requests with a fixed timeout.
// Whether a failed call aborts the run or degrades a section is decided at
// the call site, not here.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dacrab/profilegen/pkg/buildinfo"
	pgerrors "github.com/dacrab/profilegen/pkg/errors"
)

const (
	defaultBaseURL = "https://api.github.com"
	httpTimeout    = 10 * time.Second

	acceptHeader = "application/vnd.github+json"
)

var (
	// ErrNotFound is returned when the requested resource doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (connection errors, 5xx
	// responses, undecodable bodies). Timed-out requests carry the
	// TIMEOUT error code instead.
	ErrNetwork = errors.New("network error")
)

// Client provides access to the GitHub REST API.
type Client struct {
	http    *http.Client
	baseURL string
	headers map[string]string
}

// New creates a GitHub API client. Pass an empty token for unauthenticated
// requests (lower rate limits; the email endpoint then returns nothing).
func New(token string) *Client {
	return NewWithBaseURL(token, defaultBaseURL)
}

// NewWithBaseURL creates a client against a non-default API host.
// Used by tests and GitHub Enterprise setups.
func NewWithBaseURL(token, baseURL string) *Client {
	headers := map[string]string{
		"Accept":     acceptHeader,
		"User-Agent": buildinfo.UserAgent(),
	}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	return &Client{
		http:    &http.Client{Timeout: httpTimeout},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		headers: headers,
	}
}

// Get performs an HTTP GET for path and JSON-decodes the response into v.
// A relative path is joined to the client's base URL; absolute URLs are
// requested as-is (the search API returns absolute repository URLs that are
// occasionally re-fetched).
func (c *Client) Get(ctx context.Context, path string, v any) error {
	body, err := c.doRequest(ctx, c.resolve(path))
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrNetwork, err)
	}
	return nil
}

func (c *Client) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func (c *Client) doRequest(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return nil, pgerrors.Wrap(pgerrors.ErrCodeTimeout, err, "request to %s timed out", url)
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return pgerrors.New(pgerrors.ErrCodeUnauthorized, "credential rejected by the API")
	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return &pgerrors.RateLimitedError{RetryAfter: retryAfter}
	case resp.StatusCode == http.StatusForbidden:
		// GitHub signals primary rate limiting with 403 plus rate-limit
		// headers; a bare 403 is a permissions problem.
		if resp.Header.Get("Retry-After") != "" || resp.Header.Get("X-RateLimit-Remaining") == "0" {
			retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
			return &pgerrors.RateLimitedError{RetryAfter: retryAfter}
		}
		return pgerrors.New(pgerrors.ErrCodeForbidden, "access forbidden by the API")
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	}
}
