// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv is a client for the arXiv Atom API: search, fetch by
// identifier, and PDF download.
package arxiv

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/pdiddy/paper-hub/internal/apierr"
	"github.com/pdiddy/paper-hub/internal/download"
	"github.com/pdiddy/paper-hub/internal/httputil"
	"github.com/pdiddy/paper-hub/internal/query"
	"github.com/pdiddy/paper-hub/pkg/types"
)

// apiBase is the arXiv query endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://export.arxiv.org/api/query"

// maxResultsCap is the per-request slice limit; larger sets must be
// paged by the caller.
const maxResultsCap = 2000

const (
	defaultSearchTimeout   = 10 * time.Second
	defaultDownloadTimeout = 60 * time.Second
	defaultMinInterval     = 3 * time.Second
)

// idPattern validates arXiv identifiers, with an optional "arXiv:"
// prefix and version suffix.
var idPattern = regexp.MustCompile(`^(?:arXiv:)?\d{4}\.\d{4,5}(?:v\d+)?$`)

// Client talks to the arXiv API. Each instance owns its own request
// spacing state; one Client must not be copied after first use.
type Client struct {
	// Warn receives non-fatal warnings (e.g. a failed sidecar write).
	Warn io.Writer

	httpClient *http.Client
	cfg        types.ClientConfig
	throttle   *httputil.Throttle
	gate       httputil.Gate
}

// NewClient builds a Client, filling config defaults: 10s search
// timeout, 60s download timeout, 3s request spacing, 3 attempts, one
// request in flight.
func NewClient(cfg types.ClientConfig) *Client {
	if cfg.SearchTimeout <= 0 {
		cfg.SearchTimeout = defaultSearchTimeout
	}
	if cfg.DownloadTimeout <= 0 {
		cfg.DownloadTimeout = defaultDownloadTimeout
	}
	if cfg.MinRequestInterval <= 0 {
		cfg.MinRequestInterval = defaultMinInterval
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = httputil.DefaultUserAgent("paper-hub", "0.1")
	}
	return &Client{
		Warn:       os.Stderr,
		httpClient: &http.Client{},
		cfg:        cfg,
		throttle:   &httputil.Throttle{Interval: cfg.MinRequestInterval},
		gate:       httputil.NewGate(cfg.MaxConcurrent),
	}
}

// resolveQuery collapses the raw-string/builder union into a query
// string plus sort parameters, validating at the client boundary.
func resolveQuery(q query.Query) (search, sortBy, sortOrder string, err error) {
	switch v := q.(type) {
	case query.Raw:
		if strings.TrimSpace(string(v)) == "" {
			return "", "", "", apierr.Validationf("query string cannot be empty")
		}
		return string(v), "", "", nil
	case *query.Builder:
		s, err := v.Build()
		if err != nil {
			return "", "", "", apierr.Validationf("building query: %v", err)
		}
		sortBy, sortOrder = v.Sort()
		return s, sortBy, sortOrder, nil
	default:
		return "", "", "", apierr.Validationf("query must be a query.Raw or *query.Builder")
	}
}

// Search queries the arXiv API. start and maxResults page the result
// window; maxResults above 2000 is rejected to force pagination.
func (c *Client) Search(ctx context.Context, q query.Query, start, maxResults int) (*types.ResultSet, error) {
	search, sortBy, sortOrder, err := resolveQuery(q)
	if err != nil {
		return nil, err
	}
	if start < 0 {
		return nil, apierr.Validationf("start must be >= 0, got %d", start)
	}
	if maxResults < 0 || maxResults > maxResultsCap {
		return nil, apierr.Validationf("max_results must be between 0 and %d per request, got %d; page larger sets in slices", maxResultsCap, maxResults)
	}

	params := url.Values{
		"search_query": {search},
		"start":        {fmt.Sprintf("%d", start)},
		"max_results":  {fmt.Sprintf("%d", maxResults)},
	}
	if sortBy != "" {
		params.Set("sortBy", sortBy)
	}
	if sortOrder != "" {
		params.Set("sortOrder", sortOrder)
	}

	body, err := c.get(ctx, apiBase+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	rs, err := parseFeed(body)
	if err != nil {
		return nil, err
	}
	rs.Query = search
	rs.SortBy = sortBy
	rs.SortOrder = sortOrder
	return rs, nil
}

// GetByID fetches a single paper via the id_list endpoint. The
// identifier format is validated before any request; an empty feed is a
// valid not-found and returns (nil, nil).
func (c *Client) GetByID(ctx context.Context, id string) (*types.Paper, error) {
	if !idPattern.MatchString(id) {
		return nil, apierr.Validationf("invalid arXiv identifier: %q", id)
	}
	id = strings.TrimPrefix(id, "arXiv:")

	params := url.Values{
		"id_list":     {id},
		"start":       {"0"},
		"max_results": {"1"},
	}
	body, err := c.get(ctx, apiBase+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	rs, err := parseFeed(body)
	if err != nil {
		return nil, err
	}
	if len(rs.Papers) == 0 {
		return nil, nil
	}
	return &rs.Papers[0], nil
}

// Download streams the paper's PDF into destDir via the shared download
// pipeline, honoring the client's spacing and concurrency gate.
func (c *Client) Download(ctx context.Context, paper *types.Paper, destDir string, overwrite bool) (string, error) {
	if err := c.gate.Acquire(ctx); err != nil {
		return "", err
	}
	defer c.gate.Release()
	if err := c.throttle.Wait(ctx); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.DownloadTimeout)
	defer cancel()

	return download.Fetch(ctx, c.httpClient, paper, download.Options{
		DestDir:    destDir,
		Overwrite:  overwrite,
		UserAgent:  c.cfg.UserAgent,
		MaxRetries: c.cfg.MaxRetries,
	}, c.Warn)
}

// get issues a throttled, gated GET and returns the response body.
// Transport failures are retried with backoff; HTTP error statuses are
// surfaced immediately as an APIError, never retried.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	if err := c.gate.Acquire(ctx); err != nil {
		return nil, err
	}
	defer c.gate.Release()
	if err := c.throttle.Wait(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.SearchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.cfg.MaxRetries)
	if err != nil {
		return nil, &apierr.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apierr.NetworkError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &apierr.APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
