// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar is a client for the Semantic Scholar Academic Graph
// JSON API: paper and author search, citation/reference listings,
// batch fetch, autocomplete, and PDF download.
package scholar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
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
	"github.com/pdiddy/paper-hub/pkg/types"
)

// apiBase is the graph API root. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://api.semanticscholar.org/graph/v1"

// envAPIKey supplies the API key when the config leaves it empty.
const envAPIKey = "SEMANTIC_SCHOLAR_API_KEY"

// maxResultsCap is the per-request slice limit; larger sets must be
// paged by the caller.
const maxResultsCap = 2000

const (
	defaultSearchTimeout   = 10 * time.Second
	defaultDownloadTimeout = 60 * time.Second
	defaultMinInterval     = 1 * time.Second
)

// Requested field sets. The paper detail adds reference and citation
// lists on top of the search fields.
const (
	searchFields = "title,abstract,authors,venue,year,citationCount,influentialCitationCount,externalIds,openAccessPdf,publicationDate"
	paperFields  = searchFields + ",references,citations"
	authorFields = "name,paperCount,citationCount"
	refFields    = "title,paperId"
)

// idPattern accepts the identifier forms the graph API understands: a
// 40-char hex paperId, a prefixed external id (ARXIV:, DOI:, CorpusId:,
// PMID:, ACL:, MAG:, URL:), or a bare DOI.
var idPattern = regexp.MustCompile(`^(?:[0-9a-f]{40}|(?i:arxiv|doi|corpusid|pmid|acl|mag|url):\S+|10\.\d{4,9}/\S+)$`)

// Client talks to the Semantic Scholar API. Each instance owns its own
// request spacing state; one Client must not be copied after first use.
type Client struct {
	// Warn receives non-fatal warnings (e.g. a failed sidecar write).
	Warn io.Writer

	httpClient *http.Client
	cfg        types.ScholarConfig
	throttle   *httputil.Throttle
	gate       httputil.Gate
}

// NewClient builds a Client, filling config defaults: 10s search
// timeout, 60s download timeout, 1s request spacing, 3 attempts, one
// request in flight. An empty APIKey falls back to the
// SEMANTIC_SCHOLAR_API_KEY environment variable.
func NewClient(cfg types.ScholarConfig) *Client {
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
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(envAPIKey)
	}
	return &Client{
		Warn:       os.Stderr,
		httpClient: &http.Client{},
		cfg:        cfg,
		throttle:   &httputil.Throttle{Interval: cfg.MinRequestInterval},
		gate:       httputil.NewGate(cfg.MaxConcurrent),
	}
}

// Search queries the paper search endpoint. start and maxResults page
// the result window; maxResults above 2000 is rejected to force
// pagination.
func (c *Client) Search(ctx context.Context, q string, start, maxResults int) (*types.ResultSet, error) {
	if strings.TrimSpace(q) == "" {
		return nil, apierr.Validationf("query string cannot be empty")
	}
	if start < 0 {
		return nil, apierr.Validationf("start must be >= 0, got %d", start)
	}
	if maxResults < 0 || maxResults > maxResultsCap {
		return nil, apierr.Validationf("max_results must be between 0 and %d per request, got %d; page larger sets in slices", maxResultsCap, maxResults)
	}

	params := url.Values{
		"query":  {q},
		"offset": {fmt.Sprintf("%d", start)},
		"limit":  {fmt.Sprintf("%d", maxResults)},
		"fields": {searchFields},
	}
	body, err := c.get(ctx, apiBase+"/paper/search?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, &apierr.ParseError{First: fmt.Errorf("decoding search response: %w", err)}
	}

	papers, err := parsePapers(sr.Data)
	if err != nil {
		return nil, err
	}
	return &types.ResultSet{
		Papers:       papers,
		TotalResults: sr.Total,
		StartIndex:   sr.Offset,
		ItemsPerPage: maxResults,
		Query:        q,
	}, nil
}

// GetByID fetches a single paper with reference and citation lists.
// The identifier format is validated before any request; HTTP 404
// is a valid not-found and returns (nil, nil).
func (c *Client) GetByID(ctx context.Context, id string) (*types.Paper, error) {
	if !idPattern.MatchString(id) {
		return nil, apierr.Validationf("invalid Semantic Scholar identifier: %q", id)
	}

	params := url.Values{"fields": {paperFields}}
	body, err := c.get(ctx, apiBase+"/paper/"+url.PathEscape(id)+"?"+params.Encode())
	if err != nil {
		var apiErr *apierr.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	var pj paperJSON
	if err := json.Unmarshal(body, &pj); err != nil {
		return nil, &apierr.ParseError{First: fmt.Errorf("decoding paper response: %w", err)}
	}
	p, err := parsePaper(pj)
	if err != nil {
		return nil, &apierr.ParseError{Failures: 1, FirstIndex: 0, First: err}
	}
	return &p, nil
}

// SearchAuthors queries the author search endpoint.
func (c *Client) SearchAuthors(ctx context.Context, q string, maxResults int) ([]types.AuthorRecord, error) {
	if strings.TrimSpace(q) == "" {
		return nil, apierr.Validationf("query string cannot be empty")
	}
	if maxResults < 0 || maxResults > maxResultsCap {
		return nil, apierr.Validationf("max_results must be between 0 and %d per request, got %d", maxResultsCap, maxResults)
	}

	params := url.Values{
		"query":  {q},
		"limit":  {fmt.Sprintf("%d", maxResults)},
		"fields": {authorFields},
	}
	body, err := c.get(ctx, apiBase+"/author/search?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var ar authorsResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return nil, &apierr.ParseError{First: fmt.Errorf("decoding author response: %w", err)}
	}

	records := make([]types.AuthorRecord, 0, len(ar.Data))
	for _, a := range ar.Data {
		records = append(records, a.toRecord())
	}
	return records, nil
}

// GetAuthor fetches one author's details and papers. HTTP 404 is a
// valid not-found and returns (nil, nil).
func (c *Client) GetAuthor(ctx context.Context, authorID string) (*types.AuthorRecord, error) {
	if strings.TrimSpace(authorID) == "" {
		return nil, apierr.Validationf("author id cannot be empty")
	}

	params := url.Values{"fields": {authorFields + ",papers"}}
	body, err := c.get(ctx, apiBase+"/author/"+url.PathEscape(authorID)+"?"+params.Encode())
	if err != nil {
		var apiErr *apierr.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	var aj authorJSON
	if err := json.Unmarshal(body, &aj); err != nil {
		return nil, &apierr.ParseError{First: fmt.Errorf("decoding author response: %w", err)}
	}
	rec := aj.toRecord()
	return &rec, nil
}

// Citations lists papers citing the given paper.
func (c *Client) Citations(ctx context.Context, id string, maxResults int) ([]types.PaperRef, error) {
	return c.linked(ctx, id, "citations", maxResults)
}

// References lists papers the given paper cites.
func (c *Client) References(ctx context.Context, id string, maxResults int) ([]types.PaperRef, error) {
	return c.linked(ctx, id, "references", maxResults)
}

func (c *Client) linked(ctx context.Context, id, kind string, maxResults int) ([]types.PaperRef, error) {
	if !idPattern.MatchString(id) {
		return nil, apierr.Validationf("invalid Semantic Scholar identifier: %q", id)
	}
	if maxResults < 0 || maxResults > maxResultsCap {
		return nil, apierr.Validationf("max_results must be between 0 and %d per request, got %d", maxResultsCap, maxResults)
	}

	params := url.Values{
		"limit":  {fmt.Sprintf("%d", maxResults)},
		"fields": {refFields},
	}
	body, err := c.get(ctx, apiBase+"/paper/"+url.PathEscape(id)+"/"+kind+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var lr linkedResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, &apierr.ParseError{First: fmt.Errorf("decoding %s response: %w", kind, err)}
	}

	refs := make([]types.PaperRef, 0, len(lr.Data))
	for _, d := range lr.Data {
		pj := d.CitingPaper
		if pj.PaperID == "" {
			pj = d.CitedPaper
		}
		if pj.PaperID == "" {
			continue
		}
		refs = append(refs, types.PaperRef{PaperID: pj.PaperID, Title: pj.Title})
	}
	return refs, nil
}

// BatchPapers fetches multiple papers in one POST to /paper/batch.
func (c *Client) BatchPapers(ctx context.Context, ids []string) ([]types.Paper, error) {
	if len(ids) == 0 {
		return nil, apierr.Validationf("ids cannot be empty")
	}
	for _, id := range ids {
		if !idPattern.MatchString(id) {
			return nil, apierr.Validationf("invalid Semantic Scholar identifier: %q", id)
		}
	}

	payload, err := json.Marshal(map[string][]string{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("encoding batch request: %w", err)
	}

	params := url.Values{"fields": {paperFields}}
	body, err := c.post(ctx, apiBase+"/paper/batch?"+params.Encode(), payload)
	if err != nil {
		return nil, err
	}

	var data []paperJSON
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &apierr.ParseError{First: fmt.Errorf("decoding batch response: %w", err)}
	}
	return parsePapers(data)
}

// Autocomplete returns title suggestions for a partial query.
func (c *Client) Autocomplete(ctx context.Context, q string) ([]string, error) {
	if strings.TrimSpace(q) == "" {
		return nil, apierr.Validationf("query string cannot be empty")
	}

	params := url.Values{"query": {q}}
	body, err := c.get(ctx, apiBase+"/paper/autocomplete?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var ac autocompleteResponse
	if err := json.Unmarshal(body, &ac); err != nil {
		return nil, &apierr.ParseError{First: fmt.Errorf("decoding autocomplete response: %w", err)}
	}

	titles := make([]string, 0, len(ac.Matches))
	for _, m := range ac.Matches {
		if m.Title != "" {
			titles = append(titles, m.Title)
		}
	}
	return titles, nil
}

// Download streams the paper's open-access PDF into destDir via the
// shared download pipeline, honoring the client's spacing and
// concurrency gate.
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
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, rawURL, nil)
}

// post issues a throttled, gated POST with a JSON body.
func (c *Client) post(ctx context.Context, rawURL string, payload []byte) ([]byte, error) {
	return c.do(ctx, http.MethodPost, rawURL, payload)
}

// do applies spacing, the concurrency gate, the per-request timeout,
// and transport retries. HTTP error statuses are surfaced immediately
// as an APIError, never retried.
func (c *Client) do(ctx context.Context, method, rawURL string, payload []byte) ([]byte, error) {
	if err := c.gate.Acquire(ctx); err != nil {
		return nil, err
	}
	defer c.gate.Release()
	if err := c.throttle.Wait(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.SearchTimeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("x-api-key", c.cfg.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.cfg.MaxRetries)
	if err != nil {
		return nil, &apierr.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apierr.NetworkError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &apierr.APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}
