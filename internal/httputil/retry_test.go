// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Use a tiny base delay so tests finish quickly.
	RetryBaseDelay = 1 * time.Millisecond
}

// flakyTransport fails the first n calls with a transport error, then
// delegates to the real transport.
type flakyTransport struct {
	failures int32
	calls    int32
	inner    http.RoundTripper
}

func (f *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	n := atomic.AddInt32(&f.calls, 1)
	if n <= atomic.LoadInt32(&f.failures) {
		return nil, errors.New("connection reset by peer")
	}
	return f.inner.RoundTrip(req)
}

// bodyRecordingTransport captures the request payload seen by each
// attempt and fails the first n attempts with a transport error.
type bodyRecordingTransport struct {
	failures int
	bodies   [][]byte
}

func (tr *bodyRecordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var data []byte
	if req.Body != nil {
		data, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}
	tr.bodies = append(tr.bodies, data)
	if len(tr.bodies) <= tr.failures {
		return nil, errors.New("connection reset by peer")
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       io.NopCloser(bytes.NewReader(nil)),
		Request:    req,
	}, nil
}

func TestDoWithRetry_ResendsBodyOnRetry(t *testing.T) {
	payload := `{"ids":["ARXIV:1.1"]}`
	tr := &bodyRecordingTransport{failures: 2}
	client := &http.Client{Transport: tr}

	// NewRequestWithContext sets GetBody for a bytes.Reader, which the
	// retry loop uses to rewind the payload per attempt.
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		"http://example.invalid/batch", bytes.NewReader([]byte(payload)))
	require.NoError(t, err)

	resp, err := DoWithRetry(context.Background(), client, req, 5)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Len(t, tr.bodies, 3)
	for i, body := range tr.bodies {
		assert.Equal(t, payload, string(body), "attempt %d saw a drained body", i+1)
	}
}

func TestDoWithRetry_ImmediateSuccess(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	resp, err := DoWithRetry(context.Background(), ts.Client(), req, 5)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDoWithRetry_TransportFailuresThenSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ft := &flakyTransport{failures: 2, inner: ts.Client().Transport}
	client := &http.Client{Transport: ft}

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	resp, err := DoWithRetry(context.Background(), client, req, 5)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&ft.calls))
}

func TestDoWithRetry_ExhaustsAttempts(t *testing.T) {
	ft := &flakyTransport{failures: 100, inner: http.DefaultTransport}
	client := &http.Client{Transport: ft}

	req, err := http.NewRequest(http.MethodGet, "http://example.invalid/", nil)
	require.NoError(t, err)

	_, err = DoWithRetry(context.Background(), client, req, 3)
	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&ft.calls))
}

func TestDoWithRetry_ErrorStatusNotRetried(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	resp, err := DoWithRetry(context.Background(), ts.Client(), req, 5)
	require.NoError(t, err)
	defer resp.Body.Close()

	// Rate-limit and server-error statuses are the caller's business.
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDoWithRetry_ContextCancelledDuringBackoff(t *testing.T) {
	ft := &flakyTransport{failures: 100, inner: http.DefaultTransport}
	client := &http.Client{Transport: ft}

	// Use a longer base delay so the context cancels during the wait.
	old := RetryBaseDelay
	RetryBaseDelay = 500 * time.Millisecond
	defer func() { RetryBaseDelay = old }()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	req, err := http.NewRequest(http.MethodGet, "http://example.invalid/", nil)
	require.NoError(t, err)

	_, err = DoWithRetry(ctx, client, req, 5)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDoWithRetry_DefaultAttempts(t *testing.T) {
	ft := &flakyTransport{failures: 100, inner: http.DefaultTransport}
	client := &http.Client{Transport: ft}

	req, err := http.NewRequest(http.MethodGet, "http://example.invalid/", nil)
	require.NoError(t, err)

	_, err = DoWithRetry(context.Background(), client, req, 0)
	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&ft.calls))
}
