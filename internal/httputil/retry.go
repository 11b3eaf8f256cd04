// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the provider clients:
// transport-level retry, request spacing, and User-Agent construction.
package httputil

import (
	"context"
	"net/http"
	"time"
)

// RetryBaseDelay is the base duration for exponential backoff on
// transport failures. Tests override this to avoid real sleeps.
var RetryBaseDelay = 1 * time.Second

// retryDelayCap bounds the backoff growth.
const retryDelayCap = 30 * time.Second

const defaultMaxAttempts = 3

// DoWithRetry executes an HTTP request, retrying only transport-level
// failures (connection reset, timeout) with exponential backoff: the
// delay starts at RetryBaseDelay and doubles each attempt up to
// retryDelayCap. Any HTTP response, success or error status, is
// returned to the caller on the first attempt that produces one —
// status codes are the caller's business and are never retried here.
//
// When maxAttempts is 0 the default (3) is used. If the context is
// cancelled during a backoff wait the function returns ctx.Err().
// After the last attempt the transport error is returned as-is for the
// caller to wrap.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxAttempts int) (*http.Response, error) {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	delay := RetryBaseDelay
	for attempt := 1; ; attempt++ {
		r := req.Clone(ctx)
		if attempt > 1 && req.GetBody != nil {
			// The previous attempt drained the body; rewind it.
			body, err := req.GetBody()
			if err != nil {
				return nil, err
			}
			r.Body = body
		}
		resp, err := client.Do(r)
		if err == nil {
			return resp, nil
		}
		if attempt >= maxAttempts {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}

		delay *= 2
		if delay > retryDelayCap {
			delay = retryDelayCap
		}
	}
}
