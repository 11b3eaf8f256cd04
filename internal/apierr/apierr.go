// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package apierr defines the error taxonomy shared by the provider
// clients and the download pipeline. Each category has a distinct type
// so callers can branch with errors.As:
//
//	validation — bad input shape, surfaced before any network call
//	network    — transport failure, surfaced after retries are exhausted
//	API        — non-2xx HTTP status, surfaced immediately, never retried
//	parse      — response or entries structurally unparseable
//	download   — missing PDF URL, missing destination, empty or failed write
package apierr

import "fmt"

// ValidationError reports malformed caller input: an empty query,
// out-of-range pagination, or a bad identifier.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return "validation: " + e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NetworkError wraps the last transport failure after the retry budget
// is exhausted.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// APIError reports a non-2xx HTTP status together with the response body.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: HTTP %d", e.StatusCode)
}

// ParseError summarizes entry parse failures within one response. The
// call fails as a whole when any entry is malformed, even if others
// parsed; Failures and FirstIndex let the caller report the damage.
type ParseError struct {
	// Failures is the number of entries that failed to parse.
	Failures int

	// FirstIndex is the position of the first failing entry.
	FirstIndex int

	// First is the first failure's cause.
	First error
}

func (e *ParseError) Error() string {
	if e.Failures == 0 {
		return fmt.Sprintf("parse: %v", e.First)
	}
	return fmt.Sprintf("parse: %d entries failed (first at index %d): %v",
		e.Failures, e.FirstIndex, e.First)
}

func (e *ParseError) Unwrap() error { return e.First }

// DownloadError reports a failure in the download pipeline. Partial
// output is removed before this error propagates.
type DownloadError struct {
	Msg string
	Err error
}

func (e *DownloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("download: %s: %v", e.Msg, e.Err)
	}
	return "download: " + e.Msg
}

func (e *DownloadError) Unwrap() error { return e.Err }
