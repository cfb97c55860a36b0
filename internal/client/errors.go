package client

import (
	"errors"
	"fmt"
)

// Failure kinds surfaced by GeminiClient. The handler layer maps these to
// caller-facing statuses and messages; none of the text here reaches callers.
var (
	// ErrNotConfigured means no API key is set; no network call was attempted.
	ErrNotConfigured = errors.New("gemini client not configured: missing API key")

	// ErrUpstreamTimeout means the request exceeded the configured timeout.
	ErrUpstreamTimeout = errors.New("gemini request timed out")

	// ErrUpstreamUnreachable means the request failed before any HTTP
	// response was received.
	ErrUpstreamUnreachable = errors.New("gemini API unreachable")

	// ErrUnexpectedShape means the response body did not contain
	// candidates[0].content.parts[0].text.
	ErrUnexpectedShape = errors.New("unexpected response format from Gemini API")
)

// StatusError is returned when the Gemini API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string // truncated; for server logs only
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gemini API error (status %d): %s", e.StatusCode, e.Body)
}
