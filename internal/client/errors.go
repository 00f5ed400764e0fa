package client

import (
	"errors"
	"fmt"
)

// ErrRateLimited is returned when an upstream responds with HTTP 429.
// No retry happens at this layer; the caller decides whether to back off.
var ErrRateLimited = errors.New("rate limit exceeded")

// ErrTimeout is returned when the configured per-request timeout elapses
// with no response.
var ErrTimeout = errors.New("request timeout")

// UpstreamError is a non-2xx, non-429 upstream response.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	body := e.Body
	if len(body) > 256 {
		body = body[:256] + "..."
	}
	return fmt.Sprintf("upstream error: status %d: %s", e.Status, body)
}

// UnsupportedChainError reports a chain alias absent from a provider's table.
type UnsupportedChainError struct {
	Provider string
	Chain    string
}

func (e *UnsupportedChainError) Error() string {
	return fmt.Sprintf("Unsupported chain: %s (not supported by %s)", e.Chain, e.Provider)
}

// NotFoundError reports an address or ID absent from an upstream result.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}
