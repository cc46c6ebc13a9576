package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	httpclient "go-weather/pkg/http"
)

var (
	// ErrNetwork means no response was received.
	ErrNetwork = errors.New("network error")
	// ErrParse means the response body did not match the expected schema.
	ErrParse = errors.New("parse error")
	// ErrCancelled means the caller abandoned the request.
	ErrCancelled = errors.New("request cancelled")
)

// HTTPStatusError is returned for any non-2xx answer.
type HTTPStatusError struct {
	StatusCode int
	Reason     string
}

func (e *HTTPStatusError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unexpected HTTP status %d: %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("unexpected HTTP status %d", e.StatusCode)
}

// RateLimited reports whether the status is one of the rate limit signals (418, 429).
func (e *HTTPStatusError) RateLimited() bool {
	return e.StatusCode == http.StatusTeapot || e.StatusCode == http.StatusTooManyRequests
}

// classifyError maps a pkg/http failure onto the gateway error taxonomy.
func classifyError(ctx context.Context, err error, reason string) error {
	var statusErr *httpclient.StatusError
	var decodeErr *httpclient.DecodeError

	switch {
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return fmt.Errorf("%w: %v", ErrCancelled, err)
	case errors.As(err, &statusErr):
		return &HTTPStatusError{StatusCode: statusErr.StatusCode, Reason: reason}
	case errors.As(err, &decodeErr):
		return fmt.Errorf("%w: %v", ErrParse, decodeErr.Err)
	default:
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
}
