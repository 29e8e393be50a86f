package providers

import (
	"errors"
	"fmt"
	"net/http"
)

// UpstreamError wraps a failed model call. StatusCode is zero when the
// request never produced an HTTP response.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Err        error
}

func NewUpstreamError(provider string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, StatusCode: statusCode, Err: err}
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s request failed with status %d: %v", e.Provider, e.StatusCode, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

func (e *UpstreamError) QuotaExhausted() bool {
	return e.StatusCode == http.StatusPaymentRequired
}

func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr, true
	}
	return nil, false
}
