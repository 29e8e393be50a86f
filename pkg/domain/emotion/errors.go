package emotion

import "errors"

var (
	ErrInvalidValue           = errors.New("invalid value")
	ErrInvalidInput           = errors.New("no text provided")
	ErrUpstreamRateLimited    = errors.New("upstream rate limited")
	ErrUpstreamQuotaExhausted = errors.New("upstream credits exhausted")
	ErrUpstreamUnavailable    = errors.New("upstream unavailable")
)
