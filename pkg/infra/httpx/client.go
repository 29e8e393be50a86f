package httpx

import (
	"time"

	"github.com/valyala/fasthttp"
)

const (
	DefaultTimeout             = 30 * time.Second
	DefaultMaxConnsPerHost     = 512
	DefaultMaxIdleConnDuration = 10 * time.Second
	DefaultMaxResponseBodySize = 1 << 20
)

type FastHTTPClientOptions struct {
	Timeout             time.Duration
	MaxConnsPerHost     int
	MaxIdleConnDuration time.Duration
	MaxResponseBodySize int
	UserAgent           string
}

type FastHTTPClientOption func(*FastHTTPClientOptions)

func WithTimeout(timeout time.Duration) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.Timeout = timeout
	}
}

func WithMaxConnsPerHost(max int) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.MaxConnsPerHost = max
	}
}

func WithUserAgent(userAgent string) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.UserAgent = userAgent
	}
}

// NewFastHTTPClient builds a pooled fasthttp client. Requests are never
// retried by the client itself.
func NewFastHTTPClient(opts ...FastHTTPClientOption) *fasthttp.Client {
	options := &FastHTTPClientOptions{
		Timeout:             DefaultTimeout,
		MaxConnsPerHost:     DefaultMaxConnsPerHost,
		MaxIdleConnDuration: DefaultMaxIdleConnDuration,
		MaxResponseBodySize: DefaultMaxResponseBodySize,
	}
	for _, opt := range opts {
		opt(options)
	}

	return &fasthttp.Client{
		Name:                      options.UserAgent,
		ReadTimeout:               options.Timeout,
		WriteTimeout:              options.Timeout,
		MaxConnsPerHost:           options.MaxConnsPerHost,
		MaxIdleConnDuration:       options.MaxIdleConnDuration,
		MaxResponseBodySize:       options.MaxResponseBodySize,
		MaxIdemponentCallAttempts: 1,
	}
}
