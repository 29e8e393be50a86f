package gatewayclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/teatime-labs/moodgate/pkg/config"
	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
	"github.com/teatime-labs/moodgate/pkg/infra/httpx"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fastjson"
)

const breakerName = "classification-gateway"

// StatusError is a non-2xx answer from the classification gateway.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("classification gateway returned %d: %s", e.StatusCode, e.Message)
}

// Client calls the classification gateway over HTTP. Calls go through a
// circuit breaker and are never retried.
type Client struct {
	logger  *logrus.Logger
	http    *fasthttp.Client
	breaker httpx.CircuitBreaker
	url     string
	apiKey  string
	timeout time.Duration
}

func NewClient(logger *logrus.Logger, cfg config.DetectionConfig, httpClient *fasthttp.Client) *Client {
	if httpClient == nil {
		httpClient = httpx.NewFastHTTPClient(httpx.WithUserAgent("moodgate-composer"))
	}
	breaker := httpx.NewCircuitBreaker(
		breakerName,
		cfg.BreakerTimeout,
		cfg.BreakerMaxFailures,
		httpx.WithSuccessFilter(countsAsSuccess),
		httpx.WithStateChange(func(name, from, to string) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from,
				"to":      to,
			}).Warn("circuit breaker state changed")
		}),
	)
	return &Client{
		logger:  logger,
		http:    httpClient,
		breaker: breaker,
		url:     cfg.GatewayURL,
		apiKey:  cfg.APIKey,
		timeout: httpx.DefaultTimeout,
	}
}

// countsAsSuccess keeps client errors from tripping the breaker. Rate and
// quota limits mean the upstream is struggling, so they still count.
func countsAsSuccess(err error) bool {
	if err == nil {
		return true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode < http.StatusInternalServerError &&
			statusErr.StatusCode != http.StatusTooManyRequests &&
			statusErr.StatusCode != http.StatusPaymentRequired
	}
	return false
}

func (c *Client) Detect(ctx context.Context, text string) (*emotion.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, err
	}

	var result *emotion.Result
	err = c.breaker.Execute(func() error {
		var callErr error
		result, callErr = c.call(ctx, payload)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) call(ctx context.Context, payload []byte) (*emotion.Result, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set(fasthttp.HeaderAcceptEncoding, httpx.AcceptEncoding)
	if c.apiKey != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+c.apiKey)
		req.Header.Set("apikey", c.apiKey)
	}
	req.SetBodyRaw(payload)

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.http.DoDeadline(req, resp, deadline)
	} else {
		err = c.http.DoTimeout(req, resp, c.timeout)
	}
	if err != nil {
		return nil, fmt.Errorf("classification gateway request failed: %w", err)
	}

	body, err := httpx.DecodeBody(string(resp.Header.ContentEncoding()), resp.Body())
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode(), Message: errorMessage(body)}
	}

	result := new(emotion.Result)
	if err := json.Unmarshal(body, result); err != nil {
		return nil, fmt.Errorf("invalid classification gateway response: %w", err)
	}
	if !result.Emotion.Valid() || !result.RiskLevel.Valid() {
		return nil, errors.New("classification gateway response is incomplete")
	}
	return result, nil
}

func errorMessage(body []byte) string {
	v, err := fastjson.ParseBytes(body)
	if err != nil {
		return string(body)
	}
	if msg := v.GetStringBytes("error"); msg != nil {
		return string(msg)
	}
	return string(body)
}
