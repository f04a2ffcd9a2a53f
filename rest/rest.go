// Package rest provides the resilient HTTP transport all CLOB API calls
// flow through: bounded exponential-backoff retries for transient failures
// and a uniform typed-error classification of everything else.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const DEFAULT_TIMEOUT = 30 * time.Second
const DEFAULT_MAX_RETRIES = 3
const DEFAULT_BACKOFF_LIMIT = 10 * time.Second

// defaultRetryStatusCodes are the transient statuses worth retrying
var defaultRetryStatusCodes = []int{
	http.StatusRequestTimeout,
	http.StatusRequestEntityTooLarge,
	http.StatusTooManyRequests,
	http.StatusInternalServerError,
	http.StatusBadGateway,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
}

// defaultRetryMethods are the methods the venue documents as safe to
// repeat. POST and DELETE are included because order submission and
// cancellation are idempotent server-side.
var defaultRetryMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodDelete,
}

type Config struct {
	// BaseURL for all requests, without a trailing slash
	BaseURL string
	// Timeout is the per-attempt deadline. Defaults to 30s.
	Timeout time.Duration
	// MaxRetries bounds the retry count after the first attempt.
	// Defaults to 3; set to -1 to disable retries.
	MaxRetries int
	// BackoffLimit caps the exponential backoff between attempts.
	// Defaults to 10s.
	BackoffLimit time.Duration
	// RetryStatusCodes overrides the statuses treated as transient.
	// Defaults to 408, 413, 429, 500, 502, 503 and 504.
	RetryStatusCodes []int
	// RetryMethods overrides the methods safe to retry.
	// Defaults to GET, POST and DELETE.
	RetryMethods []string
	// Debug enables request/retry/response logging
	Debug bool
}

// Client wraps resty with the retry policy and error taxonomy shared by
// every API surface. Immutable after construction; safe for concurrent use.
type Client struct {
	api    *resty.Client
	logger zerolog.Logger
}

// Request describes one HTTP call. Body is pre-marshalled JSON so the bytes
// that were signed are exactly the bytes on the wire.
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Params  map[string]string
	Body    json.RawMessage
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DEFAULT_TIMEOUT
	}

	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = DEFAULT_MAX_RETRIES
	} else if maxRetries < 0 {
		maxRetries = 0
	}

	backoffLimit := cfg.BackoffLimit
	if backoffLimit == 0 {
		backoffLimit = DEFAULT_BACKOFF_LIMIT
	}

	retryStatuses := toSet(cfg.RetryStatusCodes, defaultRetryStatusCodes)
	retryMethods := toSet(cfg.RetryMethods, defaultRetryMethods)

	logger := zerolog.Nop()
	if cfg.Debug {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Str("component", "rest").Logger()
	}

	api := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(maxRetries).
		SetRetryWaitTime(250 * time.Millisecond).
		SetRetryMaxWaitTime(backoffLimit).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if r == nil || r.Request == nil {
				return false
			}
			if !retryMethods[r.Request.Method] {
				return false
			}
			// Never retry past the caller's deadline
			if err != nil {
				if ctxErr := r.Request.Context().Err(); ctxErr != nil {
					return false
				}
				return true
			}
			return retryStatuses[r.StatusCode()]
		}).
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			logger.Debug().Str("method", r.Method).Str("url", r.URL).Msg("request")
			return nil
		}).
		AddRetryHook(func(r *resty.Response, err error) {
			logger.Debug().
				Int("attempt", r.Request.Attempt).
				Str("url", r.Request.URL).
				Err(err).
				Msg("retrying")
		}).
		OnAfterResponse(func(_ *resty.Client, r *resty.Response) error {
			logger.Debug().
				Int("status", r.StatusCode()).
				Str("url", r.Request.URL).
				Dur("elapsed", r.Time()).
				Msg("response")
			return nil
		})

	return &Client{api: api, logger: logger}
}

func toSet[T comparable](values, defaults []T) map[T]bool {
	if len(values) == 0 {
		values = defaults
	}
	set := make(map[T]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// Do executes the request, retrying transient failures per the retry
// policy, and decodes a successful JSON response into result (which may be
// nil). Every failure surfaces as a typed *Error.
func (c *Client) Do(ctx context.Context, req Request, result any) error {
	r := c.api.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeaders(req.Headers)

	if len(req.Params) > 0 {
		r.SetQueryParams(req.Params)
	}
	if req.Body != nil {
		r.SetBody([]byte(req.Body))
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		return classifyTransportError(err)
	}

	if resp.IsError() {
		return classifyStatus(resp.StatusCode(), parseErrorBody(resp.Body()))
	}

	if result != nil && len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), result); err != nil {
			return NewAPIError("failed to decode response body", resp.StatusCode(), string(resp.Body()))
		}
	}

	return nil
}

// classifyTransportError maps a transport-level failure into the taxonomy.
// An already-typed *Error passes through unchanged.
func classifyTransportError(err error) error {
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		os.IsTimeout(err) {
		return NewTimeoutError("request deadline exceeded")
	}
	if errors.Is(err, context.Canceled) {
		return NewTimeoutError("request canceled")
	}

	return NewNetworkError("network request failed", err.Error())
}

// parseErrorBody best-effort decodes a server error payload so the typed
// error can carry it; falls back to the raw text.
func parseErrorBody(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	var details any
	if err := json.Unmarshal(body, &details); err != nil {
		return string(body)
	}
	return details
}
