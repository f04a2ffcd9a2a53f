package rest

import (
	"errors"
	"fmt"
)

// Kind discriminates the failure classes surfaced by the transport.
// A flat enumeration: callers switch on Kind instead of walking a type
// hierarchy.
type Kind int

const (
	// KindAPI is any non-success status not covered by a more specific kind
	KindAPI Kind = iota
	// KindValidation is malformed input, caught client-side where possible
	KindValidation
	// KindAuthentication is a 401/403 or a rejected bearer token
	KindAuthentication
	// KindRateLimit is a 429
	KindRateLimit
	// KindTimeout is a client-side deadline exceeded
	KindTimeout
	// KindNetwork is a connection-level failure (DNS, TCP)
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindRateLimit:
		return "rate_limit"
	case KindTimeout:
		return "timeout"
	case KindNetwork:
		return "network"
	default:
		return "api"
	}
}

// Error is the single typed error surfaced by the transport. StatusCode is
// zero when the failure never produced an HTTP response; Details carries the
// parsed server error body when one was available.
type Error struct {
	Kind       Kind
	StatusCode int
	Msg        string
	Details    any
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Kind, e.StatusCode, e.Msg)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Msg)
}

// AsError unwraps err into a transport *Error, or nil if it is not one.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// NewValidationError reports malformed input. StatusCode stays zero for
// failures caught before any network call.
func NewValidationError(msg string, details any) *Error {
	return &Error{Kind: KindValidation, Msg: msg, Details: details}
}

func NewAuthenticationError(msg string, statusCode int, details any) *Error {
	return &Error{Kind: KindAuthentication, StatusCode: statusCode, Msg: msg, Details: details}
}

func NewRateLimitError(msg string, details any) *Error {
	return &Error{Kind: KindRateLimit, StatusCode: 429, Msg: msg, Details: details}
}

func NewTimeoutError(msg string) *Error {
	return &Error{Kind: KindTimeout, Msg: msg}
}

func NewNetworkError(msg string, details any) *Error {
	return &Error{Kind: KindNetwork, Msg: msg, Details: details}
}

func NewAPIError(msg string, statusCode int, details any) *Error {
	return &Error{Kind: KindAPI, StatusCode: statusCode, Msg: msg, Details: details}
}

// classifyStatus maps an HTTP status to the typed error taxonomy
func classifyStatus(statusCode int, details any) *Error {
	switch {
	case statusCode == 400:
		return &Error{Kind: KindValidation, StatusCode: 400, Msg: "invalid request parameters", Details: details}
	case statusCode == 401 || statusCode == 403:
		return NewAuthenticationError("authentication failed", statusCode, details)
	case statusCode == 404:
		return NewAPIError("resource not found", 404, details)
	case statusCode == 429:
		return NewRateLimitError("rate limit exceeded", details)
	case statusCode >= 500:
		return NewAPIError("server error", statusCode, details)
	default:
		return NewAPIError(fmt.Sprintf("HTTP %d", statusCode), statusCode, details)
	}
}
