// Package signer implements the HMAC-SHA256 request signing protocol used
// by the CLOB API for L2 authentication. It is shared by the trading client
// and the attribution server.
package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/mo"
)

// Method is an HTTP method accepted for signing
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// Credentials is an opaque API identity issued by the venue.
// Secret is base64-encoded. Immutable once issued.
type Credentials struct {
	Key        string `json:"key"`
	Secret     string `json:"secret"`
	Passphrase string `json:"passphrase"`
}

// HeaderPayload carries the signature and metadata for an authenticated
// request
type HeaderPayload struct {
	Key        string `json:"key"`
	Passphrase string `json:"passphrase"`
	Signature  string `json:"signature"`
	Timestamp  int64  `json:"timestamp"`
}

// Signer creates HMAC-SHA256 header payloads from a fixed set of
// credentials
type Signer struct {
	credentials Credentials
}

func New(credentials Credentials) *Signer {
	return &Signer{credentials: credentials}
}

// CreateHeaderPayload signs the request described by method, path and body.
// Timestamp defaults to the current Unix time when not provided; each call
// captures its own timestamp so concurrent requests never share one.
func (s *Signer) CreateHeaderPayload(
	method Method,
	path string,
	body mo.Option[string],
	timestamp mo.Option[int64],
) (HeaderPayload, error) {
	ts := timestamp.OrElse(time.Now().Unix())

	signature, err := CreateHmacSignature(
		s.credentials.Secret,
		ts,
		method,
		path,
		body,
	)
	if err != nil {
		return HeaderPayload{}, err
	}

	return HeaderPayload{
		Key:        s.credentials.Key,
		Passphrase: s.credentials.Passphrase,
		Signature:  signature,
		Timestamp:  ts,
	}, nil
}

// CreateHmacSignature computes the HMAC-SHA256 signature over
// timestamp + method + path (+ body). The body is appended whenever it is
// present, even when it is the empty string; an absent body contributes
// nothing. Pure function: identical inputs always produce the identical
// signature.
func CreateHmacSignature(
	secret string,
	timestamp int64,
	method Method,
	requestPath string,
	body mo.Option[string],
) (string, error) {
	message := strconv.FormatInt(timestamp, 10) + string(method) + requestPath
	if b, ok := body.Get(); ok {
		message += b
	}

	key, err := decodeSecret(secret)
	if err != nil {
		return "", fmt.Errorf("failed to decode secret: %w", err)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))
	digest := mac.Sum(nil)

	// URL-safe base64 with the "=" padding retained
	signature := base64.StdEncoding.EncodeToString(digest)
	signature = strings.ReplaceAll(signature, "+", "-")
	signature = strings.ReplaceAll(signature, "/", "_")

	return signature, nil
}

// decodeSecret decodes a base64 secret, tolerating the URL-safe alphabet
// and missing padding the way the venue issues them.
func decodeSecret(secret string) ([]byte, error) {
	normalized := strings.ReplaceAll(secret, "-", "+")
	normalized = strings.ReplaceAll(normalized, "_", "/")

	if pad := len(normalized) % 4; pad != 0 {
		normalized += strings.Repeat("=", 4-pad)
	}

	return base64.StdEncoding.DecodeString(normalized)
}
