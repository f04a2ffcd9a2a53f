// Package attributor delegates a subset of request signing to a remote
// attribution service, so orders can carry a builder identity without the
// builder ever seeing the caller's own credentials.
package attributor

import (
	"context"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/samber/mo"

	"github.com/dicedhq/go-polymarket/rest"
	"github.com/dicedhq/go-polymarket/signer"
)

// Header names the attribution service contributes to a request
const (
	HeaderBuilderAPIKey     = "POLY_BUILDER_API_KEY"
	HeaderBuilderPassphrase = "POLY_BUILDER_PASSPHRASE"
	HeaderBuilderSignature  = "POLY_BUILDER_SIGNATURE"
	HeaderBuilderTimestamp  = "POLY_BUILDER_TIMESTAMP"
)

// Config points at an attribution service and its static bearer token
type Config struct {
	URL   string
	Token string
}

// Attributor signs request metadata through a remote attribution service
type Attributor struct {
	url   string
	token string
	api   *resty.Client
}

func New(cfg Config) *Attributor {
	return &Attributor{
		url:   cfg.URL,
		token: cfg.Token,
		api:   resty.New(),
	}
}

// URL returns the configured service endpoint
func (a *Attributor) URL() string {
	return a.url
}

type signRequest struct {
	Path      string  `json:"path"`
	Method    string  `json:"method"`
	Body      *string `json:"body,omitempty"`
	Timestamp *int64  `json:"timestamp,omitempty"`
}

// Sign asks the attribution service to sign the request described by
// method, path and body, and returns the four builder headers to attach.
// The service signs with its own credentials; the caller's never travel.
func (a *Attributor) Sign(
	ctx context.Context,
	method signer.Method,
	path string,
	body mo.Option[string],
	timestamp mo.Option[int64],
) (map[string]string, error) {
	req := signRequest{
		Path:   path,
		Method: string(method),
		Body:   body.ToPointer(),
	}
	if ts, ok := timestamp.Get(); ok {
		req.Timestamp = &ts
	}

	var payload signer.HeaderPayload
	resp, err := a.api.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(a.token).
		SetBody(req).
		SetResult(&payload).
		Post(a.url)

	if err != nil {
		return nil, rest.NewNetworkError("attributor network request failed", err.Error())
	}

	if resp.IsError() {
		status := resp.StatusCode()
		if status == 401 || status == 403 {
			return nil, rest.NewAuthenticationError("attributor authentication failed", status, a.url)
		}
		return nil, rest.NewAPIError("attributor request failed", status, string(resp.Body()))
	}

	return map[string]string{
		HeaderBuilderAPIKey:     payload.Key,
		HeaderBuilderPassphrase: payload.Passphrase,
		HeaderBuilderSignature:  payload.Signature,
		HeaderBuilderTimestamp:  strconv.FormatInt(payload.Timestamp, 10),
	}, nil
}
