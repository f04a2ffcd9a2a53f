package clob

import (
	"context"

	"github.com/dicedhq/go-polymarket/signer"
)

type apiKeyResponse struct {
	APIKey     string `json:"apiKey"`
	Secret     string `json:"secret"`
	Passphrase string `json:"passphrase"`
}

func (r apiKeyResponse) credentials() signer.Credentials {
	return signer.Credentials{
		Key:        r.APIKey,
		Secret:     r.Secret,
		Passphrase: r.Passphrase,
	}
}

// CreateAPIKey mints new API credentials, proving wallet control with an
// L1 signature over the given nonce
func (c *Client) CreateAPIKey(ctx context.Context, nonce int64) (signer.Credentials, error) {
	var response apiKeyResponse
	err := c.request(ctx, signer.MethodPost, "/auth/api-key", l1Auth(nonce), nil, nil, &response)
	if err != nil {
		return signer.Credentials{}, err
	}
	return response.credentials(), nil
}

// DeriveAPIKey recovers the credentials previously minted under the given
// nonce. Deterministic: the same wallet and nonce always yield the same
// credentials.
func (c *Client) DeriveAPIKey(ctx context.Context, nonce int64) (signer.Credentials, error) {
	var response apiKeyResponse
	err := c.request(ctx, signer.MethodGet, "/auth/derive-api-key", l1Auth(nonce), nil, nil, &response)
	if err != nil {
		return signer.Credentials{}, err
	}
	return response.credentials(), nil
}

type listAPIKeysResponse struct {
	APIKeys []string `json:"apiKeys"`
}

// ListAPIKeys lists the account's active API key ids
func (c *Client) ListAPIKeys(ctx context.Context) ([]string, error) {
	var response listAPIKeysResponse
	err := c.request(ctx, signer.MethodGet, "/auth/api-keys", l2Auth(), nil, nil, &response)
	return response.APIKeys, err
}

// DeleteAPIKey revokes the credentials the client is configured with
func (c *Client) DeleteAPIKey(ctx context.Context) error {
	return c.request(ctx, signer.MethodDelete, "/auth/api-key", l2Auth(), nil, nil, nil)
}

type closedOnlyResponse struct {
	ClosedOnly bool `json:"closed_only"`
}

// GetClosedOnlyMode reports whether the account is restricted to reducing
// positions
func (c *Client) GetClosedOnlyMode(ctx context.Context) (bool, error) {
	var response closedOnlyResponse
	err := c.request(ctx, signer.MethodGet, "/auth/ban-status/closed-only", l2Auth(), nil, nil, &response)
	return response.ClosedOnly, err
}
