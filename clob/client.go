// Package clob is a trading client for the Polymarket central-limit order
// book. It builds and signs orders, authenticates every request with either
// a wallet signature (L1) or HMAC API credentials (L2), and optionally tags
// orders with a builder identity through a remote attributor.
package clob

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/samber/mo"

	"github.com/dicedhq/go-polymarket/attributor"
	"github.com/dicedhq/go-polymarket/constants"
	"github.com/dicedhq/go-polymarket/rest"
	"github.com/dicedhq/go-polymarket/signer"
)

// Config for initializing the CLOB client
type Config struct {
	// Wallet used for L1 authentication and order signing
	Wallet Wallet
	// Credentials are the L2 API credentials (key, secret, passphrase)
	Credentials signer.Credentials
	// Attributor enables delegated attribution signing when set
	Attributor *attributor.Config
	// BaseURL for the CLOB API. Defaults to mainnet.
	BaseURL string
	// Timeout is the per-request deadline
	Timeout time.Duration
	// MaxRetries bounds retries of transient failures
	MaxRetries int
	// Debug enables transport logging
	Debug bool
}

// Client provides access to the CLOB trading, auth and market-data
// operations. Immutable after construction; safe for concurrent use.
type Client struct {
	rest        *rest.Client
	wallet      Wallet
	credentials signer.Credentials
	signer      *signer.Signer
	attributor  *attributor.Attributor
}

// New creates a new CLOB client. The wallet's chain id must be one the
// exchange is deployed on.
func New(cfg Config) (*Client, error) {
	if cfg.Wallet == nil {
		return nil, fmt.Errorf("wallet is required")
	}
	if _, err := constants.GetContractConfig(cfg.Wallet.ChainID()); err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = constants.MAINNET_API_URL
	}

	restClient := rest.New(rest.Config{
		BaseURL:    baseURL,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		Debug:      cfg.Debug,
	})

	var attr *attributor.Attributor
	if cfg.Attributor != nil {
		attr = attributor.New(*cfg.Attributor)
	}

	return &Client{
		rest:        restClient,
		wallet:      cfg.Wallet,
		credentials: cfg.Credentials,
		signer:      signer.New(cfg.Credentials),
		attributor:  attr,
	}, nil
}

// authKind selects which authentication headers a call carries
type authKind int

const (
	authNone authKind = iota
	authL1
	authL2
	authL2WithAttribution
)

// auth describes the authentication of one call
type auth struct {
	kind      authKind
	nonce     int64
	timestamp mo.Option[int64]
}

func noAuth() auth {
	return auth{kind: authNone}
}

func l1Auth(nonce int64) auth {
	return auth{kind: authL1, nonce: nonce}
}

func l2Auth() auth {
	return auth{kind: authL2}
}

func l2AuthWithAttribution() auth {
	return auth{kind: authL2WithAttribution}
}

// request executes one API call with the declared authentication. The body
// is marshalled exactly once: the same bytes feed the HMAC message and the
// wire, and the signed path is the exact request path, so signature and
// request can never drift apart.
func (c *Client) request(
	ctx context.Context,
	method signer.Method,
	path string,
	a auth,
	body any,
	params map[string]string,
	result any,
) error {
	var raw json.RawMessage
	bodyStr := mo.None[string]()
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return rest.NewValidationError("failed to encode request body", err.Error())
		}
		raw = b
		bodyStr = mo.Some(string(b))
	}

	headers := map[string]string{
		"Accept":     "*/*",
		"User-Agent": "dicedhq/go-polymarket",
	}

	switch a.kind {
	case authNone:
		// no additional headers

	case authL1:
		l1, err := createL1Headers(c.wallet, a.nonce, a.timestamp)
		if err != nil {
			return err
		}
		mergeHeaders(headers, l1)

	case authL2, authL2WithAttribution:
		payload, err := c.signer.CreateHeaderPayload(method, path, bodyStr, mo.None[int64]())
		if err != nil {
			return err
		}
		mergeHeaders(headers, createL2Headers(c.wallet.Address().Hex(), payload))

		if a.kind == authL2WithAttribution && c.attributor != nil {
			attributionHeaders, err := c.attributor.Sign(ctx, method, path, bodyStr, mo.None[int64]())
			if err != nil {
				return err
			}
			mergeHeaders(headers, attributionHeaders)
		}
	}

	return c.rest.Do(ctx, rest.Request{
		Method:  string(method),
		Path:    path,
		Headers: headers,
		Params:  params,
		Body:    raw,
	}, result)
}

func mergeHeaders(dst map[string]string, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
