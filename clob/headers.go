package clob

import (
	"strconv"
	"time"

	"github.com/samber/mo"

	"github.com/dicedhq/go-polymarket/signer"
)

// Authentication header names understood by the CLOB API
const (
	HeaderPolyAddress    = "POLY_ADDRESS"
	HeaderPolySignature  = "POLY_SIGNATURE"
	HeaderPolyTimestamp  = "POLY_TIMESTAMP"
	HeaderPolyNonce      = "POLY_NONCE"
	HeaderPolyAPIKey     = "POLY_API_KEY"
	HeaderPolyPassphrase = "POLY_PASSPHRASE"
)

// createL1Headers builds the wallet-proof headers used to mint or derive
// API credentials. Nonce defaults to 0 upstream; timestamp defaults to the
// current Unix time.
func createL1Headers(
	wallet Wallet,
	nonce int64,
	timestamp mo.Option[int64],
) (map[string]string, error) {
	ts := resolveTimestamp(timestamp, func() int64 { return time.Now().Unix() })

	signature, err := signClobAuth(wallet, ts, nonce)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		HeaderPolyAddress:   wallet.Address().Hex(),
		HeaderPolySignature: signature,
		HeaderPolyTimestamp: strconv.FormatInt(ts, 10),
		HeaderPolyNonce:     strconv.FormatInt(nonce, 10),
	}, nil
}

// createL2Headers builds the API-key headers used for ordinary trading
// calls from an HMAC header payload.
func createL2Headers(address string, payload signer.HeaderPayload) map[string]string {
	return map[string]string{
		HeaderPolyAddress:    address,
		HeaderPolySignature:  payload.Signature,
		HeaderPolyTimestamp:  strconv.FormatInt(payload.Timestamp, 10),
		HeaderPolyAPIKey:     payload.Key,
		HeaderPolyPassphrase: payload.Passphrase,
	}
}
