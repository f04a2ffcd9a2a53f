package clob

import (
	"fmt"
	"math/big"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/dicedhq/go-polymarket/internal/utils"
	"github.com/dicedhq/go-polymarket/rest"
)

// sizeDecimals is the precision shares are quoted at
const sizeDecimals = 2

// orderAmounts are the raw integer maker/taker amounts of an order
type orderAmounts struct {
	maker string
	taker string
}

// validateTokenID rejects blank or non-numeric token ids
func validateTokenID(tokenID string) error {
	if strings.TrimSpace(tokenID) == "" {
		return rest.NewValidationError("tokenId must not be empty", nil)
	}
	if _, ok := new(big.Int).SetString(tokenID, 10); !ok {
		return rest.NewValidationError(fmt.Sprintf("invalid tokenId: %q", tokenID), nil)
	}
	return nil
}

// validateOrderIntent rejects malformed order parameters before any signing
// or network activity happens.
func validateOrderIntent(side Side, price, size float64, tickSize TickSize) error {
	if _, err := side.Number(); err != nil {
		return rest.NewValidationError(err.Error(), nil)
	}
	if price <= 0 || price > 1 {
		return rest.NewValidationError("price must be in (0, 1]", map[string]any{"price": price})
	}
	if size <= 0 {
		return rest.NewValidationError("size must be positive", map[string]any{"size": size})
	}
	if !tickSize.valid() {
		return rest.NewValidationError(fmt.Sprintf("unsupported tick size: %q", tickSize), nil)
	}
	return nil
}

// calculateOrderAmounts converts a price/size intent into the raw integer
// maker and taker amounts the exchange contract settles on.
//
// Shares are rounded to 2 decimals, the price to the market's tick
// precision, and the cost to tickDecimals+2. The raw conversion floors so
// the committed amount never overstates what is owed. The side asymmetry is
// the financial core: a BUY maker supplies cost and receives shares, a SELL
// maker the reverse.
func calculateOrderAmounts(side Side, size, price float64, tickSize TickSize) (orderAmounts, error) {
	if err := validateOrderIntent(side, price, size, tickSize); err != nil {
		return orderAmounts{}, err
	}

	tickDecimals := utils.TickDecimals(string(tickSize))
	amountDecimals := tickDecimals + sizeDecimals

	roundedPrice := utils.RoundTo(price, tickDecimals)
	shares := utils.RoundTo(size, sizeDecimals)
	cost := utils.RoundTo(shares*roundedPrice, amountDecimals)

	sharesRaw := utils.ShiftToRaw(shares, sizeDecimals)
	costRaw := utils.ShiftToRaw(cost, amountDecimals)

	if side == SideBuy {
		// BUY: maker gives collateral, gets shares
		return orderAmounts{maker: costRaw, taker: sharesRaw}, nil
	}
	// SELL: maker gives shares, gets collateral
	return orderAmounts{maker: sharesRaw, taker: costRaw}, nil
}

// generateSalt returns a random salt keeping signed orders unique.
// Bounded so the value survives the venue's float64 JSON parsing intact.
func generateSalt() string {
	limit := time.Now().UnixMilli()
	return strconv.FormatInt(rand.Int64N(limit), 10)
}

// wireOrder is the order submission payload shape the venue expects:
// salt as an integer, side as "0"/"1", signatureType as an integer.
type wireOrder struct {
	Salt          int64  `json:"salt"`
	Maker         string `json:"maker"`
	Signer        string `json:"signer"`
	Taker         string `json:"taker"`
	TokenID       string `json:"tokenId"`
	MakerAmount   string `json:"makerAmount"`
	TakerAmount   string `json:"takerAmount"`
	Expiration    string `json:"expiration"`
	Nonce         string `json:"nonce"`
	FeeRateBps    string `json:"feeRateBps"`
	Side          string `json:"side"`
	SignatureType int    `json:"signatureType"`
	Signature     string `json:"signature"`
}

func toWireOrder(order SignedOrder) (wireOrder, error) {
	salt, err := strconv.ParseInt(order.Salt, 10, 64)
	if err != nil {
		return wireOrder{}, fmt.Errorf("invalid order salt %q: %w", order.Salt, err)
	}

	sideNum, err := order.Side.Number()
	if err != nil {
		return wireOrder{}, err
	}

	return wireOrder{
		Salt:          salt,
		Maker:         order.Maker,
		Signer:        order.Signer,
		Taker:         order.Taker,
		TokenID:       order.TokenID,
		MakerAmount:   order.MakerAmount,
		TakerAmount:   order.TakerAmount,
		Expiration:    order.Expiration,
		Nonce:         order.Nonce,
		FeeRateBps:    order.FeeRateBps,
		Side:          strconv.FormatInt(sideNum, 10),
		SignatureType: int(order.SignatureType),
		Signature:     order.Signature,
	}, nil
}
