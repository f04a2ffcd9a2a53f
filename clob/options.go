package clob

import (
	"github.com/samber/mo"
)

/*//////////////////////////////////////////////////////////////
                          CREATE ORDER
//////////////////////////////////////////////////////////////*/

// CreateOrderOption is a functional option for order creation
type CreateOrderOption func(*createOrderConfig)

type createOrderConfig struct {
	taker         mo.Option[string]
	expiration    int64
	nonce         int64
	feeRateBps    mo.Option[int64]
	tickSize      mo.Option[TickSize]
	negRisk       mo.Option[bool]
	signatureType SignatureType
}

func defaultCreateOrderConfig() createOrderConfig {
	return createOrderConfig{signatureType: SignatureTypeEOA}
}

// WithOrderTaker restricts the order to a specific taker address.
// By default anyone may fill the order.
func WithOrderTaker(address string) CreateOrderOption {
	return func(cfg *createOrderConfig) {
		cfg.taker = mo.Some(address)
	}
}

// WithOrderExpiration sets the expiration as a Unix timestamp. Zero, the
// default, means the order never expires.
func WithOrderExpiration(expiration int64) CreateOrderOption {
	return func(cfg *createOrderConfig) {
		cfg.expiration = expiration
	}
}

// WithOrderNonce sets the maker nonce the order is signed under
func WithOrderNonce(nonce int64) CreateOrderOption {
	return func(cfg *createOrderConfig) {
		cfg.nonce = nonce
	}
}

// WithOrderFeeRateBps overrides the fee rate instead of resolving it from
// the market
func WithOrderFeeRateBps(feeRateBps int64) CreateOrderOption {
	return func(cfg *createOrderConfig) {
		cfg.feeRateBps = mo.Some(feeRateBps)
	}
}

// WithOrderTickSize overrides the tick size instead of resolving it from
// the market, saving a round trip when the caller already knows it
func WithOrderTickSize(tickSize TickSize) CreateOrderOption {
	return func(cfg *createOrderConfig) {
		cfg.tickSize = mo.Some(tickSize)
	}
}

// WithOrderNegRisk marks the order for the neg-risk exchange instead of
// resolving the flag from the market
func WithOrderNegRisk(negRisk bool) CreateOrderOption {
	return func(cfg *createOrderConfig) {
		cfg.negRisk = mo.Some(negRisk)
	}
}

// WithOrderSignatureType sets how the venue should verify the order
// signature. Defaults to EOA.
func WithOrderSignatureType(signatureType SignatureType) CreateOrderOption {
	return func(cfg *createOrderConfig) {
		cfg.signatureType = signatureType
	}
}

/*//////////////////////////////////////////////////////////////
                          LIST ORDERS
//////////////////////////////////////////////////////////////*/

// ListOrdersOption is a functional option for listing open orders
type ListOrdersOption func(*listOrdersConfig)

type listOrdersConfig struct {
	market  mo.Option[string]
	assetID mo.Option[string]
}

// WithOrdersMarket filters open orders by market (condition id)
func WithOrdersMarket(market string) ListOrdersOption {
	return func(cfg *listOrdersConfig) {
		cfg.market = mo.Some(market)
	}
}

// WithOrdersAssetID filters open orders by asset (token id)
func WithOrdersAssetID(assetID string) ListOrdersOption {
	return func(cfg *listOrdersConfig) {
		cfg.assetID = mo.Some(assetID)
	}
}

/*//////////////////////////////////////////////////////////////
                            TRADES
//////////////////////////////////////////////////////////////*/

// ListTradesOption is a functional option for listing trades
type ListTradesOption func(*listTradesConfig)

type listTradesConfig struct {
	market       mo.Option[string]
	assetID      mo.Option[string]
	makerAddress mo.Option[string]
	nextCursor   mo.Option[string]
}

// WithTradesMarket filters trades by market (condition id)
func WithTradesMarket(market string) ListTradesOption {
	return func(cfg *listTradesConfig) {
		cfg.market = mo.Some(market)
	}
}

// WithTradesAssetID filters trades by asset (token id)
func WithTradesAssetID(assetID string) ListTradesOption {
	return func(cfg *listTradesConfig) {
		cfg.assetID = mo.Some(assetID)
	}
}

// WithTradesMakerAddress filters trades by maker address
func WithTradesMakerAddress(address string) ListTradesOption {
	return func(cfg *listTradesConfig) {
		cfg.makerAddress = mo.Some(address)
	}
}

// WithTradesCursor resumes listing from a pagination cursor
func WithTradesCursor(cursor string) ListTradesOption {
	return func(cfg *listTradesConfig) {
		cfg.nextCursor = mo.Some(cursor)
	}
}
