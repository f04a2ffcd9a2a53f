package clob

import (
	"context"
	"fmt"

	"github.com/dicedhq/go-polymarket/constants"
	"github.com/dicedhq/go-polymarket/signer"
)

// CreateOrderParams is the human order intent
type CreateOrderParams struct {
	// TokenID of the outcome token being traded
	TokenID string
	// Side of the order
	Side Side
	// Price per share, in (0, 1]
	Price float64
	// Size in shares
	Size float64
}

// CreateOrder builds and signs an order without submitting it. Tick size,
// the neg-risk flag and the fee rate are resolved from the venue unless
// provided via options; all input validation happens before any network
// call or signature.
func (c *Client) CreateOrder(
	ctx context.Context,
	params CreateOrderParams,
	opts ...CreateOrderOption,
) (SignedOrder, error) {
	cfg := defaultCreateOrderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validateTokenID(params.TokenID); err != nil {
		return SignedOrder{}, err
	}
	// Validate the intent against the coarsest tick before resolving the
	// real one, so bad input never reaches the network
	if err := validateOrderIntent(params.Side, params.Price, params.Size, TickSize01); err != nil {
		return SignedOrder{}, err
	}

	tickSize, err := c.resolveTickSize(ctx, params.TokenID, cfg)
	if err != nil {
		return SignedOrder{}, err
	}

	negRisk, err := c.resolveNegRisk(ctx, params.TokenID, cfg)
	if err != nil {
		return SignedOrder{}, err
	}

	feeRateBps, err := c.resolveFeeRateBps(ctx, params.TokenID, cfg)
	if err != nil {
		return SignedOrder{}, err
	}

	amounts, err := calculateOrderAmounts(params.Side, params.Size, params.Price, tickSize)
	if err != nil {
		return SignedOrder{}, err
	}

	maker := c.wallet.Address().Hex()
	taker := constants.ZERO_ADDRESS.Hex()
	if t, ok := cfg.taker.Get(); ok {
		taker = t
	}

	order := Order{
		Salt:          generateSalt(),
		Maker:         maker,
		Signer:        maker,
		Taker:         taker,
		TokenID:       params.TokenID,
		MakerAmount:   amounts.maker,
		TakerAmount:   amounts.taker,
		Expiration:    fmt.Sprintf("%d", cfg.expiration),
		Nonce:         fmt.Sprintf("%d", cfg.nonce),
		FeeRateBps:    fmt.Sprintf("%d", feeRateBps),
		Side:          params.Side,
		SignatureType: cfg.signatureType,
	}

	verifyingContract, err := exchangeAddress(c.wallet.ChainID(), negRisk)
	if err != nil {
		return SignedOrder{}, err
	}

	signature, err := signOrder(c.wallet, order, verifyingContract)
	if err != nil {
		return SignedOrder{}, fmt.Errorf("failed to sign order: %w", err)
	}

	return SignedOrder{Order: order, Signature: signature}, nil
}

func (c *Client) resolveTickSize(ctx context.Context, tokenID string, cfg createOrderConfig) (TickSize, error) {
	if tickSize, ok := cfg.tickSize.Get(); ok {
		return tickSize, nil
	}
	return c.GetTickSize(ctx, tokenID)
}

func (c *Client) resolveNegRisk(ctx context.Context, tokenID string, cfg createOrderConfig) (bool, error) {
	if negRisk, ok := cfg.negRisk.Get(); ok {
		return negRisk, nil
	}
	return c.GetNegRisk(ctx, tokenID)
}

func (c *Client) resolveFeeRateBps(ctx context.Context, tokenID string, cfg createOrderConfig) (int64, error) {
	if feeRateBps, ok := cfg.feeRateBps.Get(); ok {
		return feeRateBps, nil
	}
	return c.GetFeeRateBps(ctx, tokenID)
}

// postOrderPayload is the order submission envelope
type postOrderPayload struct {
	Owner     string    `json:"owner"`
	OrderType OrderKind `json:"orderType"`
	Order     wireOrder `json:"order"`
}

// PostOrder submits a signed order. The submission carries the order's own
// signature type; attribution headers are attached when an attributor is
// configured.
func (c *Client) PostOrder(ctx context.Context, order SignedOrder, kind OrderKind) (OrderResponse, error) {
	wire, err := toWireOrder(order)
	if err != nil {
		return OrderResponse{}, err
	}

	payload := postOrderPayload{
		Owner:     c.credentials.Key,
		OrderType: kind,
		Order:     wire,
	}

	var response OrderResponse
	err = c.request(ctx, signer.MethodPost, "/order", l2AuthWithAttribution(), payload, nil, &response)
	return response, err
}

// CreateAndPostOrder builds, signs and submits an order in one step
func (c *Client) CreateAndPostOrder(
	ctx context.Context,
	params CreateOrderParams,
	kind OrderKind,
	opts ...CreateOrderOption,
) (OrderResponse, error) {
	order, err := c.CreateOrder(ctx, params, opts...)
	if err != nil {
		return OrderResponse{}, err
	}
	return c.PostOrder(ctx, order, kind)
}

// CancelOrder cancels a single order by id
func (c *Client) CancelOrder(ctx context.Context, orderID string) (CancelResponse, error) {
	var response CancelResponse
	err := c.request(ctx, signer.MethodDelete, "/order", l2Auth(), map[string]string{"orderID": orderID}, nil, &response)
	return response, err
}

// CancelOrders cancels multiple orders by id
func (c *Client) CancelOrders(ctx context.Context, orderIDs []string) (CancelResponse, error) {
	var response CancelResponse
	err := c.request(ctx, signer.MethodDelete, "/orders", l2Auth(), orderIDs, nil, &response)
	return response, err
}

// CancelAll cancels every resting order of the account
func (c *Client) CancelAll(ctx context.Context) (CancelResponse, error) {
	var response CancelResponse
	err := c.request(ctx, signer.MethodDelete, "/cancel-all", l2Auth(), nil, nil, &response)
	return response, err
}

// CancelMarketOrders cancels the account's resting orders in one market
func (c *Client) CancelMarketOrders(ctx context.Context, market, assetID string) (CancelResponse, error) {
	body := map[string]string{"market": market, "asset_id": assetID}

	var response CancelResponse
	err := c.request(ctx, signer.MethodDelete, "/cancel-market-orders", l2Auth(), body, nil, &response)
	return response, err
}

// GetOrder fetches one order by id. The order id is part of the request
// path and therefore part of the signed message.
func (c *Client) GetOrder(ctx context.Context, orderID string) (OpenOrder, error) {
	var order OpenOrder
	err := c.request(ctx, signer.MethodGet, "/data/order/"+orderID, l2Auth(), nil, nil, &order)
	return order, err
}

type orderScoringResponse struct {
	Scoring bool `json:"scoring"`
}

// IsOrderScoring reports whether a resting order currently counts toward
// liquidity rewards
func (c *Client) IsOrderScoring(ctx context.Context, orderID string) (bool, error) {
	var response orderScoringResponse
	err := c.request(ctx, signer.MethodGet, "/order-scoring", l2Auth(), nil, map[string]string{"order_id": orderID}, &response)
	return response.Scoring, err
}

// ListOrders lists the account's open orders
func (c *Client) ListOrders(ctx context.Context, opts ...ListOrdersOption) ([]OpenOrder, error) {
	var cfg listOrdersConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	params := map[string]string{}
	if market, ok := cfg.market.Get(); ok {
		params["market"] = market
	}
	if assetID, ok := cfg.assetID.Get(); ok {
		params["asset_id"] = assetID
	}

	var orders []OpenOrder
	err := c.request(ctx, signer.MethodGet, "/data/orders", l2Auth(), nil, params, &orders)
	return orders, err
}

// ListTrades lists the account's trades
func (c *Client) ListTrades(ctx context.Context, opts ...ListTradesOption) ([]Trade, error) {
	var cfg listTradesConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	params := map[string]string{}
	if market, ok := cfg.market.Get(); ok {
		params["market"] = market
	}
	if assetID, ok := cfg.assetID.Get(); ok {
		params["asset_id"] = assetID
	}
	if address, ok := cfg.makerAddress.Get(); ok {
		params["maker_address"] = address
	}
	if cursor, ok := cfg.nextCursor.Get(); ok {
		params["next_cursor"] = cursor
	}

	var trades []Trade
	err := c.request(ctx, signer.MethodGet, "/data/trades", l2Auth(), nil, params, &trades)
	return trades, err
}
