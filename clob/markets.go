package clob

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dicedhq/go-polymarket/signer"
)

// GetMarket fetches one market by condition id
func (c *Client) GetMarket(ctx context.Context, conditionID string) (Market, error) {
	var market Market
	err := c.request(ctx, signer.MethodGet, "/markets/"+conditionID, noAuth(), nil, nil, &market)
	return market, err
}

// ListMarkets fetches one page of markets. Pass the previous page's
// NextCursor to continue; an empty cursor starts from the beginning and
// "LTE=" marks the end.
func (c *Client) ListMarkets(ctx context.Context, cursor string) (ListMarketsResponse, error) {
	params := map[string]string{}
	if cursor != "" {
		params["next_cursor"] = cursor
	}

	var response ListMarketsResponse
	err := c.request(ctx, signer.MethodGet, "/markets", noAuth(), nil, params, &response)
	return response, err
}

type tickSizeResponse struct {
	MinimumTickSize float64 `json:"minimum_tick_size"`
}

// GetTickSize fetches the minimum price increment of a token's market
func (c *Client) GetTickSize(ctx context.Context, tokenID string) (TickSize, error) {
	var response tickSizeResponse
	err := c.request(ctx, signer.MethodGet, "/tick-size", noAuth(), nil, map[string]string{"token_id": tokenID}, &response)
	if err != nil {
		return "", err
	}

	tickSize := TickSize(strconv.FormatFloat(response.MinimumTickSize, 'f', -1, 64))
	if !tickSize.valid() {
		return "", fmt.Errorf("venue reported unsupported tick size %v for token %s", response.MinimumTickSize, tokenID)
	}
	return tickSize, nil
}

type negRiskResponse struct {
	NegRisk bool `json:"neg_risk"`
}

// GetNegRisk reports whether a token trades on the neg-risk exchange
func (c *Client) GetNegRisk(ctx context.Context, tokenID string) (bool, error) {
	var response negRiskResponse
	err := c.request(ctx, signer.MethodGet, "/neg-risk", noAuth(), nil, map[string]string{"token_id": tokenID}, &response)
	return response.NegRisk, err
}

type feeRateResponse struct {
	BaseFee int64 `json:"base_fee"`
}

// GetFeeRateBps fetches the fee rate, in basis points, charged on a token's
// market
func (c *Client) GetFeeRateBps(ctx context.Context, tokenID string) (int64, error) {
	var response feeRateResponse
	err := c.request(ctx, signer.MethodGet, "/fee-rate", noAuth(), nil, map[string]string{"token_id": tokenID}, &response)
	return response.BaseFee, err
}

// GetPrice fetches the best resting price for a token and side
func (c *Client) GetPrice(ctx context.Context, tokenID string, side Side) (PriceResponse, error) {
	params := map[string]string{
		"token_id": tokenID,
		"side":     string(side),
	}

	var response PriceResponse
	err := c.request(ctx, signer.MethodGet, "/price", noAuth(), nil, params, &response)
	return response, err
}

// GetMidpoint fetches the midpoint between best bid and best ask
func (c *Client) GetMidpoint(ctx context.Context, tokenID string) (MidpointResponse, error) {
	var response MidpointResponse
	err := c.request(ctx, signer.MethodGet, "/midpoint", noAuth(), nil, map[string]string{"token_id": tokenID}, &response)
	return response, err
}

// GetOrderBook fetches the book snapshot for a token
func (c *Client) GetOrderBook(ctx context.Context, tokenID string) (OrderBook, error) {
	var book OrderBook
	err := c.request(ctx, signer.MethodGet, "/book", noAuth(), nil, map[string]string{"token_id": tokenID}, &book)
	return book, err
}

// GetServerTime fetches the venue's clock, in Unix seconds
func (c *Client) GetServerTime(ctx context.Context) (int64, error) {
	var response ServerTimeResponse
	err := c.request(ctx, signer.MethodGet, "/time", noAuth(), nil, nil, &response)
	return int64(response), err
}
