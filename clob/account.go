package clob

import (
	"context"

	"github.com/dicedhq/go-polymarket/signer"
)

// AssetType selects which balance a balance-allowance query reports
type AssetType string

const (
	// AssetTypeCollateral is the USDC collateral balance
	AssetTypeCollateral AssetType = "COLLATERAL"
	// AssetTypeConditional is an outcome token balance
	AssetTypeConditional AssetType = "CONDITIONAL"
)

// GetBalanceAllowance reports the account's balance and exchange allowance
// for the collateral token, or for one outcome token when assetType is
// CONDITIONAL and tokenID is set.
func (c *Client) GetBalanceAllowance(ctx context.Context, assetType AssetType, tokenID string) (BalanceAllowanceResponse, error) {
	params := map[string]string{"asset_type": string(assetType)}
	if tokenID != "" {
		params["token_id"] = tokenID
	}

	var response BalanceAllowanceResponse
	err := c.request(ctx, signer.MethodGet, "/balance-allowance", l2Auth(), nil, params, &response)
	return response, err
}
