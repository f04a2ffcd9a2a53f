package clob

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/samber/mo"

	"github.com/dicedhq/go-polymarket/constants"
)

// signClobAuth signs the fixed attestation message proving control of the
// wallet. Used only when minting or deriving API credentials.
func signClobAuth(
	wallet Wallet,
	timestamp int64,
	nonce int64,
) (string, error) {
	typedData := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": {
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
			},
			"ClobAuth": {
				{Name: "address", Type: "address"},
				{Name: "timestamp", Type: "string"},
				{Name: "nonce", Type: "uint256"},
				{Name: "message", Type: "string"},
			},
		},
		PrimaryType: "ClobAuth",
		Domain: apitypes.TypedDataDomain{
			Name:    constants.CLOB_AUTH_DOMAIN_NAME,
			Version: constants.CLOB_AUTH_DOMAIN_VERSION,
			ChainId: math.NewHexOrDecimal256(wallet.ChainID()),
		},
		Message: apitypes.TypedDataMessage{
			"address":   wallet.Address().Hex(),
			"timestamp": strconv.FormatInt(timestamp, 10),
			"nonce":     big.NewInt(nonce),
			"message":   constants.CLOB_AUTH_MESSAGE,
		},
	}

	return wallet.SignTypedData(typedData)
}

// signOrder signs an order against the exchange contract for the wallet's
// chain. The order is immutable once signed; changing any field invalidates
// the signature.
func signOrder(
	wallet Wallet,
	order Order,
	verifyingContract common.Address,
) (string, error) {
	message, err := orderToTypedDataMessage(order)
	if err != nil {
		return "", err
	}

	typedData := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": {
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			"Order": {
				{Name: "salt", Type: "uint256"},
				{Name: "maker", Type: "address"},
				{Name: "signer", Type: "address"},
				{Name: "taker", Type: "address"},
				{Name: "tokenId", Type: "uint256"},
				{Name: "makerAmount", Type: "uint256"},
				{Name: "takerAmount", Type: "uint256"},
				{Name: "expiration", Type: "uint256"},
				{Name: "nonce", Type: "uint256"},
				{Name: "feeRateBps", Type: "uint256"},
				{Name: "side", Type: "uint8"},
				{Name: "signatureType", Type: "uint8"},
			},
		},
		PrimaryType: "Order",
		Domain: apitypes.TypedDataDomain{
			Name:              constants.EXCHANGE_DOMAIN_NAME,
			Version:           constants.EXCHANGE_DOMAIN_VERSION,
			ChainId:           math.NewHexOrDecimal256(wallet.ChainID()),
			VerifyingContract: verifyingContract.Hex(),
		},
		Message: message,
	}

	return wallet.SignTypedData(typedData)
}

func orderToTypedDataMessage(order Order) (apitypes.TypedDataMessage, error) {
	sideNum, err := order.Side.Number()
	if err != nil {
		return nil, err
	}

	numerics := map[string]string{
		"salt":        order.Salt,
		"tokenId":     order.TokenID,
		"makerAmount": order.MakerAmount,
		"takerAmount": order.TakerAmount,
		"expiration":  order.Expiration,
		"nonce":       order.Nonce,
		"feeRateBps":  order.FeeRateBps,
	}

	message := apitypes.TypedDataMessage{
		"maker":         common.HexToAddress(order.Maker).Hex(),
		"signer":        common.HexToAddress(order.Signer).Hex(),
		"taker":         common.HexToAddress(order.Taker).Hex(),
		"side":          big.NewInt(sideNum),
		"signatureType": big.NewInt(int64(order.SignatureType)),
	}

	for field, value := range numerics {
		n, ok := new(big.Int).SetString(value, 10)
		if !ok {
			return nil, fmt.Errorf("order field %s is not a decimal integer: %q", field, value)
		}
		message[field] = n
	}

	return message, nil
}

// exchangeAddress picks the verifying contract for the wallet's chain,
// switching to the neg-risk exchange for neg-risk markets.
func exchangeAddress(chainID int64, negRisk bool) (common.Address, error) {
	contracts, err := constants.GetContractConfig(chainID)
	if err != nil {
		return common.Address{}, err
	}
	if negRisk {
		return contracts.NegRiskExchange, nil
	}
	return contracts.Exchange, nil
}

// resolveTimestamp returns ts when present, otherwise the current Unix time
func resolveTimestamp(ts mo.Option[int64], now func() int64) int64 {
	if v, ok := ts.Get(); ok {
		return v
	}
	return now()
}
