package constants

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

const MAINNET_API_URL = "https://clob.polymarket.com"
const LOCAL_API_URL = "http://localhost:8080"

const POLYGON_CHAIN_ID = 137
const AMOY_CHAIN_ID = 80002

var ZERO_ADDRESS = common.Address{}

// CLOB auth domain, used for L1 wallet-proof signatures
const CLOB_AUTH_DOMAIN_NAME = "ClobAuthDomain"
const CLOB_AUTH_DOMAIN_VERSION = "1"
const CLOB_AUTH_MESSAGE = "This message attests that I control the given wallet"

// Exchange domain, used for order signatures
const EXCHANGE_DOMAIN_NAME = "Polymarket CTF Exchange"
const EXCHANGE_DOMAIN_VERSION = "1"

// ContractConfig holds the deployed contract addresses for one chain
type ContractConfig struct {
	Exchange          common.Address
	NegRiskExchange   common.Address
	NegRiskAdapter    common.Address
	Collateral        common.Address
	ConditionalTokens common.Address
}

var polygonContracts = ContractConfig{
	Exchange:          common.HexToAddress("0x4bFb41d5B3570DeFd03C39a9A4D8dE6Bd8B8982E"),
	NegRiskExchange:   common.HexToAddress("0xC5d563A36AE78145C45a50134d48A1215220f80a"),
	NegRiskAdapter:    common.HexToAddress("0xd91E80cF2E7be2e162c6513ceD06f1dD0dA35296"),
	Collateral:        common.HexToAddress("0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174"),
	ConditionalTokens: common.HexToAddress("0x4D97DCd97eC945f40cF65F87097ACe5EA0476045"),
}

var amoyContracts = ContractConfig{
	Exchange:          common.HexToAddress("0xdFE02Eb6733538f8Ea35D585af8DE5958AD99E40"),
	NegRiskExchange:   common.HexToAddress("0xC5d563A36AE78145C45a50134d48A1215220f80a"),
	NegRiskAdapter:    common.HexToAddress("0xd91E80cF2E7be2e162c6513ceD06f1dD0dA35296"),
	Collateral:        common.HexToAddress("0x9c4e1703476e875070ee25b56a58b008cfb8fa78"),
	ConditionalTokens: common.HexToAddress("0x69308FB512518e39F9b16112fA8d994F4e2Bf8bB"),
}

// GetContractConfig returns the contract addresses for a chain id.
// An unknown chain id is a configuration error, not a runtime condition.
func GetContractConfig(chainID int64) (ContractConfig, error) {
	switch chainID {
	case POLYGON_CHAIN_ID:
		return polygonContracts, nil
	case AMOY_CHAIN_ID:
		return amoyContracts, nil
	default:
		return ContractConfig{}, fmt.Errorf("unsupported chain id: %d", chainID)
	}
}
