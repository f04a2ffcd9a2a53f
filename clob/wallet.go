package clob

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// Wallet is the signing capability backing L1 authentication and order
// signatures. The client never touches key material itself; implementations
// may be a local key, a hardware wallet or a remote signer, so calls can be
// slow and can fail.
type Wallet interface {
	// Address returns the account address the signatures are bound to
	Address() common.Address
	// ChainID returns the chain the wallet is connected to
	ChainID() int64
	// SignTypedData signs an EIP-712 typed-data payload and returns the
	// 65-byte signature hex-encoded with a 0x prefix
	SignTypedData(typedData apitypes.TypedData) (string, error)
}

// PrivateKeyWallet signs with an in-memory ECDSA key
type PrivateKeyWallet struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
	chainID    int64
}

var _ Wallet = (*PrivateKeyWallet)(nil)

// NewPrivateKeyWallet creates a wallet from an ECDSA private key
func NewPrivateKeyWallet(privateKey *ecdsa.PrivateKey, chainID int64) (*PrivateKeyWallet, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("private key is required")
	}

	return &PrivateKeyWallet{
		privateKey: privateKey,
		address:    crypto.PubkeyToAddress(privateKey.PublicKey),
		chainID:    chainID,
	}, nil
}

// NewPrivateKeyWalletFromHex creates a wallet from a hex-encoded private key
func NewPrivateKeyWalletFromHex(hexKey string, chainID int64) (*PrivateKeyWallet, error) {
	privateKey, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return NewPrivateKeyWallet(privateKey, chainID)
}

func (w *PrivateKeyWallet) Address() common.Address {
	return w.address
}

func (w *PrivateKeyWallet) ChainID() int64 {
	return w.chainID
}

func (w *PrivateKeyWallet) SignTypedData(typedData apitypes.TypedData) (string, error) {
	hash, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return "", fmt.Errorf("failed generating hash for typed data: %w", err)
	}

	sig, err := crypto.Sign(hash, w.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign: %w", err)
	}

	if len(sig) != 65 {
		return "", fmt.Errorf("invalid signature length: %d", len(sig))
	}

	// Ethereum canonical V = 27 or 28
	if sig[64] < 27 {
		sig[64] += 27
	}

	return hexutil.Encode(sig), nil
}
