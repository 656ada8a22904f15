package safe

import (
	"fmt"
	"math/big"
	"strings"

	"safe-wallet-service/internal/core/domain"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"
)

const safeABIJSON = `[{
	"inputs": [
		{"internalType": "address[]", "name": "_owners", "type": "address[]"},
		{"internalType": "uint256", "name": "_threshold", "type": "uint256"},
		{"internalType": "address", "name": "to", "type": "address"},
		{"internalType": "bytes", "name": "data", "type": "bytes"},
		{"internalType": "address", "name": "fallbackHandler", "type": "address"},
		{"internalType": "address", "name": "paymentToken", "type": "address"},
		{"internalType": "uint256", "name": "payment", "type": "uint256"},
		{"internalType": "address payable", "name": "paymentReceiver", "type": "address"}
	],
	"name": "setup",
	"outputs": [],
	"stateMutability": "nonpayable",
	"type": "function"
}]`

const proxyFactoryABIJSON = `[{
	"inputs": [
		{"internalType": "address", "name": "_singleton", "type": "address"},
		{"internalType": "bytes", "name": "initializer", "type": "bytes"},
		{"internalType": "uint256", "name": "saltNonce", "type": "uint256"}
	],
	"name": "createProxyWithNonce",
	"outputs": [{"internalType": "contract SafeProxy", "name": "proxy", "type": "address"}],
	"stateMutability": "nonpayable",
	"type": "function"
}, {
	"inputs": [],
	"name": "proxyCreationCode",
	"outputs": [{"internalType": "bytes", "name": "", "type": "bytes"}],
	"stateMutability": "pure",
	"type": "function"
}]`

var (
	safeABI         = mustParseABI(safeABIJSON)
	proxyFactoryABI = mustParseABI(proxyFactoryABIJSON)
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parse abi: %v", err))
	}
	return parsed
}

// EncodeSetup builds the Safe initializer: setup(owners, threshold, 0x0,
// 0x, fallbackHandler, 0x0, 0, 0x0).
func EncodeSetup(account domain.SafeAccountConfig, fallbackHandler common.Address) ([]byte, error) {
	if err := account.Validate(); err != nil {
		return nil, err
	}
	data, err := safeABI.Pack("setup",
		account.Owners,
		big.NewInt(int64(account.Threshold)),
		common.Address{},
		[]byte{},
		fallbackHandler,
		common.Address{},
		big.NewInt(0),
		common.Address{},
	)
	if err != nil {
		return nil, fmt.Errorf("encode setup: %w", err)
	}
	return data, nil
}

// Salt is keccak256(keccak256(initializer) ++ uint256(saltNonce)), the
// salt the proxy factory passes to CREATE2.
func Salt(initializer []byte, saltNonce *big.Int) common.Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(keccak(initializer))
	h.Write(common.LeftPadBytes(saltNonce.Bytes(), 32))
	return common.BytesToHash(h.Sum(nil))
}

// PredictAddress computes the CREATE2 address of a proxy for singleton
// deployed by factory with salt.
func PredictAddress(factory, singleton common.Address, proxyCreationCode []byte, salt common.Hash) common.Address {
	initCode := make([]byte, 0, len(proxyCreationCode)+32)
	initCode = append(initCode, proxyCreationCode...)
	initCode = append(initCode, common.LeftPadBytes(singleton.Bytes(), 32)...)
	return crypto.CreateAddress2(factory, salt, keccak(initCode))
}

// EncodeCreateProxyWithNonce builds the factory call that deploys the proxy.
func EncodeCreateProxyWithNonce(singleton common.Address, initializer []byte, saltNonce *big.Int) ([]byte, error) {
	data, err := proxyFactoryABI.Pack("createProxyWithNonce", singleton, initializer, saltNonce)
	if err != nil {
		return nil, fmt.Errorf("encode createProxyWithNonce: %w", err)
	}
	return data, nil
}

func keccak(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}
