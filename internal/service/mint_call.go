package service

import (
	"fmt"
	"strings"

	"safe-wallet-service/internal/core/domain"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const mintABIJSON = `[{
	"inputs": [
		{"internalType": "address", "name": "to", "type": "address"},
		{"internalType": "uint256", "name": "id", "type": "uint256"},
		{"internalType": "uint256", "name": "amount", "type": "uint256"},
		{"internalType": "bytes", "name": "data", "type": "bytes"}
	],
	"name": "mint",
	"outputs": [],
	"stateMutability": "nonpayable",
	"type": "function"
}]`

var mintABI = mustParseABI(mintABIJSON)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parse mint abi: %v", err))
	}
	return parsed
}

// EncodeMintCall ABI-encodes call as mint(address,uint256,uint256,bytes).
func EncodeMintCall(call domain.MintCall) ([]byte, error) {
	data, err := mintABI.Pack("mint", call.Recipient, call.TokenID, call.Amount, call.Data)
	if err != nil {
		return nil, fmt.Errorf("encode mint call: %w", err)
	}
	return data, nil
}
