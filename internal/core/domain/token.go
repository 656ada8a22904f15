package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// MintFunctionSignature is the ERC-1155 style mint entrypoint called by Mint.
const MintFunctionSignature = "mint(address,uint256,uint256,bytes)"

// MintCall holds the arguments of a mint(address,uint256,uint256,bytes) call.
type MintCall struct {
	Contract  common.Address // transaction target
	Recipient common.Address
	TokenID   *big.Int
	Amount    *big.Int
	Data      []byte
}

// DemoMintCall returns the fixed placeholder mint: null contract, null
// recipient, id 1, amount 1, empty data.
func DemoMintCall() MintCall {
	return MintCall{
		Contract:  common.Address{},
		Recipient: common.Address{},
		TokenID:   big.NewInt(1),
		Amount:    big.NewInt(1),
		Data:      []byte{},
	}
}
