package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TransactionRequest is the payload handed to a wallet client for signing
// and submission. Nonce, gas and fees are filled in by the client.
type TransactionRequest struct {
	To    common.Address
	Value *big.Int
	Data  []byte
}

// TransactionOutcome tracks a submitted transaction until it is mined.
type TransactionOutcome struct {
	Hash        common.Hash `json:"hash"`
	Confirmed   bool        `json:"confirmed"`
	BlockNumber uint64      `json:"block_number,omitempty"`
	Reverted    bool        `json:"reverted,omitempty"`
}

// NewTransactionOutcome returns an unconfirmed outcome for hash.
func NewTransactionOutcome(hash common.Hash) *TransactionOutcome {
	return &TransactionOutcome{Hash: hash}
}

// Confirm records the block the transaction was mined in. Once confirmed
// the outcome is terminal.
func (o *TransactionOutcome) Confirm(blockNumber uint64, succeeded bool) {
	if o.Confirmed {
		return
	}
	o.Confirmed = true
	o.BlockNumber = blockNumber
	o.Reverted = !succeeded
}
