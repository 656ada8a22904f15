package evm

import (
	"fmt"
	"strings"

	"safe-wallet-service/internal/core/domain"
	"safe-wallet-service/internal/core/ports"

	"github.com/ethereum/go-ethereum/crypto"
)

// AccountDeriver parses hex private keys into signing accounts.
type AccountDeriver struct{}

// NewAccountDeriver creates an AccountDeriver.
func NewAccountDeriver() *AccountDeriver {
	return &AccountDeriver{}
}

// Derive accepts a 32-byte hex key with or without the 0x prefix. The
// all-zero key is not a valid secp256k1 scalar and yields the placeholder
// account instead of an error.
func (d *AccountDeriver) Derive(hexKey string) (domain.SigningAccount, error) {
	raw := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"), "0X")
	if isZeroHex(raw) {
		return domain.PlaceholderAccount(), nil
	}

	key, err := crypto.HexToECDSA(raw)
	if err != nil {
		return domain.SigningAccount{}, fmt.Errorf("parse private key: %w", err)
	}
	return domain.NewSigningAccount(key), nil
}

func isZeroHex(s string) bool {
	if len(s) != 64 {
		return false
	}
	return strings.Trim(s, "0") == ""
}

var _ ports.AccountDeriver = (*AccountDeriver)(nil)
