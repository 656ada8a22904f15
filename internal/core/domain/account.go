package domain

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// SigningAccount is an address plus the key that controls it. The key is
// kept unexported so it never reaches JSON or log output.
type SigningAccount struct {
	Address common.Address `json:"address"`
	key     *ecdsa.PrivateKey
}

// NewSigningAccount builds an account from a parsed private key.
func NewSigningAccount(key *ecdsa.PrivateKey) SigningAccount {
	return SigningAccount{
		Address: crypto.PubkeyToAddress(key.PublicKey),
		key:     key,
	}
}

// PlaceholderAccount is the account substituted for the all-zero key. It
// has the zero address and cannot sign.
func PlaceholderAccount() SigningAccount {
	return SigningAccount{}
}

// IsPlaceholder reports whether the account carries no usable key.
func (a SigningAccount) IsPlaceholder() bool {
	return a.key == nil
}

// PrivateKey returns the signing key, nil for placeholder accounts.
func (a SigningAccount) PrivateKey() *ecdsa.PrivateKey {
	return a.key
}

// String renders only the address.
func (a SigningAccount) String() string {
	return a.Address.Hex()
}
