package domain

import (
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultThreshold is the number of owner confirmations required by
// deployed wallets.
const DefaultThreshold = 2

// SafeAccountConfig is the owner set and confirmation threshold of a Safe.
type SafeAccountConfig struct {
	Owners    []common.Address `json:"owners"`
	Threshold int              `json:"threshold"`
}

// Validate checks 1 <= threshold <= len(owners). Address well-formedness
// is guaranteed by the common.Address type.
func (c SafeAccountConfig) Validate() error {
	if len(c.Owners) == 0 {
		return fmt.Errorf("%w: no owners", ErrInvalidSafeConfig)
	}
	if c.Threshold < 1 || c.Threshold > len(c.Owners) {
		return fmt.Errorf("%w: threshold %d for %d owners", ErrInvalidSafeConfig, c.Threshold, len(c.Owners))
	}
	return nil
}

// SafeDeploymentConfig parameterises the proxy deployment.
type SafeDeploymentConfig struct {
	SaltNonce   string `json:"salt_nonce"` // decimal uint256
	SafeVersion string `json:"safe_version,omitempty"`
}

// SaltNonceInt parses SaltNonce as a uint256.
func (c SafeDeploymentConfig) SaltNonceInt() (*big.Int, error) {
	n, ok := new(big.Int).SetString(c.SaltNonce, 10)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("%w: salt nonce %q", ErrInvalidSafeConfig, c.SaltNonce)
	}
	return n, nil
}

// PredictedSafe describes a Safe that does not exist yet.
type PredictedSafe struct {
	Account    SafeAccountConfig    `json:"safe_account_config"`
	Deployment SafeDeploymentConfig `json:"safe_deployment_config"`
}

// NewPredictedSafe builds a PredictedSafe salted with the millisecond
// timestamp of at, so each call at a distinct instant yields a fresh address.
func NewPredictedSafe(owners []common.Address, threshold int, at time.Time) PredictedSafe {
	return PredictedSafe{
		Account: SafeAccountConfig{
			Owners:    append([]common.Address(nil), owners...),
			Threshold: threshold,
		},
		Deployment: SafeDeploymentConfig{
			SaltNonce: strconv.FormatInt(at.UnixMilli(), 10),
		},
	}
}

// SafeDeploymentTransaction is the unsigned transaction that deploys a
// predicted Safe. Value is a decimal wei amount.
type SafeDeploymentTransaction struct {
	To    common.Address `json:"to"`
	Value string         `json:"value"`
	Data  []byte         `json:"data"`
}

// Request converts the deployment transaction into a submittable request.
func (t SafeDeploymentTransaction) Request() (TransactionRequest, error) {
	value := new(big.Int)
	if t.Value != "" {
		if _, ok := value.SetString(t.Value, 10); !ok {
			return TransactionRequest{}, fmt.Errorf("invalid deployment value %q", t.Value)
		}
	}
	return TransactionRequest{To: t.To, Value: value, Data: t.Data}, nil
}

// DeployedWallet pairs the address computed before deployment with the one
// reported afterwards.
type DeployedWallet struct {
	PredictedAddress common.Address `json:"predicted_address"`
	ActualAddress    common.Address `json:"actual_address"`
}

// Verify fails with ErrAddressMismatch when the addresses differ.
func (w DeployedWallet) Verify() error {
	if w.PredictedAddress != w.ActualAddress {
		return fmt.Errorf("%w: predicted %s, actual %s", ErrAddressMismatch, w.PredictedAddress.Hex(), w.ActualAddress.Hex())
	}
	return nil
}
