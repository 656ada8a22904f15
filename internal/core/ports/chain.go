package ports

import (
	"context"

	"safe-wallet-service/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
)

// AccountDeriver turns a hex private key into a signing account.
type AccountDeriver interface {
	Derive(hexKey string) (domain.SigningAccount, error)
}

// WalletClient signs and submits transactions for one account on one chain.
type WalletClient interface {
	Account() domain.SigningAccount
	// SendTransaction signs req and broadcasts it, returning the tx hash.
	SendTransaction(ctx context.Context, req domain.TransactionRequest) (common.Hash, error)
	// WaitForReceipt blocks until hash is mined or ctx is done.
	WaitForReceipt(ctx context.Context, hash common.Hash) (*domain.TransactionOutcome, error)
}

// ChainClientFactory builds wallet clients bound to a chain.
type ChainClientFactory interface {
	NewWalletClient(ctx context.Context, account domain.SigningAccount, chain domain.ChainDescriptor) (WalletClient, error)
}

// SafeKitConfig initialises a Safe SDK context. Exactly one of Predicted
// or SafeAddress is set.
type SafeKitConfig struct {
	Chain       domain.ChainDescriptor
	Signer      *domain.SigningAccount // nil = read-only kit
	Predicted   *domain.PredictedSafe
	SafeAddress *common.Address
}

// SafeKitFactory creates Safe SDK contexts.
type SafeKitFactory interface {
	Init(ctx context.Context, cfg SafeKitConfig) (SafeKit, error)
}

// SafeKit is a Safe SDK context bound either to a predicted (undeployed)
// Safe or to a deployed one.
type SafeKit interface {
	// GetAddress returns the predicted address, or the connected address.
	GetAddress(ctx context.Context) (common.Address, error)
	// CreateSafeDeploymentTransaction builds the proxy factory call that
	// deploys the predicted Safe.
	CreateSafeDeploymentTransaction(ctx context.Context) (*domain.SafeDeploymentTransaction, error)
	// ExternalSigner returns the client of the configured signer, or nil.
	ExternalSigner(ctx context.Context) (WalletClient, error)
	// Connect returns a kit bound to the Safe at safeAddress.
	Connect(ctx context.Context, safeAddress common.Address) (SafeKit, error)
	// IsSafeDeployed reports whether contract code exists at the kit's address.
	IsSafeDeployed(ctx context.Context) (bool, error)
}
