package ports

import (
	"context"
	"time"

	"safe-wallet-service/internal/core/domain"
)

// WalletService orchestrates Safe deployment and token minting.
type WalletService interface {
	// Mint submits the demo mint transaction and returns its hash once mined.
	Mint(ctx context.Context) (string, error)
	// Deploy deploys a 2-of-3 Safe owned by the admin key, the backup key and
	// ownerAddress, and returns the deployed address.
	Deploy(ctx context.Context, ownerAddress string) (string, error)
}

// KeySource yields signing keys. Implementations must read the backing
// configuration on every call and return the zero placeholder when unset.
type KeySource interface {
	AdminKey() string
	BackupKey() string
}

// ChainProvider produces the descriptor of the target chain.
type ChainProvider interface {
	Get() domain.ChainDescriptor
}

// TokenService handles operator JWT operations.
type TokenService interface {
	Generate(operator string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Operator string
}

// AuditService records audited actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
