package ports

import (
	"context"

	"safe-wallet-service/internal/core/domain"
)

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
