package evm

import (
	"context"
	"fmt"

	"safe-wallet-service/internal/core/ports"
)

// HealthCheck pings the configured RPC endpoint with eth_chainId.
type HealthCheck struct {
	factory *ClientFactory
	chains  ports.ChainProvider
}

// NewHealthCheck creates a HealthCheck.
func NewHealthCheck(factory *ClientFactory, chains ports.ChainProvider) *HealthCheck {
	return &HealthCheck{factory: factory, chains: chains}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	chain := h.chains.Get()
	backend, err := h.factory.Backend(ctx, chain)
	if err != nil {
		return err
	}
	id, err := backend.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("eth_chainId: %w", err)
	}
	if id.Cmp(chain.ChainID()) != 0 {
		return fmt.Errorf("%w: rpc %s, configured %d", ErrChainIDMismatch, id, chain.ID)
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "ethereum"
}

var _ ports.HealthChecker = (*HealthCheck)(nil)
