package service

import (
	"safe-wallet-service/config"
	"safe-wallet-service/internal/core/domain"
)

// ChainConfigProvider produces the target chain descriptor: the Polygon
// definition with its default RPC endpoints replaced by the configured URL.
type ChainConfigProvider struct {
	base   domain.ChainDescriptor
	rpcURL string
}

// NewChainConfigProvider creates a provider from chain configuration. A
// chain id other than Polygon's (e.g. a local anvil node) overrides the id
// and name of the base definition.
func NewChainConfigProvider(cfg config.ChainConfig) *ChainConfigProvider {
	base := domain.Polygon.Clone()
	if cfg.ID != 0 && cfg.ID != base.ID {
		base.ID = cfg.ID
		base.BlockExplorerURL = ""
		if cfg.Name != "" {
			base.Name = cfg.Name
		}
	}
	return &ChainConfigProvider{base: base, rpcURL: cfg.RPCURL}
}

// Get returns a fresh descriptor; callers may keep or discard it freely.
func (p *ChainConfigProvider) Get() domain.ChainDescriptor {
	return p.base.WithRPCURL(p.rpcURL)
}
