package domain

import "math/big"

// NativeCurrency describes the gas token of a chain.
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// ChainDescriptor identifies an EVM network and the endpoints used to reach it.
// Values are immutable; use Clone or WithRPCURL to derive new ones.
type ChainDescriptor struct {
	ID               int64          `json:"id"`
	Name             string         `json:"name"`
	NativeCurrency   NativeCurrency `json:"native_currency"`
	RPCURLs          []string       `json:"rpc_urls"`
	BlockExplorerURL string         `json:"block_explorer_url,omitempty"`
}

// Polygon is the Polygon PoS mainnet definition.
var Polygon = ChainDescriptor{
	ID:   137,
	Name: "Polygon",
	NativeCurrency: NativeCurrency{
		Name:     "POL",
		Symbol:   "POL",
		Decimals: 18,
	},
	RPCURLs:          []string{"https://polygon-rpc.com"},
	BlockExplorerURL: "https://polygonscan.com",
}

// Clone returns a deep copy of the descriptor.
func (c ChainDescriptor) Clone() ChainDescriptor {
	out := c
	out.RPCURLs = append([]string(nil), c.RPCURLs...)
	return out
}

// WithRPCURL returns a copy whose default RPC endpoint list is exactly url.
func (c ChainDescriptor) WithRPCURL(url string) ChainDescriptor {
	out := c.Clone()
	out.RPCURLs = []string{url}
	return out
}

// DefaultRPCURL returns the first RPC endpoint, or "" when none is set.
func (c ChainDescriptor) DefaultRPCURL() string {
	if len(c.RPCURLs) == 0 {
		return ""
	}
	return c.RPCURLs[0]
}

// ChainID returns the chain id as used by transaction signers.
func (c ChainDescriptor) ChainID() *big.Int {
	return big.NewInt(c.ID)
}
