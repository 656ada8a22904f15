package safe

import (
	"fmt"

	"safe-wallet-service/config"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultVersion is the Safe release used when none is configured.
const DefaultVersion = "1.4.1"

// Contracts is the set of Safe contracts a deployment depends on.
type Contracts struct {
	ProxyFactory    common.Address
	Singleton       common.Address
	FallbackHandler common.Address
}

// Canonical deployments, identical on every chain that has them.
var canonicalContracts = map[string]Contracts{
	"1.4.1": {
		ProxyFactory:    common.HexToAddress("0x4e1DCf7AD4e460CfD30791CCC4F9c8a4f820ec67"),
		Singleton:       common.HexToAddress("0x29fcB43b46531BcA003ddC8FCB67FFE91900C762"), // SafeL2
		FallbackHandler: common.HexToAddress("0xfd0732Dc9E303f09fCEf3a7388Ad10A83459Ec99"),
	},
	"1.3.0": {
		ProxyFactory:    common.HexToAddress("0xa6B71E26C5e0845f74c812102Ca7114b6a896AB2"),
		Singleton:       common.HexToAddress("0x3E5c63644E683549055b9Be8653de26E0B4CD36E"), // GnosisSafeL2
		FallbackHandler: common.HexToAddress("0xf48f2B2d2a534e402487b3ee7C18c33Aec0Fe5e4"),
	},
}

// CanonicalContracts returns the canonical contract set of a Safe version.
func CanonicalContracts(version string) (Contracts, error) {
	c, ok := canonicalContracts[version]
	if !ok {
		return Contracts{}, fmt.Errorf("unsupported safe version %q", version)
	}
	return c, nil
}

// ContractsFromConfig resolves the canonical set for cfg.Version and applies
// any address overrides.
func ContractsFromConfig(cfg config.SafeConfig) (string, Contracts, error) {
	version := cfg.Version
	if version == "" {
		version = DefaultVersion
	}
	contracts, err := CanonicalContracts(version)
	if err != nil {
		return "", Contracts{}, err
	}

	overrides := []struct {
		name  string
		value string
		dst   *common.Address
	}{
		{"proxy_factory_address", cfg.ProxyFactoryAddress, &contracts.ProxyFactory},
		{"singleton_address", cfg.SingletonAddress, &contracts.Singleton},
		{"fallback_handler_address", cfg.FallbackHandlerAddress, &contracts.FallbackHandler},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		if !common.IsHexAddress(o.value) {
			return "", Contracts{}, fmt.Errorf("safe.%s: invalid address %q", o.name, o.value)
		}
		*o.dst = common.HexToAddress(o.value)
	}
	return version, contracts, nil
}
