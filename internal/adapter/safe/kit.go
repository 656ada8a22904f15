package safe

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"safe-wallet-service/internal/core/domain"
	"safe-wallet-service/internal/core/ports"
	"safe-wallet-service/pkg/logger"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

// ChainReader is the read-only RPC surface used by the kit.
type ChainReader interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
}

// ReaderFunc opens a ChainReader for a chain.
type ReaderFunc func(ctx context.Context, chain domain.ChainDescriptor) (ChainReader, error)

// KitFactory implements ports.SafeKitFactory on go-ethereum.
type KitFactory struct {
	readers   ReaderFunc
	clients   ports.ChainClientFactory
	version   string
	contracts Contracts
	log       zerolog.Logger
}

// NewKitFactory creates a KitFactory for one Safe version and contract set.
func NewKitFactory(readers ReaderFunc, clients ports.ChainClientFactory, version string, contracts Contracts, log zerolog.Logger) *KitFactory {
	return &KitFactory{
		readers:   readers,
		clients:   clients,
		version:   version,
		contracts: contracts,
		log:       logger.Component(log, "SafeKit"),
	}
}

// Init binds a kit to a predicted Safe or to a deployed one.
func (f *KitFactory) Init(ctx context.Context, cfg ports.SafeKitConfig) (ports.SafeKit, error) {
	if (cfg.Predicted == nil) == (cfg.SafeAddress == nil) {
		return nil, errors.New("exactly one of predicted safe or safe address must be set")
	}

	reader, err := f.readers(ctx, cfg.Chain)
	if err != nil {
		return nil, err
	}

	kit := &Kit{
		factory: f,
		chain:   cfg.Chain,
		reader:  reader,
		signer:  cfg.Signer,
	}

	if cfg.SafeAddress != nil {
		kit.address = *cfg.SafeAddress
		return kit, nil
	}

	if err := kit.predict(ctx, *cfg.Predicted); err != nil {
		return nil, err
	}
	return kit, nil
}

// Kit is a Safe context bound to one address.
type Kit struct {
	factory *KitFactory
	chain   domain.ChainDescriptor
	reader  ChainReader
	signer  *domain.SigningAccount
	address common.Address

	// set only for predicted safes
	contracts   Contracts
	initializer []byte
	saltNonce   *big.Int
}

func (k *Kit) predict(ctx context.Context, predicted domain.PredictedSafe) error {
	contracts := k.factory.contracts
	if v := predicted.Deployment.SafeVersion; v != "" && v != k.factory.version {
		c, err := CanonicalContracts(v)
		if err != nil {
			return err
		}
		contracts = c
	}

	saltNonce, err := predicted.Deployment.SaltNonceInt()
	if err != nil {
		return err
	}
	initializer, err := EncodeSetup(predicted.Account, contracts.FallbackHandler)
	if err != nil {
		return err
	}
	creationCode, err := k.proxyCreationCode(ctx, contracts.ProxyFactory)
	if err != nil {
		return err
	}

	k.contracts = contracts
	k.initializer = initializer
	k.saltNonce = saltNonce
	k.address = PredictAddress(contracts.ProxyFactory, contracts.Singleton, creationCode, Salt(initializer, saltNonce))

	k.factory.log.Debug().
		Str("predicted_address", k.address.Hex()).
		Str("salt_nonce", saltNonce.String()).
		Int("owners", len(predicted.Account.Owners)).
		Msg("predicted safe address")
	return nil
}

func (k *Kit) proxyCreationCode(ctx context.Context, factory common.Address) ([]byte, error) {
	input, err := proxyFactoryABI.Pack("proxyCreationCode")
	if err != nil {
		return nil, fmt.Errorf("encode proxyCreationCode: %w", err)
	}
	out, err := k.reader.CallContract(ctx, ethereum.CallMsg{To: &factory, Data: input}, nil)
	if err != nil {
		return nil, fmt.Errorf("call proxyCreationCode on %s: %w", factory.Hex(), err)
	}
	values, err := proxyFactoryABI.Unpack("proxyCreationCode", out)
	if err != nil {
		return nil, fmt.Errorf("decode proxyCreationCode: %w", err)
	}
	code, ok := values[0].([]byte)
	if !ok || len(code) == 0 {
		return nil, fmt.Errorf("proxy factory %s returned no creation code", factory.Hex())
	}
	return code, nil
}

func (k *Kit) GetAddress(context.Context) (common.Address, error) {
	return k.address, nil
}

// CreateSafeDeploymentTransaction is only valid on a kit initialised from a
// predicted Safe.
func (k *Kit) CreateSafeDeploymentTransaction(context.Context) (*domain.SafeDeploymentTransaction, error) {
	if k.initializer == nil {
		return nil, errors.New("safe kit is not bound to a predicted safe")
	}
	data, err := EncodeCreateProxyWithNonce(k.contracts.Singleton, k.initializer, k.saltNonce)
	if err != nil {
		return nil, err
	}
	return &domain.SafeDeploymentTransaction{
		To:    k.contracts.ProxyFactory,
		Value: "0",
		Data:  data,
	}, nil
}

// ExternalSigner returns nil when the kit was created without a signer.
func (k *Kit) ExternalSigner(ctx context.Context) (ports.WalletClient, error) {
	if k.signer == nil {
		return nil, nil
	}
	return k.factory.clients.NewWalletClient(ctx, *k.signer, k.chain)
}

func (k *Kit) Connect(_ context.Context, safeAddress common.Address) (ports.SafeKit, error) {
	return &Kit{
		factory: k.factory,
		chain:   k.chain,
		reader:  k.reader,
		signer:  k.signer,
		address: safeAddress,
	}, nil
}

func (k *Kit) IsSafeDeployed(ctx context.Context) (bool, error) {
	code, err := k.reader.CodeAt(ctx, k.address, nil)
	if err != nil {
		return false, fmt.Errorf("get code at %s: %w", k.address.Hex(), err)
	}
	return len(code) > 0, nil
}

var (
	_ ports.SafeKitFactory = (*KitFactory)(nil)
	_ ports.SafeKit        = (*Kit)(nil)
)
