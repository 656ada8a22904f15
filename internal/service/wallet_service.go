package service

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"safe-wallet-service/internal/core/domain"
	"safe-wallet-service/internal/core/ports"
	"safe-wallet-service/pkg/apperror"
	"safe-wallet-service/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService. It holds no per-call
// state: every call derives its own accounts, clients and Safe context, and
// reads keys fresh from the KeySource.
type WalletServiceImpl struct {
	keys     ports.KeySource
	chains   ports.ChainProvider
	accounts ports.AccountDeriver
	clients  ports.ChainClientFactory
	safes    ports.SafeKitFactory
	log      zerolog.Logger
	now      func() time.Time
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	keys ports.KeySource,
	chains ports.ChainProvider,
	accounts ports.AccountDeriver,
	clients ports.ChainClientFactory,
	safes ports.SafeKitFactory,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		keys:     keys,
		chains:   chains,
		accounts: accounts,
		clients:  clients,
		safes:    safes,
		log:      logger.Component(log, "WalletService"),
		now:      time.Now,
	}
}

// WithClock replaces the clock used to salt Safe deployments.
func (s *WalletServiceImpl) WithClock(now func() time.Time) *WalletServiceImpl {
	s.now = now
	return s
}

// Mint sends the demo mint call from the admin account and waits for it to
// be mined. The returned hash is the one reported by submission.
func (s *WalletServiceImpl) Mint(ctx context.Context) (string, error) {
	account, err := s.accounts.Derive(s.keys.AdminKey())
	if err != nil {
		return "", fmt.Errorf("derive admin account: %w", err)
	}

	client, err := s.clients.NewWalletClient(ctx, account, s.chains.Get())
	if err != nil {
		return "", fmt.Errorf("create wallet client: %w", err)
	}

	call := domain.DemoMintCall()
	data, err := EncodeMintCall(call)
	if err != nil {
		return "", err
	}

	hash, err := client.SendTransaction(ctx, domain.TransactionRequest{
		To:    call.Contract,
		Value: big.NewInt(0),
		Data:  data,
	})
	if err != nil {
		return "", fmt.Errorf("send mint transaction: %w", err)
	}

	s.log.Info().Str("tx_hash", hash.Hex()).Msg("Transaction hash: " + hash.Hex())

	outcome, err := client.WaitForReceipt(ctx, hash)
	if err != nil {
		return "", fmt.Errorf("wait for mint receipt: %w", err)
	}
	if outcome != nil && outcome.Reverted {
		s.log.Warn().
			Str("tx_hash", hash.Hex()).
			Uint64("block_number", outcome.BlockNumber).
			Msg("mint transaction reverted")
	}

	return hash.Hex(), nil
}

// Deploy deploys a 2-of-3 Safe owned by the admin account, the backup
// account and ownerAddress. Each call is salted with the current time so it
// always targets a fresh address.
func (s *WalletServiceImpl) Deploy(ctx context.Context, ownerAddress string) (string, error) {
	if !common.IsHexAddress(ownerAddress) {
		return "", apperror.Validation("owner_address must be a 20-byte hex address")
	}
	owner := common.HexToAddress(ownerAddress)

	admin, err := s.accounts.Derive(s.keys.AdminKey())
	if err != nil {
		return "", fmt.Errorf("derive admin account: %w", err)
	}
	backup, err := s.accounts.Derive(s.keys.BackupKey())
	if err != nil {
		return "", fmt.Errorf("derive backup account: %w", err)
	}

	predicted := domain.NewPredictedSafe(
		[]common.Address{admin.Address, backup.Address, owner},
		domain.DefaultThreshold,
		s.now(),
	)

	kit, err := s.safes.Init(ctx, ports.SafeKitConfig{
		Chain:     s.chains.Get(),
		Signer:    &admin,
		Predicted: &predicted,
	})
	if err != nil {
		return "", fmt.Errorf("init safe kit: %w", err)
	}

	predictedAddress, err := kit.GetAddress(ctx)
	if err != nil {
		return "", fmt.Errorf("predict safe address: %w", err)
	}

	deployment, err := kit.CreateSafeDeploymentTransaction(ctx)
	if err != nil {
		return "", fmt.Errorf("create safe deployment transaction: %w", err)
	}

	signer, err := kit.ExternalSigner(ctx)
	if err != nil {
		return "", fmt.Errorf("get external signer: %w", err)
	}
	if signer == nil {
		s.log.Error().Msg("Unable to get Signer")
		return "", apperror.InternalError(domain.ErrNoSigner)
	}

	req, err := deployment.Request()
	if err != nil {
		return "", fmt.Errorf("build deployment request: %w", err)
	}

	hash, err := signer.SendTransaction(ctx, req)
	if err != nil {
		return "", fmt.Errorf("send safe deployment transaction: %w", err)
	}

	s.log.Info().
		Str("tx_hash", hash.Hex()).
		Str("predicted_address", predictedAddress.Hex()).
		Msg("Transaction hash: " + hash.Hex())

	if _, err := signer.WaitForReceipt(ctx, hash); err != nil {
		return "", fmt.Errorf("wait for safe deployment receipt: %w", err)
	}

	safe, err := kit.Connect(ctx, predictedAddress)
	if err != nil {
		return "", fmt.Errorf("connect to safe %s: %w", predictedAddress.Hex(), err)
	}

	deployed, err := safe.IsSafeDeployed(ctx)
	if err != nil {
		return "", fmt.Errorf("check safe deployment: %w", err)
	}
	if !deployed {
		s.log.Error().Str("safe_address", predictedAddress.Hex()).Msg("Safe was not deployed")
		return "", apperror.InternalError(domain.ErrSafeNotDeployed)
	}

	actualAddress, err := safe.GetAddress(ctx)
	if err != nil {
		return "", fmt.Errorf("get safe address: %w", err)
	}

	wallet := domain.DeployedWallet{PredictedAddress: predictedAddress, ActualAddress: actualAddress}
	if err := wallet.Verify(); err != nil {
		s.log.Error().
			Str("predicted_address", predictedAddress.Hex()).
			Str("actual_address", actualAddress.Hex()).
			Msgf("Safe predicted address %s is different from the actual address %s", predictedAddress.Hex(), actualAddress.Hex())
		return "", apperror.InternalError(err)
	}

	return actualAddress.Hex(), nil
}

var _ ports.WalletService = (*WalletServiceImpl)(nil)
