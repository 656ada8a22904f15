package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"safe-wallet-service/internal/core/domain"
	"safe-wallet-service/internal/core/ports"
	"safe-wallet-service/pkg/logger"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
)

const (
	defaultPollInterval = time.Second
	// gasBufferPercent is added on top of the node's gas estimate.
	gasBufferPercent = 20
)

// ErrChainIDMismatch is returned when the RPC endpoint serves a different
// chain than the descriptor names.
var ErrChainIDMismatch = errors.New("rpc chain id does not match configured chain")

// ClientFactory implements ports.ChainClientFactory. It keeps one backend
// per RPC URL.
type ClientFactory struct {
	dial         Dialer
	pollInterval time.Duration
	log          zerolog.Logger

	mu       sync.Mutex
	backends map[string]Backend
}

// NewClientFactory creates a ClientFactory. A nil dialer uses ethclient.
func NewClientFactory(dial Dialer, pollInterval time.Duration, log zerolog.Logger) *ClientFactory {
	if dial == nil {
		dial = DialEthClient
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &ClientFactory{
		dial:         dial,
		pollInterval: pollInterval,
		log:          logger.Component(log, "EVMClient"),
		backends:     make(map[string]Backend),
	}
}

// Backend returns the shared backend for the chain's default RPC URL,
// dialing on first use.
func (f *ClientFactory) Backend(ctx context.Context, chain domain.ChainDescriptor) (Backend, error) {
	url := chain.DefaultRPCURL()
	if url == "" {
		return nil, fmt.Errorf("chain %d has no rpc url", chain.ID)
	}

	f.mu.Lock()
	b, ok := f.backends[url]
	f.mu.Unlock()
	if ok {
		return b, nil
	}

	// Dialing runs unlocked; the loser of a race closes its connection.
	dialed, err := f.dial(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.backends[url]; ok {
		dialed.Close()
		return b, nil
	}
	f.backends[url] = dialed
	return dialed, nil
}

// NewWalletClient binds account to chain after checking the endpoint's
// chain id.
func (f *ClientFactory) NewWalletClient(ctx context.Context, account domain.SigningAccount, chain domain.ChainDescriptor) (ports.WalletClient, error) {
	backend, err := f.Backend(ctx, chain)
	if err != nil {
		return nil, err
	}

	remote, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}
	if remote.Cmp(chain.ChainID()) != 0 {
		return nil, fmt.Errorf("%w: rpc %s, configured %d", ErrChainIDMismatch, remote, chain.ID)
	}

	return &WalletClient{
		account:      account,
		chainID:      chain.ChainID(),
		backend:      backend,
		pollInterval: f.pollInterval,
		log:          f.log,
	}, nil
}

// Close closes every dialed backend.
func (f *ClientFactory) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for url, b := range f.backends {
		b.Close()
		delete(f.backends, url)
	}
}

// WalletClient signs and submits transactions for one account.
type WalletClient struct {
	account      domain.SigningAccount
	chainID      *big.Int
	backend      Backend
	pollInterval time.Duration
	log          zerolog.Logger
}

// Account returns the bound account.
func (c *WalletClient) Account() domain.SigningAccount {
	return c.account
}

// SendTransaction fills nonce, fees and gas, signs req and broadcasts it.
func (c *WalletClient) SendTransaction(ctx context.Context, req domain.TransactionRequest) (common.Hash, error) {
	if c.account.IsPlaceholder() {
		return common.Hash{}, domain.ErrPlaceholderAccount
	}

	from := c.account.Address
	value := req.Value
	if value == nil {
		value = new(big.Int)
	}
	to := req.To

	nonce, err := c.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("get nonce: %w", err)
	}

	head, err := c.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return common.Hash{}, fmt.Errorf("get latest header: %w", err)
	}

	call := ethereum.CallMsg{From: from, To: &to, Value: value, Data: req.Data}
	var txData types.TxData

	if head.BaseFee != nil {
		tip, err := c.backend.SuggestGasTipCap(ctx)
		if err != nil {
			return common.Hash{}, fmt.Errorf("suggest gas tip cap: %w", err)
		}
		feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
		call.GasTipCap, call.GasFeeCap = tip, feeCap

		gas, err := c.estimateGas(ctx, call)
		if err != nil {
			return common.Hash{}, err
		}
		txData = &types.DynamicFeeTx{
			ChainID:   c.chainID,
			Nonce:     nonce,
			GasTipCap: tip,
			GasFeeCap: feeCap,
			Gas:       gas,
			To:        &to,
			Value:     value,
			Data:      req.Data,
		}
	} else {
		gasPrice, err := c.backend.SuggestGasPrice(ctx)
		if err != nil {
			return common.Hash{}, fmt.Errorf("suggest gas price: %w", err)
		}
		call.GasPrice = gasPrice

		gas, err := c.estimateGas(ctx, call)
		if err != nil {
			return common.Hash{}, err
		}
		txData = &types.LegacyTx{
			Nonce:    nonce,
			GasPrice: gasPrice,
			Gas:      gas,
			To:       &to,
			Value:    value,
			Data:     req.Data,
		}
	}

	signedTx, err := types.SignNewTx(c.account.PrivateKey(), types.LatestSignerForChainID(c.chainID), txData)
	if err != nil {
		return common.Hash{}, fmt.Errorf("sign transaction: %w", err)
	}

	if err := c.backend.SendTransaction(ctx, signedTx); err != nil {
		return common.Hash{}, fmt.Errorf("send transaction: %w", err)
	}

	c.log.Debug().
		Str("tx_hash", signedTx.Hash().Hex()).
		Str("from", from.Hex()).
		Str("to", to.Hex()).
		Uint64("nonce", nonce).
		Uint64("gas", signedTx.Gas()).
		Msg("transaction submitted")

	return signedTx.Hash(), nil
}

func (c *WalletClient) estimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	gas, err := c.backend.EstimateGas(ctx, call)
	if err != nil {
		return 0, fmt.Errorf("estimate gas: %w", err)
	}
	return gas * (100 + gasBufferPercent) / 100, nil
}

// WaitForReceipt polls for the receipt of hash until it is mined or ctx is
// done. A reverted transaction is still a confirmed outcome.
func (c *WalletClient) WaitForReceipt(ctx context.Context, hash common.Hash) (*domain.TransactionOutcome, error) {
	outcome := domain.NewTransactionOutcome(hash)

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.backend.TransactionReceipt(ctx, hash)
		if err == nil {
			var block uint64
			if receipt.BlockNumber != nil {
				block = receipt.BlockNumber.Uint64()
			}
			outcome.Confirm(block, receipt.Status == types.ReceiptStatusSuccessful)
			return outcome, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			c.log.Debug().Err(err).Str("tx_hash", hash.Hex()).Msg("receipt retrieval failed")
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("wait for receipt %s: %w", hash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

var (
	_ ports.ChainClientFactory = (*ClientFactory)(nil)
	_ ports.WalletClient       = (*WalletClient)(nil)
)
