package safe

import (
	"context"
	"errors"
	"io"
	"math/big"
	"testing"
	"time"

	"safe-wallet-service/config"
	"safe-wallet-service/internal/core/domain"
	"safe-wallet-service/internal/core/ports"
	"safe-wallet-service/internal/core/ports/mocks"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeReader struct {
	creationCode []byte
	callErr      error
	code         map[common.Address][]byte
	calls        []ethereum.CallMsg
}

func (r *fakeReader) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	r.calls = append(r.calls, call)
	if r.callErr != nil {
		return nil, r.callErr
	}
	return proxyFactoryABI.Methods["proxyCreationCode"].Outputs.Pack(r.creationCode)
}

func (r *fakeReader) CodeAt(_ context.Context, account common.Address, _ *big.Int) ([]byte, error) {
	return r.code[account], nil
}

var kitChain = domain.Polygon.WithRPCURL("http://localhost:8545/")

func newTestKitFactory(t *testing.T, reader *fakeReader) (*KitFactory, *mocks.MockChainClientFactory) {
	ctrl := gomock.NewController(t)
	clients := mocks.NewMockChainClientFactory(ctrl)
	version, contracts, err := ContractsFromConfig(config.SafeConfig{})
	require.NoError(t, err)
	readers := func(context.Context, domain.ChainDescriptor) (ChainReader, error) { return reader, nil }
	return NewKitFactory(readers, clients, version, contracts, zerolog.New(io.Discard)), clients
}

func predictedAt(ms int64) *domain.PredictedSafe {
	p := domain.NewPredictedSafe(testOwners, 2, time.UnixMilli(ms))
	return &p
}

func TestKitFactory_Init_PredictsAddress(t *testing.T) {
	reader := &fakeReader{creationCode: fakeCreationCode}
	factory, _ := newTestKitFactory(t, reader)

	kit, err := factory.Init(context.Background(), ports.SafeKitConfig{Chain: kitChain, Predicted: predictedAt(1_700_000_000_000)})
	require.NoError(t, err)

	got, err := kit.GetAddress(context.Background())
	require.NoError(t, err)

	c, _ := CanonicalContracts(DefaultVersion)
	initializer, err := EncodeSetup(domain.SafeAccountConfig{Owners: testOwners, Threshold: 2}, c.FallbackHandler)
	require.NoError(t, err)
	want := PredictAddress(c.ProxyFactory, c.Singleton, fakeCreationCode, Salt(initializer, big.NewInt(1_700_000_000_000)))
	assert.Equal(t, want, got)

	require.Len(t, reader.calls, 1)
	assert.Equal(t, c.ProxyFactory, *reader.calls[0].To)
}

func TestKitFactory_Init_DifferentSaltsDifferentAddresses(t *testing.T) {
	factory, _ := newTestKitFactory(t, &fakeReader{creationCode: fakeCreationCode})

	k1, err := factory.Init(context.Background(), ports.SafeKitConfig{Chain: kitChain, Predicted: predictedAt(1_700_000_000_000)})
	require.NoError(t, err)
	k2, err := factory.Init(context.Background(), ports.SafeKitConfig{Chain: kitChain, Predicted: predictedAt(1_700_000_000_001)})
	require.NoError(t, err)

	a1, _ := k1.GetAddress(context.Background())
	a2, _ := k2.GetAddress(context.Background())
	assert.NotEqual(t, a1, a2)
}

func TestKitFactory_Init_Errors(t *testing.T) {
	factory, _ := newTestKitFactory(t, &fakeReader{creationCode: fakeCreationCode})
	addr := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

	_, err := factory.Init(context.Background(), ports.SafeKitConfig{Chain: kitChain})
	assert.Error(t, err, "neither predicted nor address")

	_, err = factory.Init(context.Background(), ports.SafeKitConfig{Chain: kitChain, Predicted: predictedAt(1), SafeAddress: &addr})
	assert.Error(t, err, "both predicted and address")

	bad := domain.NewPredictedSafe(testOwners, 5, time.UnixMilli(1))
	_, err = factory.Init(context.Background(), ports.SafeKitConfig{Chain: kitChain, Predicted: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidSafeConfig)

	unknown := domain.NewPredictedSafe(testOwners, 2, time.UnixMilli(1))
	unknown.Deployment.SafeVersion = "9.9.9"
	_, err = factory.Init(context.Background(), ports.SafeKitConfig{Chain: kitChain, Predicted: &unknown})
	assert.Error(t, err)
}

func TestKitFactory_Init_CreationCodeCallFails(t *testing.T) {
	callErr := errors.New("execution reverted")
	factory, _ := newTestKitFactory(t, &fakeReader{callErr: callErr})

	_, err := factory.Init(context.Background(), ports.SafeKitConfig{Chain: kitChain, Predicted: predictedAt(1)})
	assert.ErrorIs(t, err, callErr)
}

func TestKit_CreateSafeDeploymentTransaction(t *testing.T) {
	factory, _ := newTestKitFactory(t, &fakeReader{creationCode: fakeCreationCode})
	kit, err := factory.Init(context.Background(), ports.SafeKitConfig{Chain: kitChain, Predicted: predictedAt(1_700_000_000_000)})
	require.NoError(t, err)

	tx, err := kit.CreateSafeDeploymentTransaction(context.Background())
	require.NoError(t, err)

	c, _ := CanonicalContracts(DefaultVersion)
	assert.Equal(t, c.ProxyFactory, tx.To)
	assert.Equal(t, "0", tx.Value)

	args, err := proxyFactoryABI.Methods["createProxyWithNonce"].Inputs.Unpack(tx.Data[4:])
	require.NoError(t, err)
	assert.Equal(t, c.Singleton, args[0])
	assert.Equal(t, big.NewInt(1_700_000_000_000), args[2])

	req, err := tx.Request()
	require.NoError(t, err)
	assert.Equal(t, 0, req.Value.Sign())
}

func TestKit_ExternalSigner(t *testing.T) {
	factory, clients := newTestKitFactory(t, &fakeReader{creationCode: fakeCreationCode})

	t.Run("without signer", func(t *testing.T) {
		kit, err := factory.Init(context.Background(), ports.SafeKitConfig{Chain: kitChain, Predicted: predictedAt(1)})
		require.NoError(t, err)

		signer, err := kit.ExternalSigner(context.Background())
		require.NoError(t, err)
		assert.Nil(t, signer)
	})

	t.Run("with signer", func(t *testing.T) {
		account := domain.PlaceholderAccount()
		client := mocks.NewMockWalletClient(gomock.NewController(t))
		clients.EXPECT().NewWalletClient(gomock.Any(), account, kitChain).Return(client, nil)

		kit, err := factory.Init(context.Background(), ports.SafeKitConfig{Chain: kitChain, Signer: &account, Predicted: predictedAt(1)})
		require.NoError(t, err)

		signer, err := kit.ExternalSigner(context.Background())
		require.NoError(t, err)
		assert.Equal(t, client, signer)
	})
}

func TestKit_ConnectAndIsSafeDeployed(t *testing.T) {
	reader := &fakeReader{creationCode: fakeCreationCode, code: map[common.Address][]byte{}}
	factory, _ := newTestKitFactory(t, reader)

	kit, err := factory.Init(context.Background(), ports.SafeKitConfig{Chain: kitChain, Predicted: predictedAt(1)})
	require.NoError(t, err)
	predicted, _ := kit.GetAddress(context.Background())

	connected, err := kit.Connect(context.Background(), predicted)
	require.NoError(t, err)

	deployed, err := connected.IsSafeDeployed(context.Background())
	require.NoError(t, err)
	assert.False(t, deployed)

	reader.code[predicted] = []byte{0x60, 0x80}
	deployed, err = connected.IsSafeDeployed(context.Background())
	require.NoError(t, err)
	assert.True(t, deployed)

	addr, _ := connected.GetAddress(context.Background())
	assert.Equal(t, predicted, addr)

	_, err = connected.CreateSafeDeploymentTransaction(context.Background())
	assert.Error(t, err)
}

func TestKitFactory_Init_ByAddress(t *testing.T) {
	reader := &fakeReader{}
	factory, _ := newTestKitFactory(t, reader)
	addr := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

	kit, err := factory.Init(context.Background(), ports.SafeKitConfig{Chain: kitChain, SafeAddress: &addr})
	require.NoError(t, err)

	got, _ := kit.GetAddress(context.Background())
	assert.Equal(t, addr, got)
	assert.Empty(t, reader.calls)
}
