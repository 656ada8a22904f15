package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	redisStore "safe-wallet-service/internal/adapter/storage/redis"
	"safe-wallet-service/internal/core/domain"
	"safe-wallet-service/internal/core/ports"
	"safe-wallet-service/internal/core/ports/mocks"
	"safe-wallet-service/pkg/apperror"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	ownerAddress = "0x90F79bf6EB2c4f870365E785982E1f101E93b906"
	safeAddress  = "0x8A791620dd6260079BF849Dc5567aDC3F2FdC318"
	txHash       = "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
	RequestID string          `json:"request_id"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func newRouter(deps RouterDeps) *gin.Engine {
	deps.Logger = zerolog.Nop()
	return SetupRouter(deps)
}

func post(r http.Handler, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDeploySafe_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	walletSvc.EXPECT().Deploy(gomock.Any(), ownerAddress).Return(safeAddress, nil)

	r := newRouter(RouterDeps{WalletSvc: walletSvc})
	w := post(r, "/api/v1/safes", `{"owner_address":"`+ownerAddress+`"}`, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	env := decode(t, w)
	assert.JSONEq(t, `{"address":"`+safeAddress+`"}`, string(env.Data))
	assert.NotEmpty(t, env.RequestID)
	assert.Equal(t, env.RequestID, w.Header().Get("X-Request-ID"))
}

func TestDeploySafe_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"malformed json", `{"owner_address":`},
		{"not an address", `{"owner_address":"alice"}`},
		{"short address", `{"owner_address":"0x1234"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			walletSvc := mocks.NewMockWalletService(ctrl)

			r := newRouter(RouterDeps{WalletSvc: walletSvc})
			w := post(r, "/api/v1/safes", tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "REQ_001", decode(t, w).ErrorCode)
		})
	}
}

func TestDeploySafe_ServiceErrorHidesCause(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	walletSvc.EXPECT().Deploy(gomock.Any(), ownerAddress).
		Return("", apperror.InternalError(domain.ErrSafeNotDeployed))

	r := newRouter(RouterDeps{WalletSvc: walletSvc})
	w := post(r, "/api/v1/safes", `{"owner_address":"`+ownerAddress+`"}`, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "SYS_001", decode(t, w).ErrorCode)
	assert.NotContains(t, w.Body.String(), domain.ErrSafeNotDeployed.Error())
}

func TestMint_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	walletSvc.EXPECT().Mint(gomock.Any()).Return(txHash, nil)

	r := newRouter(RouterDeps{WalletSvc: walletSvc})
	w := post(r, "/api/v1/tokens/mint", `{"ignored":true}`, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"transaction_hash":"`+txHash+`"}`, string(decode(t, w).Data))
}

func TestMint_NetworkErrorIsUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	walletSvc.EXPECT().Mint(gomock.Any()).Return("", errors.New("create wallet client: dial tcp: connection refused"))

	r := newRouter(RouterDeps{WalletSvc: walletSvc})
	w := post(r, "/api/v1/tokens/mint", "", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "SYS_000", decode(t, w).ErrorCode)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestRoutes_RequireTokenWhenAuthEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	r := newRouter(RouterDeps{WalletSvc: walletSvc, TokenSvc: tokenSvc})

	w := post(r, "/api/v1/tokens/mint", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_001", decode(t, w).ErrorCode)

	tokenSvc.EXPECT().Validate("good").Return(&ports.TokenClaims{Operator: "ops"}, nil)
	walletSvc.EXPECT().Mint(gomock.Any()).Return(txHash, nil)

	w = post(r, "/api/v1/tokens/mint", "", map[string]string{"Authorization": "Bearer good"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRoutes_AuditsSuccessfulDeploy(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	auditSvc := mocks.NewMockAuditService(ctrl)

	walletSvc.EXPECT().Deploy(gomock.Any(), ownerAddress).Return(safeAddress, nil)
	auditSvc.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ any, entry *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionDeploySafe, entry.Action)
		assert.Equal(t, safeAddress, entry.ResourceID)
	})

	r := newRouter(RouterDeps{WalletSvc: walletSvc, AuditSvc: auditSvc})
	w := post(r, "/api/v1/safes", `{"owner_address":"`+ownerAddress+`"}`, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRoutes_IdempotentDeployRunsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	walletSvc.EXPECT().Deploy(gomock.Any(), ownerAddress).Return(safeAddress, nil).Times(1)

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	r := newRouter(RouterDeps{
		WalletSvc:        walletSvc,
		IdempotencyStore: redisStore.NewIdempotencyStore(client),
	})

	headers := map[string]string{"Idempotency-Key": "deploy-42"}
	body := `{"owner_address":"` + ownerAddress + `"}`

	first := post(r, "/api/v1/safes", body, headers)
	second := post(r, "/api/v1/safes", body, headers)

	require.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("Idempotent-Replayed"))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestRoutes_RateLimitedMint(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	walletSvc.EXPECT().Mint(gomock.Any()).Return(txHash, nil).Times(30)

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	r := newRouter(RouterDeps{
		WalletSvc:      walletSvc,
		RateLimitStore: redisStore.NewRateLimitStore(client),
	})

	for i := 0; i < 30; i++ {
		require.Equal(t, http.StatusCreated, post(r, "/api/v1/tokens/mint", "", nil).Code)
	}

	w := post(r, "/api/v1/tokens/mint", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "RATE_001", decode(t, w).ErrorCode)
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		redisErr   error
		wantCode   int
		wantStatus string
	}{
		{"all healthy", nil, http.StatusOK, "healthy"},
		{"one unhealthy", errors.New("connection refused"), http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			chain := mocks.NewMockHealthChecker(ctrl)
			chain.EXPECT().Name().Return("ethereum").AnyTimes()
			chain.EXPECT().Ping(gomock.Any()).Return(nil)
			cache := mocks.NewMockHealthChecker(ctrl)
			cache.EXPECT().Name().Return("redis").AnyTimes()
			cache.EXPECT().Ping(gomock.Any()).Return(tt.redisErr)

			r := newRouter(RouterDeps{HealthCheckers: []ports.HealthChecker{chain, cache}})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tt.wantCode, w.Code)
			var body struct {
				Status       string               `json:"status"`
				Dependencies map[string]depStatus `json:"dependencies"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Len(t, body.Dependencies, 2)
			assert.Equal(t, "healthy", body.Dependencies["ethereum"].Status)
		})
	}
}

func TestSwagger(t *testing.T) {
	r := newRouter(RouterDeps{})

	SetSwaggerSpec(nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/spec", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	SetSwaggerSpec([]byte("openapi: 3.0.3\n"))
	t.Cleanup(func() { SetSwaggerSpec(nil) })
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/spec", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "openapi: 3.0.3\n", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swagger-ui")
}

func TestMetricsEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	walletSvc.EXPECT().Mint(gomock.Any()).Return(txHash, nil)

	r := newRouter(RouterDeps{WalletSvc: walletSvc, MetricsRegistry: prometheus.NewRegistry()})
	require.Equal(t, http.StatusCreated, post(r, "/api/v1/tokens/mint", "", nil).Code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `sws_http_requests_total{method="POST",path="/api/v1/tokens/mint",status="201"} 1`)
}

func TestMetricsEndpoint_DisabledByDefault(t *testing.T) {
	r := newRouter(RouterDeps{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint_CountsRecoveredPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	walletSvc.EXPECT().Mint(gomock.Any()).DoAndReturn(func(context.Context) (string, error) {
		panic("boom")
	})

	r := newRouter(RouterDeps{WalletSvc: walletSvc, MetricsRegistry: prometheus.NewRegistry()})
	require.Equal(t, http.StatusInternalServerError, post(r, "/api/v1/tokens/mint", "", nil).Code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Contains(t, w.Body.String(), `sws_http_errors_total{path="/api/v1/tokens/mint",type="server_error"} 1`)
	assert.Contains(t, w.Body.String(), `sws_http_requests_total{method="POST",path="/api/v1/tokens/mint",status="500"} 1`)
}
