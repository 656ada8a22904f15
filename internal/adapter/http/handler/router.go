package handler

import (
	"time"

	"safe-wallet-service/internal/adapter/http/middleware"
	redisStore "safe-wallet-service/internal/adapter/storage/redis"
	"safe-wallet-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc        ports.WalletService
	TokenSvc         ports.TokenService           // nil = operator auth disabled
	RateLimitStore   *redisStore.RateLimitStore   // nil = rate limiting disabled
	IdempotencyStore *redisStore.IdempotencyStore // nil = Idempotency-Key ignored
	IdempotencyTTL   time.Duration
	AuditSvc         ports.AuditService // nil = audit logging disabled
	HealthCheckers   []ports.HealthChecker
	MetricsRegistry  *prometheus.Registry // nil = /metrics not served
	Mode             string
	Logger           zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	r := gin.New()

	// Metrics wraps Recovery and observes recovered panics as 500s.
	if deps.MetricsRegistry != nil {
		r.Use(middleware.NewMetrics(deps.MetricsRegistry).Handler())
	}
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(middleware.DefaultMaxBodyBytes))

	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.MetricsRegistry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.MetricsRegistry, promhttp.HandlerOpts{})))
	}

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	idem := func(c *gin.Context) { c.Next() }
	if deps.IdempotencyStore != nil {
		ttl := deps.IdempotencyTTL
		if ttl <= 0 {
			ttl = 24 * time.Hour
		}
		idem = middleware.Idempotency(deps.IdempotencyStore, ttl, deps.Logger)
	}

	v1 := r.Group("/api/v1", middleware.JWTAuth(deps.TokenSvc, deps.Logger))

	safeHandler := NewSafeHandler(deps.WalletSvc)
	v1.POST("/safes", rl("safes_deploy"), idem, safeHandler.Deploy)

	tokenHandler := NewTokenHandler(deps.WalletSvc)
	v1.POST("/tokens/mint", rl("tokens_mint"), idem, tokenHandler.Mint)

	return r
}
