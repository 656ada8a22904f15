package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ZeroHash is the placeholder private key substituted when a signing key
// is not configured.
const ZeroHash = "0x0000000000000000000000000000000000000000000000000000000000000000"

const (
	keyAdminPrivateKey  = "wallet.admin_private_key"
	keyBackupPrivateKey = "wallet.backup_private_key"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Wallet   WalletConfig   `mapstructure:"wallet"`
	Safe     SafeConfig     `mapstructure:"safe"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`

	v *viper.Viper
}

type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`    // debug, release, test
	Metrics bool   `mapstructure:"metrics"` // serve /metrics
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type ChainConfig struct {
	ID                  int64         `mapstructure:"id"`
	Name                string        `mapstructure:"name"`
	RPCURL              string        `mapstructure:"rpc_url"`
	ReceiptPollInterval time.Duration `mapstructure:"receipt_poll_interval"`
}

// WalletConfig holds non-secret wallet settings. Private keys are not
// unmarshaled here; they are read on demand through Keys().
type WalletConfig struct {
	RequireKeys bool `mapstructure:"require_keys"`
}

// SafeConfig selects the Safe contract set. Empty addresses fall back to
// the canonical deployment of Version.
type SafeConfig struct {
	Version                string `mapstructure:"version"`
	ProxyFactoryAddress    string `mapstructure:"proxy_factory_address"`
	SingletonAddress       string `mapstructure:"singleton_address"`
	FallbackHandlerAddress string `mapstructure:"fallback_handler_address"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"` // empty = auth disabled
	Expiry    time.Duration `mapstructure:"expiry"`
	Issuer    string        `mapstructure:"issuer"`
}

// Enabled reports whether operator authentication is configured.
func (a AuthConfig) Enabled() bool {
	return a.JWTSecret != ""
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// IdempotencyTTL is how long a completed response stays replayable.
	IdempotencyTTL time.Duration `mapstructure:"idempotency_ttl"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SWS_ (Safe Wallet
// Service), nested keys use underscore: SWS_CHAIN_ID, SWS_LOG_LEVEL.
// The deployment variables PRIVATE_KEY_1, PRIVATE_KEY_2, RPC_URL, HOST and
// PORT are also accepted without prefix.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.metrics", true)
	v.SetDefault("chain.id", 137)
	v.SetDefault("chain.name", "Polygon")
	v.SetDefault("chain.rpc_url", "http://localhost:8545/")
	v.SetDefault("chain.receipt_poll_interval", "1s")
	v.SetDefault(keyAdminPrivateKey, ZeroHash)
	v.SetDefault(keyBackupPrivateKey, ZeroHash)
	v.SetDefault("wallet.require_keys", false)
	v.SetDefault("safe.version", "1.4.1")
	v.SetDefault("safe.proxy_factory_address", "")
	v.SetDefault("safe.singleton_address", "")
	v.SetDefault("safe.fallback_handler_address", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.expiry", "24h")
	v.SetDefault("auth.issuer", "safe-wallet-service")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "safe_wallet")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.idempotency_ttl", "24h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: SWS_CHAIN_ID -> chain.id
	v.SetEnvPrefix("SWS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The prefixed form takes precedence over the bare name.
	bindings := map[string]string{
		keyAdminPrivateKey:  "PRIVATE_KEY_1",
		keyBackupPrivateKey: "PRIVATE_KEY_2",
		"chain.rpc_url":     "RPC_URL",
		"server.host":       "HOST",
		"server.port":       "PORT",
	}
	for key, env := range bindings {
		prefixed := "SWS_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.v = v

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ErrMissingKeys is returned by Load when wallet.require_keys is set and a
// signing key is absent.
var ErrMissingKeys = errors.New("PRIVATE_KEY_1 and PRIVATE_KEY_2 must be set when wallet.require_keys is enabled")

func (c *Config) validate() error {
	if c.Chain.RPCURL == "" {
		return errors.New("chain.rpc_url must not be empty")
	}
	if c.Chain.ID <= 0 {
		return fmt.Errorf("chain.id must be positive, got %d", c.Chain.ID)
	}
	if c.Wallet.RequireKeys {
		keys := c.Keys()
		if IsPlaceholderKey(keys.AdminKey()) || IsPlaceholderKey(keys.BackupKey()) {
			return ErrMissingKeys
		}
	}
	return nil
}

// Keys returns the accessor for signing keys. Every call on the returned
// value re-reads the underlying source so keys are never cached in Config.
func (c *Config) Keys() *KeySource {
	return &KeySource{v: c.v}
}

// KeySource implements ports.KeySource on top of viper.
type KeySource struct {
	v *viper.Viper
}

// AdminKey returns PRIVATE_KEY_1, or ZeroHash when unset.
func (k *KeySource) AdminKey() string {
	return k.get(keyAdminPrivateKey)
}

// BackupKey returns PRIVATE_KEY_2, or ZeroHash when unset.
func (k *KeySource) BackupKey() string {
	return k.get(keyBackupPrivateKey)
}

func (k *KeySource) get(key string) string {
	if k.v == nil {
		return ZeroHash
	}
	if s := strings.TrimSpace(k.v.GetString(key)); s != "" {
		return s
	}
	return ZeroHash
}

// IsPlaceholderKey reports whether key is the zero placeholder.
func IsPlaceholderKey(key string) bool {
	return strings.EqualFold(strings.TrimPrefix(strings.TrimSpace(key), "0x"), ZeroHash[2:])
}
