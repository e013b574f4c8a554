package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers for the acknowledgment record.
const (
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
	StorageNone     = "none" // simulates a storage-restricted environment
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Device   DeviceConfig   `mapstructure:"device"`
	Wallet   WalletConfig   `mapstructure:"wallet"`
	App      AppConfig      `mapstructure:"app"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type DatabaseConfig struct {
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
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// DeviceConfig controls the signed cookie that scopes durable storage
// to one browser.
type DeviceConfig struct {
	Secret     string        `mapstructure:"secret"`
	CookieName string        `mapstructure:"cookie_name"`
	Expiry     time.Duration `mapstructure:"expiry"`
	Issuer     string        `mapstructure:"issuer"`
	Secure     bool          `mapstructure:"secure"`
}

type WalletConfig struct {
	ChainID      int64         `mapstructure:"chain_id"`
	Network      string        `mapstructure:"network"`
	RPCURL       string        `mapstructure:"rpc_url"`
	ChallengeTTL time.Duration `mapstructure:"challenge_ttl"`
}

// AppConfig is the metadata the wallet modal and page header show.
type AppConfig struct {
	Name            string `mapstructure:"name"`
	Description     string `mapstructure:"description"`
	URL             string `mapstructure:"url"`
	Icon            string `mapstructure:"icon"`
	ContractAddress string `mapstructure:"contract_address"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: ABG_ (Agent Battles Gateway).
// Nested keys use underscore: ABG_REDIS_HOST, ABG_DEVICE_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("storage.driver", StorageRedis)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "agent_battles")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("device.secret", "")
	v.SetDefault("device.cookie_name", "abg_device")
	v.SetDefault("device.expiry", "8760h")
	v.SetDefault("device.issuer", "agent-battles-gateway")
	v.SetDefault("device.secure", false)
	v.SetDefault("wallet.chain_id", 8453)
	v.SetDefault("wallet.network", "Base Mainnet")
	v.SetDefault("wallet.rpc_url", "https://mainnet.base.org")
	v.SetDefault("wallet.challenge_ttl", "5m")
	v.SetDefault("app.name", "Agent Battles")
	v.SetDefault("app.description", "Bet on AI agent battles")
	v.SetDefault("app.url", "https://agent-battles.vercel.app")
	v.SetDefault("app.icon", "https://agent-battles.vercel.app/icon.png")
	v.SetDefault("app.contract_address", "0x0000000000000000000000000000000000000000")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// ABG_REDIS_HOST -> redis.host
	v.SetEnvPrefix("ABG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; env vars can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown server mode %q", c.Server.Mode)
	}
	switch c.Storage.Driver {
	case StorageRedis, StoragePostgres, StorageMemory, StorageNone:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Wallet.ChallengeTTL <= 0 {
		return fmt.Errorf("wallet.challenge_ttl must be positive")
	}
	return nil
}
