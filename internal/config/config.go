// Package config loads server settings from GRIMOIRE_* environment variables
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/grimoire-api/internal/engine/rules"
	"github.com/KirkDiggler/grimoire-api/internal/errors"
)

// Config holds every setting the server needs
type Config struct {
	GRPCPort        int           `env:"GRIMOIRE_GRPC_PORT"         envDefault:"50051"`
	RedisAddrs      []string      `env:"GRIMOIRE_REDIS_ADDRS"       envDefault:"localhost:6379" envSeparator:","`
	RedisMasterName string        `env:"GRIMOIRE_REDIS_MASTER_NAME"`
	RedisPoolSize   int           `env:"GRIMOIRE_REDIS_POOL_SIZE"   envDefault:"10"`
	CatalogDir      string        `env:"GRIMOIRE_CATALOG_DIR"`
	CatalogName     string        `env:"GRIMOIRE_CATALOG_NAME"      envDefault:"default"`
	CatalogCacheTTL time.Duration `env:"GRIMOIRE_CATALOG_CACHE_TTL" envDefault:"10m"`
	LogLevel        string        `env:"GRIMOIRE_LOG_LEVEL"         envDefault:"info"`
	LogFormat       string        `env:"GRIMOIRE_LOG_FORMAT"        envDefault:"text"`
	HitPointMode    string        `env:"GRIMOIRE_HIT_POINT_MODE"    envDefault:"average"`
}

// Load parses the process environment and validates the result
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	if len(c.RedisAddrs) == 0 {
		vb.RequiredField("redis_addrs")
	}
	for _, addr := range c.RedisAddrs {
		if strings.TrimSpace(addr) == "" {
			vb.InvalidField("redis_addrs", "contains an empty address")
			break
		}
	}
	if c.RedisPoolSize < 0 {
		vb.InvalidField("redis_pool_size", "must not be negative")
	}
	errors.ValidateRequired("catalog_name", c.CatalogName, vb)
	if c.CatalogCacheTTL <= 0 {
		vb.InvalidField("catalog_cache_ttl", "must be positive")
	}
	errors.ValidateEnum("log_level", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("log_format", strings.ToLower(c.LogFormat), []string{"text", "json"}, vb)
	errors.ValidateEnum("hit_point_mode", c.HitPointMode,
		[]string{string(rules.HitPointsAverage), string(rules.HitPointsRolled)}, vb)

	return vb.Build()
}

// SlogLevel converts LogLevel for slog handlers
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultHitPointMode returns HitPointMode typed for the engine
func (c *Config) DefaultHitPointMode() rules.HitPointMode {
	return rules.HitPointMode(c.HitPointMode)
}
