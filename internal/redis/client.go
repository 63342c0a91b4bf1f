// Package redis provides a wrapper around the go-redis client library
// so repositories depend on a narrow, swappable client type.
package redis

import (
	"crypto/tls"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/grimoire-api/internal/errors"
)

// Options configures Redis client behavior
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	// TLS enables TLS when set
	TLS *tls.Config
	// ReadOnly routes cluster reads to replicas
	ReadOnly bool
}

// Connect picks the client flavour from the addresses:
// a master name selects sentinel failover, several addresses select cluster mode,
// and a single address selects a plain client.
func Connect(addrs []string, masterName string, opts *Options) (Client, error) {
	cleaned := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		if addr = strings.TrimSpace(addr); addr != "" {
			cleaned = append(cleaned, addr)
		}
	}

	if len(cleaned) == 0 {
		if masterName != "" {
			return nil, errors.InvalidArgument("redis: at least one sentinel address is required")
		}
		return nil, errors.InvalidArgument("redis: at least one address is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	// NewUniversalClient makes the same failover/cluster/single decision from these fields
	return redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:           cleaned,
		MasterName:      masterName,
		PoolSize:        opts.PoolSize,
		MinIdleConns:    opts.MinIdleConns,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
		TLSConfig:       opts.TLS,
		ReadOnly:        opts.ReadOnly,
	}), nil
}
