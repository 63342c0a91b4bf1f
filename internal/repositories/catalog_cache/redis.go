package catalogcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/grimoire-api/internal/errors"
	"github.com/KirkDiggler/grimoire-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/grimoire-api/internal/redis"
)

const (
	// Key pattern: catalog:{name}
	catalogKeyPrefix = "catalog:"
	// DefaultTTL applies when neither the config nor the call sets one
	DefaultTTL = 10 * time.Minute

	// Error messages
	errNameEmpty  = "catalog name cannot be empty"
	errCatalogNil = "catalog cannot be nil"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	if c.TTL < 0 {
		vb.InvalidField("ttl", "must not be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis-backed catalog cache
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	key := catalogKeyPrefix + input.Name
	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("catalog %s is not cached", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get catalog from Redis")
	}

	var entry CachedCatalog
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal cached catalog")
	}

	// Redis expiry is the primary bound; the timestamp guards against clock skew on restored snapshots
	if r.clock.Now().After(entry.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFoundf("cached catalog %s has expired", input.Name)
	}

	return &GetOutput{Entry: &entry}, nil
}

func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}
	if input.Catalog == nil {
		return nil, errors.InvalidArgument(errCatalogNil)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.ttl
	}

	now := r.clock.Now()
	entry := &CachedCatalog{
		Name:      input.Name,
		Catalog:   input.Catalog,
		CachedAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal catalog")
	}

	if err := r.client.Set(ctx, catalogKeyPrefix+input.Name, data, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store catalog in Redis")
	}

	return &SetOutput{Entry: entry}, nil
}

func (r *redisRepository) Invalidate(ctx context.Context, input InvalidateInput) (*InvalidateOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	n, err := r.client.Del(ctx, catalogKeyPrefix+input.Name).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete cached catalog")
	}

	return &InvalidateOutput{Existed: n > 0}, nil
}
