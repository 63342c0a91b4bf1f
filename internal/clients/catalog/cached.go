package catalog

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/grimoire-api/internal/errors"
	"github.com/KirkDiggler/grimoire-api/internal/reference"
	catalogcache "github.com/KirkDiggler/grimoire-api/internal/repositories/catalog_cache"
)

// DefaultCatalogName keys the cached catalog when none is configured
const DefaultCatalogName = "default"

// CachedConfig configures a CachedClient
type CachedConfig struct {
	Source Client
	Cache  catalogcache.Repository
	// Name keys the cache entry
	Name string
	// TTL overrides the cache repository default
	TTL time.Duration
}

// Validate checks the cached client configuration
func (c *CachedConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Source == nil {
		vb.RequiredField("source")
	}
	if c.Cache == nil {
		vb.RequiredField("cache")
	}
	if c.TTL < 0 {
		vb.InvalidField("ttl", "must not be negative")
	}
	return vb.Build()
}

// CachedClient is a read-through cache in front of a catalog source.
// Concurrent misses share one source load; cache failures fall back to the source.
type CachedClient struct {
	source Client
	cache  catalogcache.Repository
	name   string
	ttl    time.Duration
	group  singleflight.Group
}

// NewCached creates a cached catalog client
func NewCached(cfg *CachedConfig) (*CachedClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	name := cfg.Name
	if name == "" {
		name = DefaultCatalogName
	}

	return &CachedClient{
		source: cfg.Source,
		cache:  cfg.Cache,
		name:   name,
		ttl:    cfg.TTL,
	}, nil
}

var _ Client = (*CachedClient)(nil)

// GetReference returns the cached catalogs, loading them from the source on a miss.
// The shared load outlives the caller that started it, so one cancelled caller cannot fail the rest.
func (c *CachedClient) GetReference(ctx context.Context) (*reference.Data, error) {
	v, err, shared := c.group.Do(c.name, func() (interface{}, error) {
		return c.load(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	if shared {
		slog.DebugContext(ctx, "shared in-flight catalog load", "catalog", c.name)
	}
	return v.(*reference.Data), nil
}

// Refresh drops the cached copy and reloads from the source
func (c *CachedClient) Refresh(ctx context.Context) (*reference.Data, error) {
	if _, err := c.cache.Invalidate(ctx, catalogcache.InvalidateInput{Name: c.name}); err != nil {
		slog.WarnContext(ctx, "failed to invalidate cached catalog",
			"catalog", c.name,
			"error", err)
	}
	c.group.Forget(c.name)
	return c.GetReference(ctx)
}

func (c *CachedClient) load(ctx context.Context) (*reference.Data, error) {
	out, err := c.cache.Get(ctx, catalogcache.GetInput{Name: c.name})
	switch {
	case err == nil && out.Entry != nil && out.Entry.Catalog != nil:
		slog.DebugContext(ctx, "catalog cache hit", "catalog", c.name)
		return reference.NewData(out.Entry.Catalog), nil
	case err == nil, errors.IsNotFound(err):
		slog.DebugContext(ctx, "catalog cache miss", "catalog", c.name)
	default:
		slog.WarnContext(ctx, "catalog cache unavailable, loading from source",
			"catalog", c.name,
			"error", err)
	}

	data, err := c.source.GetReference(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reference catalog")
	}

	if _, err := c.cache.Set(ctx, catalogcache.SetInput{
		Name:    c.name,
		Catalog: data.Catalog(),
		TTL:     c.ttl,
	}); err != nil {
		slog.WarnContext(ctx, "failed to cache reference catalog",
			"catalog", c.name,
			"error", err)
	}

	return data, nil
}
