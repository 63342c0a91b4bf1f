// Package catalogcache provides a TTL-bound cache of loaded reference catalogs
package catalogcache

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogcachemock github.com/KirkDiggler/grimoire-api/internal/repositories/catalog_cache Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/grimoire-api/internal/reference"
)

// Repository stores catalogs by name with an expiry
type Repository interface {
	// Get returns a cached catalog
	// Returns errors.InvalidArgument for an empty name
	// Returns errors.NotFound when nothing is cached or the entry has expired
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set caches a catalog, replacing any previous entry
	// Returns errors.InvalidArgument for an empty name or nil catalog
	Set(ctx context.Context, input SetInput) (*SetOutput, error)

	// Invalidate drops a cached catalog; a missing entry is not an error
	Invalidate(ctx context.Context, input InvalidateInput) (*InvalidateOutput, error)
}

// CachedCatalog is a catalog plus its cache bookkeeping
type CachedCatalog struct {
	Name      string             `json:"name"`
	Catalog   *reference.Catalog `json:"catalog"`
	CachedAt  time.Time          `json:"cached_at"`
	ExpiresAt time.Time          `json:"expires_at"`
}

// GetInput names the catalog to read
type GetInput struct {
	Name string
}

// GetOutput contains the cached entry
type GetOutput struct {
	Entry *CachedCatalog
}

// SetInput contains the catalog to cache.
// A zero TTL uses the repository default.
type SetInput struct {
	Name    string
	Catalog *reference.Catalog
	TTL     time.Duration
}

// SetOutput contains the stored entry
type SetOutput struct {
	Entry *CachedCatalog
}

// InvalidateInput names the catalog to drop
type InvalidateInput struct {
	Name string
}

// InvalidateOutput reports whether an entry existed
type InvalidateOutput struct {
	Existed bool
}
