// Package catalog loads the reference catalogs the build engine resolves against.
// The file loader reads YAML catalogs; the cached client fronts any source with a
// TTL-bound Redis cache.
package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=catalogmock github.com/KirkDiggler/grimoire-api/internal/clients/catalog Client

import (
	"context"

	"github.com/KirkDiggler/grimoire-api/internal/reference"
)

// Client provides the current reference data
type Client interface {
	// GetReference returns the indexed catalogs
	// Returns errors.InvalidArgument for malformed catalog sources
	// Returns errors.Internal when the source cannot be read
	GetReference(ctx context.Context) (*reference.Data, error)
}
