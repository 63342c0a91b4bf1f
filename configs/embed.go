// Package configs embeds the default reference catalog shipped with the server
package configs

import (
	"embed"
	"io/fs"
)

//go:embed catalog/*.yaml
var catalogFiles embed.FS

// DefaultCatalog returns the embedded catalog directory
func DefaultCatalog() fs.FS {
	sub, err := fs.Sub(catalogFiles, "catalog")
	if err != nil {
		// The embed pattern guarantees the directory exists
		panic(err)
	}
	return sub
}
