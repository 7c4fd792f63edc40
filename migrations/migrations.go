// Package migrations embeds the goose SQL migrations for the catalog schema.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed catalog/*.sql
var files embed.FS

// Catalog returns the catalog migrations rooted at their own directory.
func Catalog() fs.FS {
	sub, err := fs.Sub(files, "catalog")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory exists
	}
	return sub
}
