// Package migrations embeds the SQL migrations of the attachment store.
package migrations

import "embed"

// Migrations holds the embedded goose migration files.
//
//go:embed *.sql
var Migrations embed.FS
