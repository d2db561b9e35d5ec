// Package brandkit exposes assets embedded into the binary.
package brandkit

import "embed"

// Migrations holds the goose SQL migrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS
