// Package migrations embeds the SQLite schema migrations for the
// client's local store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
