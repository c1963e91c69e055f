// Package migrations embeds the PostgreSQL schema migrations applied at
// startup when the postgres store backend is selected.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
