package migrations

import "embed"

// FS holds the versioned PostgreSQL migrations.
//
//go:embed *.sql
var FS embed.FS
