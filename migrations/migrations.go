// Package migrations embeds the ledger schema so binaries and tests
// migrate without a migrations directory on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
