// Package schema embeds the staging tables used while deriving the
// dashboard series.
package schema

import "embed"

// FS contains the staging schema files.
//
//go:embed *.sql
var FS embed.FS
