// Package db embeds the schema migrations for the bookkeeping tables. Stage
// tables are created by the stages themselves.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations inside the embedded FS.
const MigrationsDir = "migrations"
