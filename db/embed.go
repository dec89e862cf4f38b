// Package db ships the schema migrations inside the binaries that apply them.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
