package database

import "embed"

// Migrations holds the embedded schema migrations applied at startup.
//
//go:embed migrations/*.sql
var Migrations embed.FS
