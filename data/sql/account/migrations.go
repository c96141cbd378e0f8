package account

import (
	"embed"

	pkgsql "github.com/klwxsrx/tagabukid-property/pkg/sql"
)

var Migrations = pkgsql.MigrationSource{
	Name:       "account",
	Migrations: migrationFiles,
}

//go:embed *.sql
var migrationFiles embed.FS
