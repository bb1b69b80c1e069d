// Package migrations carries the embedded goose migrations for the five
// reporting tables.
package migrations

import (
	"embed"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var migrationFS embed.FS

// Up applies all pending migrations through the given pool.
func Up(pool *pgxpool.Pool) error {
	goose.SetBaseFS(migrationFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return goose.Up(db, ".")
}
