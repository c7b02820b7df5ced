// Package migrate runs database migrations from embedded SQL files using
// golang-migrate.
package migrate

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// ErrEmptyURI indicates no database URI was provided.
var ErrEmptyURI = errors.New("migrate: database uri is empty")

// Up applies all pending migrations against the database at uri.
//
// A postgres:// scheme is rewritten to pgx5:// so golang-migrate uses the
// pgx driver. Returns nil when already at the latest version.
func Up(uri string) error {
	if uri == "" {
		return ErrEmptyURI
	}

	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrate source: %w", err)
	}

	uri = strings.Replace(uri, "postgres://", "pgx5://", 1)
	uri = strings.Replace(uri, "postgresql://", "pgx5://", 1)

	m, err := migrate.NewWithSourceInstance("iofs", src, uri)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
