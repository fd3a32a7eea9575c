package db

import (
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrateUp applies all pending schema migrations from migrationsURL.
func MigrateUp(database *sql.DB, migrationsURL string) error {
	m, err := newMigrator(database, migrationsURL)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("db.MigrateUp: %w", err)
	}
	return nil
}

// MigrateDown rolls back all schema migrations from migrationsURL.
func MigrateDown(database *sql.DB, migrationsURL string) error {
	m, err := newMigrator(database, migrationsURL)
	if err != nil {
		return err
	}

	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("db.MigrateDown: %w", err)
	}
	return nil
}

func newMigrator(database *sql.DB, migrationsURL string) (*migrate.Migrate, error) {
	driver, err := postgres.WithInstance(database, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("db.newMigrator: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsURL, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("db.newMigrator: %w", err)
	}
	return m, nil
}
