package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// NewPostgresDB opens and pings a Postgres connection.
func NewPostgresDB(conn string) (*sql.DB, error) {
	database, err := sql.Open("postgres", conn)
	if err != nil {
		return nil, fmt.Errorf("db.NewPostgresDB: %w", err)
	}
	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("db.NewPostgresDB: ping: %w", err)
	}
	return database, nil
}
