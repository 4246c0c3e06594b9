package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// NewDB opens a MySQL connection pool and verifies it is reachable. The
// backing store is a hard dependency — a failed ping is a startup error, not
// a degraded mode.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// Migrate creates the users table if it does not exist. The UNIQUE constraint
// on email is what actually enforces one account per address — concurrent
// registrations race down to a single winning INSERT here, regardless of any
// lookup the service layer did first.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id            CHAR(20) PRIMARY KEY,
			username      VARCHAR(255) NOT NULL,
			email         VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at    DATETIME NOT NULL,
			updated_at    DATETIME NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	return nil
}
