package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/llpg-simpleaddress/internal/config"
)

// Connection holds the gazetteer database connection
type Connection struct {
	DB *sql.DB
}

// DSN builds the connection string. DATABASE_URL wins over the PG* variables.
func DSN() string {
	if url := config.GetEnv("DATABASE_URL", ""); url != "" {
		return url
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.GetEnv("PGHOST", "localhost"),
		config.GetEnv("PGPORT", "5432"),
		config.GetEnv("PGUSER", "postgres"),
		config.GetEnv("PGPASSWORD", "postgres"),
		config.GetEnv("PGDATABASE", "llpg"),
		config.GetEnv("PGSSLMODE", "disable"),
	)
}

// NewConnection opens and pings the database described by dsn.
// An empty dsn falls back to DSN().
func NewConnection(ctx context.Context, dsn string, maxConns int) (*Connection, error) {
	if dsn == "" {
		dsn = DSN()
	}
	if maxConns <= 0 {
		maxConns = 10
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns / 2)
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connection{DB: db}, nil
}

// Close closes the database connection
func (c *Connection) Close() error {
	return c.DB.Close()
}
