// Package pgtest starts a throwaway PostgreSQL for integration tests and connects to it
// the same way the service does.
package pgtest

import (
	"context"
	"io"
	"log/slog"
	"time"

	postgres_adapter "shipmate/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Tables lists every table Migrate creates, for TRUNCATE between tests.
const Tables = "orders, complaints, senders, travellers"

// Start runs a postgres:15-alpine container, opens GORM on it and migrates the schema.
// The caller terminates the container.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := postgres_adapter.Open(ctx, dsn, Logger())
	if err != nil {
		return container, nil, err
	}

	if err = postgres_adapter.Migrate(db); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// Logger discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
