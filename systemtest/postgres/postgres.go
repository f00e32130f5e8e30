package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const image = "postgres:17-alpine"

// Database is a throwaway PostgreSQL for the system tests.
type Database struct {
	container *postgres.PostgresContainer
	DSN       string
}

func Start(ctx context.Context, name string) (*Database, error) {
	container, err := postgres.Run(ctx, image,
		postgres.WithUsername(name),
		postgres.WithPassword(name),
		postgres.WithDatabase(name),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(context.Background())
		return nil, fmt.Errorf("postgres connection string: %w", err)
	}

	return &Database{container: container, DSN: dsn}, nil
}

func (d *Database) Terminate(ctx context.Context) error {
	if err := d.container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate postgres container: %w", err)
	}
	return nil
}
