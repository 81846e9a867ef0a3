package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/CrossBot_Go/internal/database"
)

var (
	testPool *pgxpool.Pool
)

// startTestDatabase runs a throwaway Postgres with migrations applied.
// Returns a nil pool when Docker is unavailable.
func startTestDatabase(ctx context.Context) (*pgxpool.Pool, func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in startTestDatabase: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("crossbot_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return nil, func() {}
	}
	terminate := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		terminate()
		return nil, func() {}
	}

	pool, err := database.NewPool(ctx, connStr, 20, time.Minute, 30*time.Minute)
	if err != nil {
		fmt.Printf("WARNING: Failed to connect: %v\n", err)
		terminate()
		return nil, func() {}
	}

	if err := database.Migrate(ctx, pool); err != nil {
		fmt.Printf("WARNING: Failed to migrate: %v\n", err)
		pool.Close()
		terminate()
		return nil, func() {}
	}

	return pool, func() {
		pool.Close()
		terminate()
	}
}

// requirePool skips the test when no database is running and wipes all tables otherwise
func requirePool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}

	_, err := testPool.Exec(context.Background(),
		`TRUNCATE completions, item_ownership, users, items, game_settings CASCADE`)
	if err != nil {
		t.Fatalf("failed to reset tables: %v", err)
	}
	return testPool
}
