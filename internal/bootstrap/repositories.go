package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CrossBot_Go/internal/database/postgres"
	"github.com/osse101/CrossBot_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	User     repository.User
	Puzzle   repository.Puzzle
	Item     repository.Item
	Settings repository.Settings
}

// InitializeRepositories creates the Postgres-backed repositories
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:     postgres.NewUserRepository(dbPool),
		Puzzle:   postgres.NewPuzzleRepository(dbPool),
		Item:     postgres.NewItemRepository(dbPool),
		Settings: postgres.NewSettingsRepository(dbPool),
	}
}
