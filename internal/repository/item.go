package repository

import (
	"context"

	"github.com/osse101/CrossBot_Go/internal/domain"
)

// Item defines the interface for item catalog persistence
type Item interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	GetItem(ctx context.Context, key string) (*domain.Item, error)
	// UpsertItems inserts or replaces items by key in one transaction
	UpsertItems(ctx context.Context, items []domain.Item) error
}

// Settings defines the interface for game settings persistence
type Settings interface {
	// GetSettings returns nil when no settings were ever saved
	GetSettings(ctx context.Context) (*domain.GameSettings, error)
	SaveSettings(ctx context.Context, s domain.GameSettings) error
}
