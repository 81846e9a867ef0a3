package repository

import (
	"context"

	"github.com/osse101/CrossBot_Go/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	TxBeginner

	GetUser(ctx context.Context, userID string) (*domain.User, error)
	// UpsertUser creates the user or updates its display name
	UpsertUser(ctx context.Context, userID, name string) (*domain.User, error)
	GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error)
}
