package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CrossBot_Go/internal/domain"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	txStarter
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{txStarter: txStarter{db: db}}
}

// GetUser returns domain.ErrUserNotFound when the user has never interacted
func (r *UserRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
		}
		return nil, wrapPgError(ErrMsgFailedToGetUser, err)
	}
	return user, nil
}

// UpsertUser creates the user or updates the display name
func (r *UserRepository) UpsertUser(ctx context.Context, userID, name string) (*domain.User, error) {
	query := `
		INSERT INTO users (user_id, name) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET name = EXCLUDED.name, updated_at = NOW()
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, userID, name))
	if err != nil {
		return nil, wrapPgError(ErrMsgFailedToUpsertUser, err)
	}
	return user, nil
}

// GetInventory returns the user's owned items joined with the catalog
func (r *UserRepository) GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	query := `
		SELECT i.item_key, i.name, i.emoji, i.droppable, i.rarity, i.is_hat, o.quantity
		FROM item_ownership o
		JOIN items i ON i.item_key = o.item_key
		WHERE o.user_id = $1
		ORDER BY i.item_key`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapPgError(ErrMsgFailedToGetInventory, err)
	}
	defer rows.Close()

	inventory := []domain.InventoryItem{}
	for rows.Next() {
		var entry domain.InventoryItem
		it := &entry.Item
		if err := rows.Scan(&it.Key, &it.Name, &it.Emoji, &it.Droppable, &it.Rarity, &it.IsHat, &entry.Quantity); err != nil {
			return nil, wrapPgError(ErrMsgFailedToGetInventory, err)
		}
		inventory = append(inventory, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgError(ErrMsgFailedToGetInventory, err)
	}
	return inventory, nil
}
