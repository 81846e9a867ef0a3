package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CrossBot_Go/internal/domain"
)

// ItemRepository implements the item catalog repository for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY item_key`)
	if err != nil {
		return nil, wrapPgError(ErrMsgFailedToListItems, err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, wrapPgError(ErrMsgFailedToListItems, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgError(ErrMsgFailedToListItems, err)
	}
	return items, nil
}

func (r *ItemRepository) GetItem(ctx context.Context, key string) (*domain.Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE item_key = $1`, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, key)
		}
		return nil, wrapPgError(ErrMsgFailedToGetItem, err)
	}
	return item, nil
}

// UpsertItems writes the whole batch in one transaction
func (r *ItemRepository) UpsertItems(ctx context.Context, items []domain.Item) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(`
			INSERT INTO items (`+itemColumns+`, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())
			ON CONFLICT (item_key) DO UPDATE
			SET name = EXCLUDED.name,
				emoji = EXCLUDED.emoji,
				droppable = EXCLUDED.droppable,
				rarity = EXCLUDED.rarity,
				is_hat = EXCLUDED.is_hat,
				updated_at = NOW()`,
			item.Key, item.Name, item.Emoji, item.Droppable, item.Rarity, item.IsHat)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return wrapPgError(ErrMsgFailedToUpsertItems, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return wrapPgError(ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}
