package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-sql/civil"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/repository"
)

// txStarter opens pgTx transactions on a pool
type txStarter struct {
	db *pgxpool.Pool
}

// BeginTx starts a new transaction
func (s txStarter) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &pgTx{tx: tx}, nil
}

// pgTx implements repository.Tx on a pgx transaction
type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return wrapPgError(ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *pgTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return domain.ErrTxClosed
		}
		return wrapPgError(ErrMsgFailedToRollbackTransaction, err)
	}
	return nil
}

// LockUser inserts the user if missing, then takes a row lock for the rest of the transaction
func (t *pgTx) LockUser(ctx context.Context, userID string) (*domain.User, error) {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO users (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		return nil, wrapPgError(ErrMsgFailedToLockUser, err)
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 FOR UPDATE`
	user, err := scanUser(t.tx.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, wrapPgError(ErrMsgFailedToLockUser, err)
	}
	return user, nil
}

func (t *pgTx) UpdateBalance(ctx context.Context, userID string, balance int) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE users SET balance = $2, updated_at = NOW()
		WHERE user_id = $1`, userID, balance)
	if err != nil {
		return wrapPgError(ErrMsgFailedToUpdateBalance, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateBalance, domain.ErrUserNotFound)
	}
	return nil
}

func (t *pgTx) UpdateHat(ctx context.Context, userID string, itemKey *string) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE users SET hat_item_key = $2, updated_at = NOW()
		WHERE user_id = $1`, userID, itemKey)
	if err != nil {
		return wrapPgError(ErrMsgFailedToUpdateHat, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateHat, domain.ErrUserNotFound)
	}
	return nil
}

func (t *pgTx) GetItemQuantity(ctx context.Context, userID, itemKey string) (int, error) {
	var quantity int
	err := t.tx.QueryRow(ctx, `
		SELECT quantity FROM item_ownership
		WHERE user_id = $1 AND item_key = $2`, userID, itemKey).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, wrapPgError(ErrMsgFailedToGetQuantity, err)
	}
	return quantity, nil
}

func (t *pgTx) SetItemQuantity(ctx context.Context, userID, itemKey string, quantity int) error {
	if quantity <= 0 {
		_, err := t.tx.Exec(ctx, `
			DELETE FROM item_ownership
			WHERE user_id = $1 AND item_key = $2`, userID, itemKey)
		if err != nil {
			return wrapPgError(ErrMsgFailedToDeleteOwnership, err)
		}
		return nil
	}

	_, err := t.tx.Exec(ctx, `
		INSERT INTO item_ownership (user_id, item_key, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, item_key) DO UPDATE
		SET quantity = EXCLUDED.quantity`, userID, itemKey, quantity)
	if err != nil {
		return wrapPgError(ErrMsgFailedToSetQuantity, err)
	}
	return nil
}

func (t *pgTx) GetCompletion(ctx context.Context, userID string, pt domain.PuzzleType, date civil.Date) (*domain.Completion, error) {
	return getCompletion(ctx, t.tx, userID, pt, date)
}

// SaveCompletion only overwrites a soft-deleted row. A live row on the same
// key means another writer got there first.
func (t *pgTx) SaveCompletion(ctx context.Context, c domain.Completion) (bool, error) {
	query := `
		INSERT INTO completions (` + completionColumns + `)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, puzzle_type, puzzle_date) DO UPDATE
		SET seconds = EXCLUDED.seconds, recorded_at = EXCLUDED.recorded_at
		WHERE completions.seconds IS NULL
		RETURNING (xmax = 0) AS inserted`

	var inserted bool
	err := t.tx.QueryRow(ctx, query,
		c.UserID, string(c.PuzzleType), dateParam(c.Date), c.Seconds, c.Timestamp,
	).Scan(&inserted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("%s: %w: %s", ErrMsgFailedToSaveCompletion, domain.ErrStorageConflict, ErrMsgCompletionAlreadyRecorded)
		}
		return false, wrapPgError(ErrMsgFailedToSaveCompletion, err)
	}
	return inserted, nil
}

func (t *pgTx) SoftDeleteCompletion(ctx context.Context, userID string, pt domain.PuzzleType, date civil.Date) error {
	_, err := t.tx.Exec(ctx, `
		UPDATE completions SET seconds = NULL, recorded_at = NOW()
		WHERE user_id = $1 AND puzzle_type = $2 AND puzzle_date = $3`,
		userID, string(pt), dateParam(date))
	if err != nil {
		return wrapPgError(ErrMsgFailedToDeleteCompletion, err)
	}
	return nil
}

func (t *pgTx) HardDeleteCompletion(ctx context.Context, userID string, pt domain.PuzzleType, date civil.Date) error {
	_, err := t.tx.Exec(ctx, `
		DELETE FROM completions
		WHERE user_id = $1 AND puzzle_type = $2 AND puzzle_date = $3`,
		userID, string(pt), dateParam(date))
	if err != nil {
		return wrapPgError(ErrMsgFailedToDeleteCompletion, err)
	}
	return nil
}

func (t *pgTx) CompletedDates(ctx context.Context, userID string, pt domain.PuzzleType) ([]civil.Date, error) {
	return completedDates(ctx, t.tx, userID, pt)
}
