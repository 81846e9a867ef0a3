package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-sql/civil"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/logger"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// wrapPgError prefixes err with msg and tags contention errors with
// domain.ErrStorageConflict so callers can retry.
func wrapPgError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgErrorCodeUniqueViolation, PgErrorCodeSerializationFailure, PgErrorCodeDeadlockDetected:
			return fmt.Errorf("%s: %w: %w", msg, domain.ErrStorageConflict, err)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// dateParam converts a calendar date to a DATE parameter
func dateParam(d civil.Date) pgtype.Date {
	return pgtype.Date{Time: d.In(time.UTC), Valid: true}
}

// dateFromPg converts a scanned DATE back to a calendar date
func dateFromPg(d pgtype.Date) civil.Date {
	return civil.DateOf(d.Time)
}

const completionColumns = `user_id, puzzle_type, puzzle_date, seconds, recorded_at`

// scanCompletion reads one completions row selected with completionColumns
func scanCompletion(row pgx.Row) (*domain.Completion, error) {
	var (
		c          domain.Completion
		puzzleType string
		date       pgtype.Date
	)
	if err := row.Scan(&c.UserID, &puzzleType, &date, &c.Seconds, &c.Timestamp); err != nil {
		return nil, err
	}
	c.PuzzleType = domain.PuzzleType(puzzleType)
	c.Date = dateFromPg(date)
	return &c, nil
}

// collectCompletions drains rows into a slice
func collectCompletions(rows pgx.Rows) ([]domain.Completion, error) {
	defer rows.Close()

	completions := []domain.Completion{}
	for rows.Next() {
		c, err := scanCompletion(rows)
		if err != nil {
			return nil, err
		}
		completions = append(completions, *c)
	}
	return completions, rows.Err()
}

// collectDates drains a single-column DATE result
func collectDates(rows pgx.Rows) ([]civil.Date, error) {
	defer rows.Close()

	dates := []civil.Date{}
	for rows.Next() {
		var d pgtype.Date
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, dateFromPg(d))
	}
	return dates, rows.Err()
}

func getCompletion(ctx context.Context, q querier, userID string, pt domain.PuzzleType, date civil.Date) (*domain.Completion, error) {
	query := `SELECT ` + completionColumns + `
		FROM completions
		WHERE user_id = $1 AND puzzle_type = $2 AND puzzle_date = $3`

	c, err := scanCompletion(q.QueryRow(ctx, query, userID, string(pt), dateParam(date)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapPgError(ErrMsgFailedToGetCompletion, err)
	}
	return c, nil
}

func completedDates(ctx context.Context, q querier, userID string, pt domain.PuzzleType) ([]civil.Date, error) {
	query := `
		SELECT puzzle_date
		FROM completions
		WHERE user_id = $1 AND puzzle_type = $2 AND seconds >= 0
		ORDER BY puzzle_date`

	rows, err := q.Query(ctx, query, userID, string(pt))
	if err != nil {
		return nil, wrapPgError(ErrMsgFailedToGetCompletedDates, err)
	}
	dates, err := collectDates(rows)
	if err != nil {
		return nil, wrapPgError(ErrMsgFailedToGetCompletedDates, err)
	}
	return dates, nil
}

const userColumns = `user_id, name, balance, hat_item_key`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Balance, &u.HatKey); err != nil {
		return nil, err
	}
	return &u, nil
}

const itemColumns = `item_key, name, emoji, droppable, rarity, is_hat`

func scanItem(row pgx.Row) (*domain.Item, error) {
	var i domain.Item
	if err := row.Scan(&i.Key, &i.Name, &i.Emoji, &i.Droppable, &i.Rarity, &i.IsHat); err != nil {
		return nil, err
	}
	return &i, nil
}
