package postgres

import (
	"context"

	"github.com/golang-sql/civil"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CrossBot_Go/internal/domain"
)

// PuzzleRepository implements the puzzle record repository for PostgreSQL
type PuzzleRepository struct {
	txStarter
}

// NewPuzzleRepository creates a new PuzzleRepository
func NewPuzzleRepository(db *pgxpool.Pool) *PuzzleRepository {
	return &PuzzleRepository{txStarter: txStarter{db: db}}
}

func (r *PuzzleRepository) GetCompletion(ctx context.Context, userID string, pt domain.PuzzleType, date civil.Date) (*domain.Completion, error) {
	return getCompletion(ctx, r.db, userID, pt, date)
}

func (r *PuzzleRepository) ListCompletions(ctx context.Context, userID string, pt domain.PuzzleType) ([]domain.Completion, error) {
	query := `SELECT ` + completionColumns + `
		FROM completions
		WHERE user_id = $1 AND puzzle_type = $2 AND seconds IS NOT NULL
		ORDER BY puzzle_date`

	rows, err := r.db.Query(ctx, query, userID, string(pt))
	if err != nil {
		return nil, wrapPgError(ErrMsgFailedToListCompletions, err)
	}
	completions, err := collectCompletions(rows)
	if err != nil {
		return nil, wrapPgError(ErrMsgFailedToListCompletions, err)
	}
	return completions, nil
}

// ListCompletionsOn orders successes fastest first, then fails
func (r *PuzzleRepository) ListCompletionsOn(ctx context.Context, pt domain.PuzzleType, date civil.Date) ([]domain.Completion, error) {
	return r.ListCompletionsBetween(ctx, pt, date, date)
}

func (r *PuzzleRepository) ListCompletionsBetween(ctx context.Context, pt domain.PuzzleType, from, to civil.Date) ([]domain.Completion, error) {
	query := `SELECT ` + completionColumns + `
		FROM completions
		WHERE puzzle_type = $1 AND puzzle_date BETWEEN $2 AND $3 AND seconds IS NOT NULL
		ORDER BY puzzle_date, (seconds < 0), seconds, recorded_at, user_id`

	rows, err := r.db.Query(ctx, query, string(pt), dateParam(from), dateParam(to))
	if err != nil {
		return nil, wrapPgError(ErrMsgFailedToListCompletions, err)
	}
	completions, err := collectCompletions(rows)
	if err != nil {
		return nil, wrapPgError(ErrMsgFailedToListCompletions, err)
	}
	return completions, nil
}

func (r *PuzzleRepository) CompletedDates(ctx context.Context, userID string, pt domain.PuzzleType) ([]civil.Date, error) {
	return completedDates(ctx, r.db, userID, pt)
}
