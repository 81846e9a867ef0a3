package repository

import (
	"context"

	"github.com/golang-sql/civil"

	"github.com/osse101/CrossBot_Go/internal/domain"
)

// Puzzle defines the interface for puzzle record persistence
type Puzzle interface {
	TxBeginner

	// GetCompletion returns the row even when soft-deleted; nil when absent
	GetCompletion(ctx context.Context, userID string, pt domain.PuzzleType, date civil.Date) (*domain.Completion, error)
	// ListCompletions returns a user's non-deleted records, fails included, ascending
	ListCompletions(ctx context.Context, userID string, pt domain.PuzzleType) ([]domain.Completion, error)
	// ListCompletionsOn returns every non-deleted record for one date
	ListCompletionsOn(ctx context.Context, pt domain.PuzzleType, date civil.Date) ([]domain.Completion, error)
	// ListCompletionsBetween returns non-deleted records with from <= date <= to
	ListCompletionsBetween(ctx context.Context, pt domain.PuzzleType, from, to civil.Date) ([]domain.Completion, error)
	CompletedDates(ctx context.Context, userID string, pt domain.PuzzleType) ([]civil.Date, error)
}
