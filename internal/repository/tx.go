package repository

import (
	"context"

	"github.com/golang-sql/civil"

	"github.com/osse101/CrossBot_Go/internal/domain"
)

// Tx is a unit of work scoped to the users it has locked.
// Callers lock every user they touch with LockUser before mutating.
type Tx interface {
	AccountTx
	CompletionTx
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// AccountTx defines ledger operations within a transaction
type AccountTx interface {
	// LockUser row-locks the user, creating it with an empty name on first touch
	LockUser(ctx context.Context, userID string) (*domain.User, error)
	UpdateBalance(ctx context.Context, userID string, balance int) error
	UpdateHat(ctx context.Context, userID string, itemKey *string) error
	GetItemQuantity(ctx context.Context, userID, itemKey string) (int, error)
	// SetItemQuantity writes the owned quantity; zero removes the ownership row
	SetItemQuantity(ctx context.Context, userID, itemKey string, quantity int) error
}

// CompletionTx defines puzzle record operations within a transaction
type CompletionTx interface {
	// GetCompletion returns nil when no row exists. Soft-deleted rows come
	// back with nil Seconds.
	GetCompletion(ctx context.Context, userID string, pt domain.PuzzleType, date civil.Date) (*domain.Completion, error)
	// SaveCompletion inserts a record or resurrects a soft-deleted one, and
	// reports whether a new row was inserted. Overwriting a live record fails
	// with domain.ErrStorageConflict.
	SaveCompletion(ctx context.Context, c domain.Completion) (bool, error)
	SoftDeleteCompletion(ctx context.Context, userID string, pt domain.PuzzleType, date civil.Date) error
	HardDeleteCompletion(ctx context.Context, userID string, pt domain.PuzzleType, date civil.Date) error
	// CompletedDates returns dates with a successful solve
	CompletedDates(ctx context.Context, userID string, pt domain.PuzzleType) ([]civil.Date, error)
}

// TxBeginner starts transactions
type TxBeginner interface {
	BeginTx(ctx context.Context) (Tx, error)
}
