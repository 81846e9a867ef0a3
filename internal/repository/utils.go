package repository

import (
	"context"
	"errors"

	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/logger"
)

// SafeRollback is deferred right after BeginTx. After a successful Commit the
// rollback reports domain.ErrTxClosed, which is expected and not logged.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, domain.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
