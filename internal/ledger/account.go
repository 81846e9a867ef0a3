package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/CrossBot_Go/internal/concurrency"
	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/logger"
	"github.com/osse101/CrossBot_Go/internal/repository"
)

// LockUsers row-locks every distinct user in ascending key order
func LockUsers(ctx context.Context, tx repository.AccountTx, userIDs ...string) (map[string]*domain.User, error) {
	users := make(map[string]*domain.User, len(userIDs))
	for _, id := range concurrency.SortedUnique(userIDs) {
		user, err := tx.LockUser(ctx, id)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgLockUserFailed, id, err)
		}
		users[id] = user
	}
	return users, nil
}

// CreditTx adds amount to a user locked in tx and updates the caller's copy
func CreditTx(ctx context.Context, tx repository.AccountTx, user *domain.User, amount int) error {
	if amount == 0 {
		return nil
	}
	if amount < 0 {
		return fmt.Errorf(ErrMsgInvalidAmountFmt, domain.ErrInvalidAmount, amount)
	}
	balance := user.Balance + amount
	if err := tx.UpdateBalance(ctx, user.ID, balance); err != nil {
		return fmt.Errorf(ErrMsgUpdateBalanceFailed, err)
	}
	user.Balance = balance
	logger.FromContext(ctx).Info(LogMsgCredited, "user_id", user.ID, "amount", amount, "balance", balance)
	return nil
}

func debitTx(ctx context.Context, tx repository.AccountTx, user *domain.User, amount int) (bool, error) {
	log := logger.FromContext(ctx)
	if user.Balance < amount {
		log.Info(LogMsgInsufficientFunds, "user_id", user.ID, "balance", user.Balance, "amount", amount)
		return false, nil
	}
	balance := user.Balance - amount
	if err := tx.UpdateBalance(ctx, user.ID, balance); err != nil {
		return false, fmt.Errorf(ErrMsgUpdateBalanceFailed, err)
	}
	user.Balance = balance
	log.Info(LogMsgDebited, "user_id", user.ID, "amount", amount, "balance", balance)
	return true, nil
}

// GrantItemTx adds quantity copies of an item to a user locked in tx
func GrantItemTx(ctx context.Context, tx repository.AccountTx, userID, itemKey string, quantity int) error {
	owned, err := tx.GetItemQuantity(ctx, userID, itemKey)
	if err != nil {
		return fmt.Errorf(ErrMsgGetQuantityFailed, err)
	}
	if err := tx.SetItemQuantity(ctx, userID, itemKey, owned+quantity); err != nil {
		return fmt.Errorf(ErrMsgSetQuantityFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgItemGranted, "user_id", userID, "item", itemKey, "quantity", quantity, "owned", owned+quantity)
	return nil
}

// RemovableQuantity is what can be taken away without stripping the worn hat
func RemovableQuantity(user domain.User, itemKey string, owned int) int {
	if user.HasHat(itemKey) {
		owned--
	}
	if owned < 0 {
		return 0
	}
	return owned
}
