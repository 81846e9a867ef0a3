package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/CrossBot_Go/internal/concurrency"
	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/logger"
	"github.com/osse101/CrossBot_Go/internal/repository"
)

// Service defines the interface for account balance, inventory and hat operations.
// Insufficient funds and unowned items are reported as false, never as errors.
type Service interface {
	RegisterUser(ctx context.Context, userID, name string) (*domain.User, error)
	GetAccount(ctx context.Context, userID string) (*domain.Account, error)
	Credit(ctx context.Context, userID string, amount int) error
	Debit(ctx context.Context, userID string, amount int) (bool, error)
	Transfer(ctx context.Context, fromID, toID string, amount int) (bool, error)
	GrantItem(ctx context.Context, userID, itemKey string, quantity int) error
	RevokeItem(ctx context.Context, userID, itemKey string, quantity int) (bool, error)
	Equip(ctx context.Context, userID, itemKey string) (bool, error)
	Unequip(ctx context.Context, userID string) (bool, error)
}

// ItemLookup resolves catalog entries. catalog.Service satisfies it.
type ItemLookup interface {
	Get(ctx context.Context, key string) (*domain.Item, error)
}

type service struct {
	repo  repository.User
	items ItemLookup
	locks *concurrency.LockManager
}

// NewService creates a ledger service. locks must be shared with every other
// service that mutates accounts.
func NewService(repo repository.User, items ItemLookup, locks *concurrency.LockManager) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		repo:  repo,
		items: items,
		locks: locks,
	}
}

func (s *service) RegisterUser(ctx context.Context, userID, name string) (*domain.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", domain.ErrInvalidInput)
	}
	user, err := s.repo.UpsertUser(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgUpsertUserFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgUserRegistered, "user_id", userID, "name", name)
	return user, nil
}

func (s *service) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	inventory, err := s.repo.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	return &domain.Account{User: *user, Inventory: inventory}, nil
}

func (s *service) Credit(ctx context.Context, userID string, amount int) error {
	if amount <= 0 {
		return fmt.Errorf(ErrMsgInvalidAmountFmt, domain.ErrInvalidAmount, amount)
	}
	_, err := s.withUsers(ctx, func(tx repository.Tx, users map[string]*domain.User) (bool, error) {
		return true, CreditTx(ctx, tx, users[userID], amount)
	}, userID)
	return err
}

func (s *service) Debit(ctx context.Context, userID string, amount int) (bool, error) {
	if amount <= 0 {
		return false, fmt.Errorf(ErrMsgInvalidAmountFmt, domain.ErrInvalidAmount, amount)
	}
	return s.withUsers(ctx, func(tx repository.Tx, users map[string]*domain.User) (bool, error) {
		return debitTx(ctx, tx, users[userID], amount)
	}, userID)
}

func (s *service) Transfer(ctx context.Context, fromID, toID string, amount int) (bool, error) {
	if fromID == toID {
		return false, fmt.Errorf("%w: %s", domain.ErrSelfTransfer, fromID)
	}
	if amount <= 0 {
		return false, fmt.Errorf(ErrMsgInvalidAmountFmt, domain.ErrInvalidAmount, amount)
	}

	return s.withUsers(ctx, func(tx repository.Tx, users map[string]*domain.User) (bool, error) {
		ok, err := debitTx(ctx, tx, users[fromID], amount)
		if err != nil || !ok {
			return ok, err
		}
		if err := CreditTx(ctx, tx, users[toID], amount); err != nil {
			return false, err
		}
		logger.FromContext(ctx).Info(LogMsgTransferred, "from", fromID, "to", toID, "amount", amount)
		return true, nil
	}, fromID, toID)
}

func (s *service) GrantItem(ctx context.Context, userID, itemKey string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf(ErrMsgInvalidQuantityFmt, domain.ErrInvalidQuantity, quantity)
	}
	if _, err := s.items.Get(ctx, itemKey); err != nil {
		return err
	}
	_, err := s.withUsers(ctx, func(tx repository.Tx, _ map[string]*domain.User) (bool, error) {
		return true, GrantItemTx(ctx, tx, userID, itemKey, quantity)
	}, userID)
	return err
}

// RevokeItem never removes the last copy of the equipped hat
func (s *service) RevokeItem(ctx context.Context, userID, itemKey string, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, fmt.Errorf(ErrMsgInvalidQuantityFmt, domain.ErrInvalidQuantity, quantity)
	}
	if _, err := s.items.Get(ctx, itemKey); err != nil {
		return false, err
	}

	return s.withUsers(ctx, func(tx repository.Tx, users map[string]*domain.User) (bool, error) {
		log := logger.FromContext(ctx)
		owned, err := tx.GetItemQuantity(ctx, userID, itemKey)
		if err != nil {
			return false, fmt.Errorf(ErrMsgGetQuantityFailed, err)
		}
		removable := RemovableQuantity(*users[userID], itemKey, owned)
		if removable < quantity {
			log.Info(LogMsgInsufficientItems, "user_id", userID, "item", itemKey, "removable", removable, "requested", quantity)
			return false, nil
		}
		if err := tx.SetItemQuantity(ctx, userID, itemKey, owned-quantity); err != nil {
			return false, fmt.Errorf(ErrMsgSetQuantityFailed, err)
		}
		log.Info(LogMsgItemRevoked, "user_id", userID, "item", itemKey, "quantity", quantity)
		return true, nil
	}, userID)
}

func (s *service) Equip(ctx context.Context, userID, itemKey string) (bool, error) {
	item, err := s.items.Get(ctx, itemKey)
	if err != nil {
		return false, err
	}
	if !item.IsHat {
		return false, fmt.Errorf("%w: %s", domain.ErrNotEquippable, itemKey)
	}

	return s.withUsers(ctx, func(tx repository.Tx, _ map[string]*domain.User) (bool, error) {
		owned, err := tx.GetItemQuantity(ctx, userID, itemKey)
		if err != nil {
			return false, fmt.Errorf(ErrMsgGetQuantityFailed, err)
		}
		if owned == 0 {
			return false, nil
		}
		if err := tx.UpdateHat(ctx, userID, &itemKey); err != nil {
			return false, fmt.Errorf(ErrMsgUpdateHatFailed, err)
		}
		logger.FromContext(ctx).Info(LogMsgHatEquipped, "user_id", userID, "item", itemKey)
		return true, nil
	}, userID)
}

func (s *service) Unequip(ctx context.Context, userID string) (bool, error) {
	return s.withUsers(ctx, func(tx repository.Tx, users map[string]*domain.User) (bool, error) {
		if users[userID].HatKey == nil {
			return false, nil
		}
		if err := tx.UpdateHat(ctx, userID, nil); err != nil {
			return false, fmt.Errorf(ErrMsgUpdateHatFailed, err)
		}
		logger.FromContext(ctx).Info(LogMsgHatUnequipped, "user_id", userID)
		return true, nil
	}, userID)
}

// withUsers runs fn in one transaction holding the in-process and row locks
// of every listed user, acquired in ascending key order.
func (s *service) withUsers(ctx context.Context, fn func(repository.Tx, map[string]*domain.User) (bool, error), userIDs ...string) (bool, error) {
	unlock := s.locks.LockAll(userIDs...)
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return false, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	users, err := LockUsers(ctx, tx, userIDs...)
	if err != nil {
		return false, err
	}

	ok, err := fn(tx, users)
	if err != nil {
		return false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return ok, nil
}
