package memory

import (
	"context"
	"fmt"

	"github.com/golang-sql/civil"

	"github.com/osse101/CrossBot_Go/internal/domain"
)

// tx mutates a private snapshot; Commit publishes it
type tx struct {
	store  *Store
	state  *state
	closed bool
}

func (t *tx) Commit(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	t.closed = true

	t.store.mu.Lock()
	t.store.state = t.state
	t.store.mu.Unlock()

	t.store.txMu.Unlock()
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	t.closed = true
	t.store.txMu.Unlock()
	return nil
}

func (t *tx) checkOpen() error {
	if t.closed {
		return domain.ErrTxClosed
	}
	return nil
}

func (t *tx) LockUser(ctx context.Context, userID string) (*domain.User, error) {
	if err := t.checkOpen(); err != nil {
		return nil, err
	}
	user, ok := t.state.users[userID]
	if !ok {
		user = domain.User{ID: userID}
		t.state.users[userID] = user
	}
	return &user, nil
}

func (t *tx) UpdateBalance(ctx context.Context, userID string, balance int) error {
	if err := t.checkOpen(); err != nil {
		return err
	}
	user, ok := t.state.users[userID]
	if !ok {
		return fmt.Errorf("failed to update balance: %w", domain.ErrUserNotFound)
	}
	if balance < 0 {
		return fmt.Errorf("failed to update balance: %w: balance would be %d", domain.ErrInvalidAmount, balance)
	}
	user.Balance = balance
	t.state.users[userID] = user
	return nil
}

func (t *tx) UpdateHat(ctx context.Context, userID string, itemKey *string) error {
	if err := t.checkOpen(); err != nil {
		return err
	}
	user, ok := t.state.users[userID]
	if !ok {
		return fmt.Errorf("failed to update hat: %w", domain.ErrUserNotFound)
	}
	if itemKey != nil {
		if _, ok := t.state.items[*itemKey]; !ok {
			return fmt.Errorf("failed to update hat: %w: %s", domain.ErrItemNotFound, *itemKey)
		}
		key := *itemKey
		itemKey = &key
	}
	user.HatKey = itemKey
	t.state.users[userID] = user
	return nil
}

func (t *tx) GetItemQuantity(ctx context.Context, userID, itemKey string) (int, error) {
	if err := t.checkOpen(); err != nil {
		return 0, err
	}
	return t.state.ownership[userID][itemKey], nil
}

func (t *tx) SetItemQuantity(ctx context.Context, userID, itemKey string, quantity int) error {
	if err := t.checkOpen(); err != nil {
		return err
	}
	owned := t.state.ownership[userID]
	if quantity <= 0 {
		delete(owned, itemKey)
		return nil
	}
	if _, ok := t.state.users[userID]; !ok {
		return fmt.Errorf("failed to set item quantity: %w", domain.ErrUserNotFound)
	}
	if _, ok := t.state.items[itemKey]; !ok {
		return fmt.Errorf("failed to set item quantity: %w: %s", domain.ErrItemNotFound, itemKey)
	}
	if owned == nil {
		owned = make(map[string]int)
		t.state.ownership[userID] = owned
	}
	owned[itemKey] = quantity
	return nil
}

func (t *tx) GetCompletion(ctx context.Context, userID string, pt domain.PuzzleType, date civil.Date) (*domain.Completion, error) {
	if err := t.checkOpen(); err != nil {
		return nil, err
	}
	return t.state.getCompletion(userID, pt, date), nil
}

func (t *tx) SaveCompletion(ctx context.Context, c domain.Completion) (bool, error) {
	if err := t.checkOpen(); err != nil {
		return false, err
	}
	if fail, onFailure := t.store.takeSaveFailure(); fail {
		if onFailure != nil {
			onFailure()
		}
		return false, fmt.Errorf("failed to save completion: %w", domain.ErrStorageConflict)
	}
	if _, ok := t.state.users[c.UserID]; !ok {
		return false, fmt.Errorf("failed to save completion: %w", domain.ErrUserNotFound)
	}

	key := keyOf(c.UserID, c.PuzzleType, c.Date)
	existing, ok := t.state.completions[key]
	if ok && !existing.IsDeleted() {
		return false, fmt.Errorf("failed to save completion: %w: completion already recorded", domain.ErrStorageConflict)
	}
	t.state.completions[key] = c
	return !ok, nil
}

func (t *tx) SoftDeleteCompletion(ctx context.Context, userID string, pt domain.PuzzleType, date civil.Date) error {
	if err := t.checkOpen(); err != nil {
		return err
	}
	key := keyOf(userID, pt, date)
	if c, ok := t.state.completions[key]; ok {
		c.Seconds = nil
		t.state.completions[key] = c
	}
	return nil
}

func (t *tx) HardDeleteCompletion(ctx context.Context, userID string, pt domain.PuzzleType, date civil.Date) error {
	if err := t.checkOpen(); err != nil {
		return err
	}
	delete(t.state.completions, keyOf(userID, pt, date))
	return nil
}

func (t *tx) CompletedDates(ctx context.Context, userID string, pt domain.PuzzleType) ([]civil.Date, error) {
	if err := t.checkOpen(); err != nil {
		return nil, err
	}
	return t.state.completedDates(userID, pt), nil
}
