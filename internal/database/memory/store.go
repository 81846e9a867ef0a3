// Package memory is a stateful in-process implementation of every
// repository interface. Transactions are serialized by a store-wide lock
// and work on a snapshot that replaces the committed state on Commit.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/golang-sql/civil"

	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/repository"
)

type completionKey struct {
	userID     string
	puzzleType domain.PuzzleType
	date       civil.Date
}

func keyOf(userID string, pt domain.PuzzleType, date civil.Date) completionKey {
	return completionKey{userID: userID, puzzleType: pt, date: date}
}

type state struct {
	users       map[string]domain.User
	items       map[string]domain.Item
	ownership   map[string]map[string]int
	completions map[completionKey]domain.Completion
	settings    *domain.GameSettings
}

func newState() *state {
	return &state{
		users:       make(map[string]domain.User),
		items:       make(map[string]domain.Item),
		ownership:   make(map[string]map[string]int),
		completions: make(map[completionKey]domain.Completion),
	}
}

// clone copies every map. Pointer fields (HatKey, Seconds) are never
// mutated in place so they can be shared.
func (s *state) clone() *state {
	c := newState()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	for user, owned := range s.ownership {
		copied := make(map[string]int, len(owned))
		for k, v := range owned {
			copied[k] = v
		}
		c.ownership[user] = copied
	}
	for k, v := range s.completions {
		c.completions[k] = v
	}
	if s.settings != nil {
		settings := *s.settings
		c.settings = &settings
	}
	return c
}

// Store implements repository.User, repository.Puzzle, repository.Item
// and repository.Settings in memory
type Store struct {
	// txMu is held for the whole life of a transaction
	txMu sync.Mutex
	// mu guards state
	mu    sync.RWMutex
	state *state

	faultMu       sync.Mutex
	failSaves     int
	onSaveFailure func()
}

var (
	_ repository.User     = (*Store)(nil)
	_ repository.Puzzle   = (*Store)(nil)
	_ repository.Item     = (*Store)(nil)
	_ repository.Settings = (*Store)(nil)
)

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{state: newState()}
}

// FailNextSaves makes the next n SaveCompletion calls fail with
// domain.ErrStorageConflict, calling onFailure (if set) each time. Tests use
// it to play a concurrent writer that commits first.
func (s *Store) FailNextSaves(n int, onFailure func()) {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	s.failSaves = n
	s.onSaveFailure = onFailure
}

func (s *Store) takeSaveFailure() (bool, func()) {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	if s.failSaves <= 0 {
		return false, nil
	}
	s.failSaves--
	return true, s.onSaveFailure
}

// PutCompletion writes a record straight into committed state, creating the user if needed
func (s *Store) PutCompletion(c domain.Completion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.users[c.UserID]; !ok {
		s.state.users[c.UserID] = domain.User{ID: c.UserID}
	}
	s.state.completions[keyOf(c.UserID, c.PuzzleType, c.Date)] = c
}

// BeginTx blocks until no other transaction is open
func (s *Store) BeginTx(ctx context.Context) (repository.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	s.txMu.Lock()

	s.mu.RLock()
	snapshot := s.state.clone()
	s.mu.RUnlock()

	return &tx{store: s, state: snapshot}, nil
}

func (s *Store) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.state.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	return &user, nil
}

func (s *Store) UpsertUser(ctx context.Context, userID, name string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.state.users[userID]
	user.ID = userID
	user.Name = name
	s.state.users[userID] = user
	return &user, nil
}

func (s *Store) GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inventory := []domain.InventoryItem{}
	for key, qty := range s.state.ownership[userID] {
		item, ok := s.state.items[key]
		if !ok {
			item = domain.Item{Key: key}
		}
		inventory = append(inventory, domain.InventoryItem{Item: item, Quantity: qty})
	}
	sort.Slice(inventory, func(i, j int) bool {
		return inventory[i].Item.Key < inventory[j].Item.Key
	})
	return inventory, nil
}

func (s *Store) GetCompletion(ctx context.Context, userID string, pt domain.PuzzleType, date civil.Date) (*domain.Completion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.getCompletion(userID, pt, date), nil
}

func (s *Store) ListCompletions(ctx context.Context, userID string, pt domain.PuzzleType) ([]domain.Completion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Completion{}
	for k, c := range s.state.completions {
		if k.userID == userID && k.puzzleType == pt && !c.IsDeleted() {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *Store) ListCompletionsOn(ctx context.Context, pt domain.PuzzleType, date civil.Date) ([]domain.Completion, error) {
	return s.ListCompletionsBetween(ctx, pt, date, date)
}

// ListCompletionsBetween orders by date, then successes fastest first, then fails
func (s *Store) ListCompletionsBetween(ctx context.Context, pt domain.PuzzleType, from, to civil.Date) ([]domain.Completion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Completion{}
	for k, c := range s.state.completions {
		if k.puzzleType != pt || c.IsDeleted() || k.date.Before(from) || k.date.After(to) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Date != b.Date {
			return a.Date.Before(b.Date)
		}
		if a.IsFail() != b.IsFail() {
			return !a.IsFail()
		}
		if *a.Seconds != *b.Seconds {
			return *a.Seconds < *b.Seconds
		}
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.Before(b.Timestamp)
		}
		return a.UserID < b.UserID
	})
	return out, nil
}

func (s *Store) CompletedDates(ctx context.Context, userID string, pt domain.PuzzleType) ([]civil.Date, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.completedDates(userID, pt), nil
}

func (s *Store) ListItems(ctx context.Context) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Item, 0, len(s.state.items))
	for _, item := range s.state.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	return items, nil
}

func (s *Store) GetItem(ctx context.Context, key string) (*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.state.items[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, key)
	}
	return &item, nil
}

func (s *Store) UpsertItems(ctx context.Context, items []domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		s.state.items[item.Key] = item
	}
	return nil
}

func (s *Store) GetSettings(ctx context.Context) (*domain.GameSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.settings == nil {
		return nil, nil
	}
	settings := *s.state.settings
	return &settings, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings domain.GameSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.settings = &settings
	return nil
}

func (st *state) getCompletion(userID string, pt domain.PuzzleType, date civil.Date) *domain.Completion {
	c, ok := st.completions[keyOf(userID, pt, date)]
	if !ok {
		return nil
	}
	return &c
}

func (st *state) completedDates(userID string, pt domain.PuzzleType) []civil.Date {
	dates := []civil.Date{}
	for k, c := range st.completions {
		if k.userID == userID && k.puzzleType == pt && c.IsSolved() {
			dates = append(dates, k.date)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
