package handler

import (
	"context"

	"github.com/golang-sql/civil"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CrossBot_Go/internal/catalog"
	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/puzzle"
)

var handlerToday = civil.Date{Year: 2018, Month: 1, Day: 20}

// MockPuzzleService mocks puzzle.Service
type MockPuzzleService struct {
	mock.Mock
}

func (m *MockPuzzleService) AddTime(ctx context.Context, userID string, pt domain.PuzzleType, date civil.Date, seconds int) (*puzzle.AddTimeResult, error) {
	args := m.Called(ctx, userID, pt, date, seconds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*puzzle.AddTimeResult), args.Error(1)
}

func (m *MockPuzzleService) RemoveTime(ctx context.Context, userID string, pt domain.PuzzleType, date civil.Date) (bool, error) {
	args := m.Called(ctx, userID, pt, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockPuzzleService) RewardDelta(ctx context.Context, userID string, pt domain.PuzzleType, dates []civil.Date) (int, error) {
	args := m.Called(ctx, userID, pt, dates)
	return args.Int(0), args.Error(1)
}

func (m *MockPuzzleService) ListCompletions(ctx context.Context, userID string, pt domain.PuzzleType) ([]domain.Completion, error) {
	args := m.Called(ctx, userID, pt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Completion), args.Error(1)
}

func (m *MockPuzzleService) CompletionsOn(ctx context.Context, pt domain.PuzzleType, date civil.Date) ([]domain.Completion, error) {
	args := m.Called(ctx, pt, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Completion), args.Error(1)
}

func (m *MockPuzzleService) StreakSummary(ctx context.Context, userID string, pt domain.PuzzleType) (*domain.StreakSummary, error) {
	args := m.Called(ctx, userID, pt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StreakSummary), args.Error(1)
}

func (m *MockPuzzleService) Missed(ctx context.Context, userID string, pt domain.PuzzleType, n int) ([]domain.MissedDate, error) {
	args := m.Called(ctx, userID, pt, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MissedDate), args.Error(1)
}

func (m *MockPuzzleService) Announce(ctx context.Context, pt domain.PuzzleType, date civil.Date) (*domain.Announcement, error) {
	args := m.Called(ctx, pt, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Announcement), args.Error(1)
}

// Today is fixed so tests don't need an expectation for it
func (m *MockPuzzleService) Today() civil.Date {
	return handlerToday
}

// MockLedgerService mocks ledger.Service
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) RegisterUser(ctx context.Context, userID, name string) (*domain.User, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockLedgerService) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerService) Credit(ctx context.Context, userID string, amount int) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockLedgerService) Debit(ctx context.Context, userID string, amount int) (bool, error) {
	args := m.Called(ctx, userID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerService) Transfer(ctx context.Context, fromID, toID string, amount int) (bool, error) {
	args := m.Called(ctx, fromID, toID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerService) GrantItem(ctx context.Context, userID, itemKey string, quantity int) error {
	args := m.Called(ctx, userID, itemKey, quantity)
	return args.Error(0)
}

func (m *MockLedgerService) RevokeItem(ctx context.Context, userID, itemKey string, quantity int) (bool, error) {
	args := m.Called(ctx, userID, itemKey, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerService) Equip(ctx context.Context, userID, itemKey string) (bool, error) {
	args := m.Called(ctx, userID, itemKey)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerService) Unequip(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// MockCatalogService mocks catalog.Service
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockCatalogService) ListDroppable(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockCatalogService) Get(ctx context.Context, key string) (*domain.Item, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockCatalogService) Sync(ctx context.Context) (*catalog.SyncResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SyncResult), args.Error(1)
}

// MockSettingsService mocks settings.Service
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Current(ctx context.Context) (domain.GameSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.GameSettings), args.Error(1)
}

func (m *MockSettingsService) Update(ctx context.Context, s domain.GameSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
