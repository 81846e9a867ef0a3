package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CrossBot_Go/internal/domain"
)

// MockRepository implements repository.Item for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockRepository) GetItem(ctx context.Context, key string) (*domain.Item, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockRepository) UpsertItems(ctx context.Context, items []domain.Item) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}
