package puzzle

import (
	"context"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CrossBot_Go/internal/catalog"
	"github.com/osse101/CrossBot_Go/internal/concurrency"
	"github.com/osse101/CrossBot_Go/internal/database/memory"
	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/drop"
	"github.com/osse101/CrossBot_Go/internal/settings"
)

const (
	alice = "U_ALICE"
	bob   = "U_BOB"
	carol = "U_CAROL"
)

// fixedNow is noon on 2018-01-20 UTC
var fixedNow = time.Date(2018, time.January, 20, 12, 0, 0, 0, time.UTC)

func jan(day int) civil.Date {
	return civil.Date{Year: 2018, Month: time.January, Day: day}
}

type testEnv struct {
	svc   Service
	store *memory.Store
}

type envOption func(*envConfig)

type envConfig struct {
	settings domain.GameSettings
	items    []domain.Item
	rnd      func() float64
}

func withSettings(rate float64, perSolve int) envOption {
	return func(c *envConfig) {
		c.settings = domain.GameSettings{ItemDropRate: rate, CurrencyPerSolve: perSolve}
	}
}

func withItems(items ...domain.Item) envOption {
	return func(c *envConfig) { c.items = items }
}

func withRand(rnd func() float64) envOption {
	return func(c *envConfig) { c.rnd = rnd }
}

// newTestEnv wires the service over an in-memory store. Drops are off
// unless a test turns them on.
func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	cfg := &envConfig{
		settings: domain.GameSettings{ItemDropRate: 0, CurrencyPerSolve: domain.DefaultCurrencyPerSolve},
		rnd:      func() float64 { return 0.5 },
	}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.UpsertItems(ctx, cfg.items))
	require.NoError(t, store.SaveSettings(ctx, cfg.settings))

	svc := NewService(
		store,
		catalog.NewService(store, nil, "", time.Minute),
		settings.NewService(store, domain.DefaultGameSettings()),
		Options{
			Selector: drop.NewSelectorWithRand(cfg.rnd),
			Locks:    concurrency.NewLockManager(),
			Clock:    func() time.Time { return fixedNow },
		},
	)
	return &testEnv{svc: svc, store: store}
}

func (e *testEnv) add(t *testing.T, userID string, date civil.Date, seconds int) *AddTimeResult {
	t.Helper()
	result, err := e.svc.AddTime(context.Background(), userID, domain.PuzzleMiniCrossword, date, seconds)
	require.NoError(t, err)
	return result
}

func (e *testEnv) balance(t *testing.T, userID string) int {
	t.Helper()
	user, err := e.store.GetUser(context.Background(), userID)
	require.NoError(t, err)
	return user.Balance
}

func (e *testEnv) owned(t *testing.T, userID, itemKey string) int {
	t.Helper()
	inventory, err := e.store.GetInventory(context.Background(), userID)
	require.NoError(t, err)
	for _, entry := range inventory {
		if entry.Item.Key == itemKey {
			return entry.Quantity
		}
	}
	return 0
}
