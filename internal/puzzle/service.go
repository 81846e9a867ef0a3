// Package puzzle records daily puzzle times and pays out the currency,
// streak bonuses and item drops they earn.
package puzzle

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-sql/civil"

	"github.com/osse101/CrossBot_Go/internal/concurrency"
	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/drop"
	"github.com/osse101/CrossBot_Go/internal/repository"
	"github.com/osse101/CrossBot_Go/internal/streak"
)

// AddTimeResult reports what an AddTime call changed
type AddTimeResult struct {
	// Added is false when a record already existed for that day
	Added bool `json:"added"`
	// Completion is the new record, or the existing one when Added is false
	Completion domain.Completion `json:"completion"`
	// CurrencyEarned includes StreakBonus
	CurrencyEarned int          `json:"currency_earned"`
	StreakBonus    int          `json:"streak_bonus"`
	ItemDropped    *domain.Item `json:"item_dropped,omitempty"`
	// Resurrected marks a re-entry over a removed record, which pays nothing
	Resurrected bool `json:"resurrected"`
	// Balance is the user's balance after the call
	Balance int `json:"balance"`
}

// Service defines the interface for puzzle time operations
type Service interface {
	AddTime(ctx context.Context, userID string, pt domain.PuzzleType, date civil.Date, seconds int) (*AddTimeResult, error)
	// RemoveTime reports false when there was nothing to remove. Currency
	// already paid is kept.
	RemoveTime(ctx context.Context, userID string, pt domain.PuzzleType, date civil.Date) (bool, error)
	// RewardDelta is the streak reward the given dates add to the user's history
	RewardDelta(ctx context.Context, userID string, pt domain.PuzzleType, dates []civil.Date) (int, error)
	ListCompletions(ctx context.Context, userID string, pt domain.PuzzleType) ([]domain.Completion, error)
	CompletionsOn(ctx context.Context, pt domain.PuzzleType, date civil.Date) ([]domain.Completion, error)
	StreakSummary(ctx context.Context, userID string, pt domain.PuzzleType) (*domain.StreakSummary, error)
	Missed(ctx context.Context, userID string, pt domain.PuzzleType, n int) ([]domain.MissedDate, error)
	Announce(ctx context.Context, pt domain.PuzzleType, date civil.Date) (*domain.Announcement, error)
	// Today is the current calendar date in the service's time zone
	Today() civil.Date
}

// DropSource lists the items that may drop. catalog.Service satisfies it.
type DropSource interface {
	ListDroppable(ctx context.Context) ([]domain.Item, error)
}

// SettingsSource supplies the current economy settings. settings.Service satisfies it.
type SettingsSource interface {
	Current(ctx context.Context) (domain.GameSettings, error)
}

// Options overrides the service's collaborators; zero values get defaults
type Options struct {
	Engine   *streak.Engine
	Selector *drop.Selector
	Locks    *concurrency.LockManager
	Clock    func() time.Time
	Location *time.Location
}

type service struct {
	repo     repository.Puzzle
	items    DropSource
	settings SettingsSource
	engine   *streak.Engine
	selector *drop.Selector
	locks    *concurrency.LockManager
	now      func() time.Time
	loc      *time.Location
}

// NewService creates a new puzzle service
func NewService(repo repository.Puzzle, items DropSource, settings SettingsSource, opts Options) Service {
	s := &service{
		repo:     repo,
		items:    items,
		settings: settings,
		engine:   opts.Engine,
		selector: opts.Selector,
		locks:    opts.Locks,
		now:      opts.Clock,
		loc:      opts.Location,
	}
	if s.engine == nil {
		s.engine = streak.NewDefaultEngine()
	}
	if s.selector == nil {
		s.selector = drop.NewSelector()
	}
	if s.locks == nil {
		s.locks = concurrency.NewLockManager()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	return s
}

func (s *service) Today() civil.Date {
	return civil.DateOf(s.now().In(s.loc))
}

func validatePuzzleType(pt domain.PuzzleType) error {
	if !pt.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidPuzzleType, pt)
	}
	return nil
}
