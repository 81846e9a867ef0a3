package streak

import (
	"fmt"

	"github.com/golang-sql/civil"

	"github.com/osse101/CrossBot_Go/internal/domain"
)

// Engine turns streak groupings into currency
type Engine struct {
	table RewardTable
}

// NewEngine creates an engine over the given tiers
func NewEngine(tiers []domain.RewardTier) *Engine {
	return &Engine{table: NewRewardTable(tiers)}
}

// NewDefaultEngine creates an engine over DefaultRewardTiers
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultRewardTiers())
}

// Table returns the reward table the engine pays from
func (e *Engine) Table() RewardTable {
	return e.table
}

// TotalReward sums the tier payouts of every group
func (e *Engine) TotalReward(groups [][]civil.Date) int {
	total := 0
	for _, g := range groups {
		total += e.table.ForLength(len(g))
	}
	return total
}

// TotalForDates groups dates into streaks and sums their payouts
func (e *Engine) TotalForDates(dates []civil.Date) (int, error) {
	groups, err := DateStreaks(dates)
	if err != nil {
		return 0, err
	}
	return e.TotalReward(groups), nil
}

// Delta is the reward gained by having candidates on top of existing.
// Candidates already present in existing are counted once.
// A negative result means the reward function lost monotonicity and
// is reported as ErrRewardInvariant.
func (e *Engine) Delta(existing, candidates []civil.Date) (int, error) {
	remove := make(map[civil.Date]struct{}, len(candidates))
	for _, d := range candidates {
		remove[d] = struct{}{}
	}

	excluding := make([]civil.Date, 0, len(existing))
	for _, d := range existing {
		if _, ok := remove[d]; !ok {
			excluding = append(excluding, d)
		}
	}
	including := make([]civil.Date, len(excluding), len(excluding)+len(remove))
	copy(including, excluding)
	for d := range remove {
		including = append(including, d)
	}

	before, err := e.TotalForDates(excluding)
	if err != nil {
		return 0, err
	}
	after, err := e.TotalForDates(including)
	if err != nil {
		return 0, err
	}

	delta := after - before
	if delta < 0 {
		return 0, fmt.Errorf("%w: including=%d excluding=%d", domain.ErrRewardInvariant, after, before)
	}
	return delta, nil
}
