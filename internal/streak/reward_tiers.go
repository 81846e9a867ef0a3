package streak

import (
	"sort"

	"github.com/osse101/CrossBot_Go/internal/domain"
)

// DefaultRewardTiers returns the streak bonus table.
// Rewards accumulate - a streak collects every tier up to its length.
func DefaultRewardTiers() []domain.RewardTier {
	return []domain.RewardTier{
		// 3 days: 10
		{MinLength: 3, Amount: 10},
		// 10 days: +50 (total: 60)
		{MinLength: 10, Amount: 50},
		// 25 days: +100 (total: 160)
		{MinLength: 25, Amount: 100},
		// 50 days: +500 (total: 660)
		{MinLength: 50, Amount: 500},
		// 100 days: +1000 (total: 1660)
		{MinLength: 100, Amount: 1000},
	}
}

// RewardTable is an ascending, immutable set of reward tiers
type RewardTable struct {
	tiers []domain.RewardTier
}

// NewRewardTable copies and sorts tiers by MinLength
func NewRewardTable(tiers []domain.RewardTier) RewardTable {
	sorted := make([]domain.RewardTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinLength < sorted[j].MinLength
	})
	return RewardTable{tiers: sorted}
}

// Tiers returns a copy of the table
func (t RewardTable) Tiers() []domain.RewardTier {
	out := make([]domain.RewardTier, len(t.tiers))
	copy(out, t.tiers)
	return out
}

// ForLength sums every tier a streak of n days qualifies for
func (t RewardTable) ForLength(n int) int {
	total := 0
	for _, tier := range t.tiers {
		if tier.MinLength > n {
			break
		}
		total += tier.Amount
	}
	return total
}
