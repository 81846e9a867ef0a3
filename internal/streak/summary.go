package streak

import (
	"github.com/golang-sql/civil"

	"github.com/osse101/CrossBot_Go/internal/domain"
)

// Summarize builds a StreakSummary from a user's successful dates.
// Current counts the streak ending today or yesterday, so a user who
// has not played yet today keeps their streak.
func (e *Engine) Summarize(userID string, pt domain.PuzzleType, dates []civil.Date, today civil.Date) (domain.StreakSummary, error) {
	groups, err := DateStreaks(dates)
	if err != nil {
		return domain.StreakSummary{}, err
	}

	summary := domain.StreakSummary{
		UserID:      userID,
		PuzzleType:  pt,
		Streaks:     groups,
		TotalReward: e.TotalReward(groups),
	}
	for _, g := range groups {
		if len(g) > summary.Longest {
			summary.Longest = len(g)
		}
	}
	if len(groups) > 0 {
		last := groups[len(groups)-1]
		end := last[len(last)-1]
		if end == today || end == today.AddDays(-1) {
			summary.Current = len(last)
		}
	}
	return summary, nil
}
