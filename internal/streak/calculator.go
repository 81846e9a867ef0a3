package streak

import (
	"fmt"
	"sort"

	"github.com/golang-sql/civil"

	"github.com/osse101/CrossBot_Go/internal/domain"
)

// Streak is a run of completions on exactly consecutive calendar days, ascending
type Streak []domain.Completion

// Len returns the number of days in the streak
func (s Streak) Len() int {
	return len(s)
}

// Dates returns the calendar dates covered by the streak
func (s Streak) Dates() []civil.Date {
	dates := make([]civil.Date, len(s))
	for i, c := range s {
		dates[i] = c.Date
	}
	return dates
}

// Streaks groups completions into maximal runs of consecutive days.
// The input order does not matter; it is not modified.
func Streaks(completions []domain.Completion) ([]Streak, error) {
	if len(completions) == 0 {
		return []Streak{}, nil
	}

	sorted := make([]domain.Completion, len(completions))
	copy(sorted, completions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var result []Streak
	current := Streak{sorted[0]}
	for _, c := range sorted[1:] {
		prev := current[len(current)-1].Date
		if c.Date == prev {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateDate, c.Date)
		}
		if c.Date == prev.AddDays(1) {
			current = append(current, c)
			continue
		}
		result = append(result, current)
		current = Streak{c}
	}
	return append(result, current), nil
}

// DateStreaks is Streaks over bare dates
func DateStreaks(dates []civil.Date) ([][]civil.Date, error) {
	if len(dates) == 0 {
		return [][]civil.Date{}, nil
	}

	sorted := make([]civil.Date, len(dates))
	copy(sorted, dates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})

	var result [][]civil.Date
	current := []civil.Date{sorted[0]}
	for _, d := range sorted[1:] {
		prev := current[len(current)-1]
		if d == prev {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateDate, d)
		}
		if d == prev.AddDays(1) {
			current = append(current, d)
			continue
		}
		result = append(result, current)
		current = []civil.Date{d}
	}
	return append(result, current), nil
}

// Lengths returns the length of each group, in order
func Lengths(groups [][]civil.Date) []int {
	lengths := make([]int, len(groups))
	for i, g := range groups {
		lengths[i] = len(g)
	}
	return lengths
}
