package domain

import "github.com/golang-sql/civil"

// Announcement summarizes who won recent days of a puzzle
type Announcement struct {
	PuzzleType PuzzleType `json:"puzzle_type"`
	Date       civil.Date `json:"date"`
	// Winners of the day before Date
	Yesterday []string `json:"yesterday"`
	// Winners two days before Date
	DayBefore []string `json:"day_before"`
	// StreakUserID is set when one user won both days
	StreakUserID string `json:"streak_user_id,omitempty"`
	StreakLength int    `json:"streak_length,omitempty"`
}

// StreakSummary is the per-user, per-puzzle streak overview
type StreakSummary struct {
	UserID      string         `json:"user_id"`
	PuzzleType  PuzzleType     `json:"puzzle_type"`
	Streaks     [][]civil.Date `json:"streaks"`
	Current     int            `json:"current"`
	Longest     int            `json:"longest"`
	TotalReward int            `json:"total_reward"`
}

// MissedDate is a day the user has no record for, with a link to play it
type MissedDate struct {
	Date civil.Date `json:"date"`
	URL  string     `json:"url"`
}
