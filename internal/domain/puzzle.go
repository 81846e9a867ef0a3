package domain

import (
	"fmt"
	"time"

	"github.com/golang-sql/civil"
)

// PuzzleType tags which daily puzzle a completion belongs to
type PuzzleType string

const (
	PuzzleMiniCrossword PuzzleType = "mini_crossword"
	PuzzleCrossword     PuzzleType = "crossword"
	PuzzleEasySudoku    PuzzleType = "easy_sudoku"
)

// AllPuzzleTypes lists every supported puzzle type in display order
func AllPuzzleTypes() []PuzzleType {
	return []PuzzleType{PuzzleMiniCrossword, PuzzleCrossword, PuzzleEasySudoku}
}

// Valid reports whether p is a known puzzle type
func (p PuzzleType) Valid() bool {
	switch p {
	case PuzzleMiniCrossword, PuzzleCrossword, PuzzleEasySudoku:
		return true
	}
	return false
}

// ParsePuzzleType converts a raw tag into a PuzzleType.
// Returns ErrInvalidPuzzleType for anything unknown.
func ParsePuzzleType(raw string) (PuzzleType, error) {
	p := PuzzleType(raw)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPuzzleType, raw)
	}
	return p, nil
}

// URL links to the puzzle for a given day
func (p PuzzleType) URL(date civil.Date) string {
	switch p {
	case PuzzleMiniCrossword:
		return fmt.Sprintf(puzzleURLMiniFmt, date.Year, int(date.Month), date.Day)
	case PuzzleCrossword:
		return fmt.Sprintf(puzzleURLDailyFmt, date.Year, int(date.Month), date.Day)
	case PuzzleEasySudoku:
		// sudoku has no per-day archive
		return puzzleURLEasySudoku
	}
	return ""
}

const (
	puzzleURLMiniFmt    = "https://www.nytimes.com/crosswords/game/mini/%04d/%02d/%02d"
	puzzleURLDailyFmt   = "https://www.nytimes.com/crosswords/game/daily/%04d/%02d/%02d"
	puzzleURLEasySudoku = "https://www.nytimes.com/puzzles/sudoku/easy"
)

// FailSeconds is the canonical seconds value stored for a failed attempt.
// Any negative value is read back as a fail.
const FailSeconds = -1

// Completion is one user's record for one puzzle on one calendar day.
// Seconds is nil when the record was soft-deleted.
type Completion struct {
	UserID     string     `json:"user_id"`
	PuzzleType PuzzleType `json:"puzzle_type"`
	Date       civil.Date `json:"date"`
	Seconds    *int       `json:"seconds"`
	Timestamp  time.Time  `json:"timestamp"`
}

// IsDeleted reports whether the record is a soft-deleted placeholder
func (c Completion) IsDeleted() bool {
	return c.Seconds == nil
}

// IsFail reports whether the record marks a failed attempt
func (c Completion) IsFail() bool {
	return c.Seconds != nil && *c.Seconds < 0
}

// IsSolved reports whether the record is a successful solve
func (c Completion) IsSolved() bool {
	return c.Seconds != nil && *c.Seconds >= 0
}

// TimeString renders the solve time as m:ss, or "fail"
func (c Completion) TimeString() string {
	switch {
	case c.Seconds == nil:
		return "-"
	case *c.Seconds < 0:
		return "fail"
	}
	minutes, seconds := *c.Seconds/60, *c.Seconds%60
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// NormalizeSeconds maps every negative value onto FailSeconds
func NormalizeSeconds(seconds int) int {
	if seconds < 0 {
		return FailSeconds
	}
	return seconds
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
