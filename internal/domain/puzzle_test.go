package domain

import (
	"testing"
	"time"

	"github.com/golang-sql/civil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePuzzleType(t *testing.T) {
	for _, p := range AllPuzzleTypes() {
		got, err := ParsePuzzleType(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := ParsePuzzleType("kakuro")
	assert.ErrorIs(t, err, ErrInvalidPuzzleType)
	assert.Contains(t, err.Error(), "kakuro")
}

func TestCompletion_TimeString(t *testing.T) {
	tests := []struct {
		name    string
		seconds *int
		want    string
	}{
		{"deleted", nil, "-"},
		{"fail", IntPtr(FailSeconds), "fail"},
		{"other negative", IntPtr(-42), "fail"},
		{"zero", IntPtr(0), "0:00"},
		{"under a minute", IntPtr(7), "0:07"},
		{"minutes", IntPtr(125), "2:05"},
		{"long", IntPtr(3725), "62:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Completion{Seconds: tt.seconds}
			assert.Equal(t, tt.want, c.TimeString())
		})
	}
}

func TestCompletion_States(t *testing.T) {
	deleted := Completion{}
	assert.True(t, deleted.IsDeleted())
	assert.False(t, deleted.IsFail())
	assert.False(t, deleted.IsSolved())

	fail := Completion{Seconds: IntPtr(FailSeconds)}
	assert.True(t, fail.IsFail())
	assert.False(t, fail.IsSolved())

	solved := Completion{Seconds: IntPtr(30)}
	assert.True(t, solved.IsSolved())
	assert.False(t, solved.IsFail())
}

func TestNormalizeSeconds(t *testing.T) {
	assert.Equal(t, FailSeconds, NormalizeSeconds(-7))
	assert.Equal(t, 0, NormalizeSeconds(0))
	assert.Equal(t, 95, NormalizeSeconds(95))
}

func TestUser_HasHat(t *testing.T) {
	hat := ItemTopHat
	u := User{ID: "u1", HatKey: &hat}
	assert.True(t, u.HasHat(ItemTopHat))
	assert.False(t, u.HasHat(ItemCrown))
	assert.False(t, User{ID: "u2"}.HasHat(ItemTopHat))
}

func TestPuzzleType_URL(t *testing.T) {
	date := civil.Date{Year: 2018, Month: time.January, Day: 2}

	assert.Equal(t, "https://www.nytimes.com/crosswords/game/mini/2018/01/02", PuzzleMiniCrossword.URL(date))
	assert.Equal(t, "https://www.nytimes.com/crosswords/game/daily/2018/01/02", PuzzleCrossword.URL(date))
	assert.Equal(t, "https://www.nytimes.com/puzzles/sudoku/easy", PuzzleEasySudoku.URL(date))
	assert.Empty(t, PuzzleType("kakuro").URL(date))
}
