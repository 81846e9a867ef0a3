package streak

import (
	"testing"

	"github.com/golang-sql/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CrossBot_Go/internal/domain"
)

func TestRewardTable_ForLength(t *testing.T) {
	table := NewRewardTable(DefaultRewardTiers())

	tests := []struct {
		length int
		want   int
	}{
		{0, 0},
		{2, 0},
		{3, 10},
		{9, 10},
		{10, 60},
		{25, 160},
		{50, 660},
		{100, 1660},
		{365, 1660},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, table.ForLength(tt.length), "length %d", tt.length)
	}
}

func TestRewardTable_SortsTiers(t *testing.T) {
	table := NewRewardTable([]domain.RewardTier{
		{MinLength: 10, Amount: 50},
		{MinLength: 3, Amount: 10},
	})
	assert.Equal(t, 3, table.Tiers()[0].MinLength)
	assert.Equal(t, 10, table.ForLength(5))
}

func TestTotalReward_Monotonic(t *testing.T) {
	e := NewDefaultEngine()
	prev := 0
	for n := 0; n <= 150; n++ {
		total := e.Table().ForLength(n)
		assert.GreaterOrEqual(t, total, prev, "length %d", n)
		prev = total
	}
}

func TestEngine_JanuaryScenario(t *testing.T) {
	e := NewDefaultEngine()
	tiers := DefaultRewardTiers()
	threeDay, tenDay := tiers[0].Amount, tiers[1].Amount

	existing := append(dateRange(t, "2018-01-01", "2018-01-04"), dateRange(t, "2018-01-06", "2018-01-10")...)

	groups, err := DateStreaks(existing)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, Lengths(groups))
	assert.Equal(t, 2*threeDay, e.TotalReward(groups))

	gap := mustDate(t, "2018-01-05")
	delta, err := e.Delta(existing, []civil.Date{gap})
	require.NoError(t, err)
	assert.Equal(t, (threeDay+tenDay)-2*threeDay, delta)
}

func TestEngine_DeltaIdentity(t *testing.T) {
	e := NewDefaultEngine()
	history := append(dateRange(t, "2021-05-01", "2021-05-09"), dateRange(t, "2021-05-11", "2021-05-30")...)

	for _, d := range dateRange(t, "2021-04-28", "2021-06-02") {
		var excluding []civil.Date
		for _, h := range history {
			if h != d {
				excluding = append(excluding, h)
			}
		}
		including := append(append([]civil.Date(nil), excluding...), d)

		before, err := e.TotalForDates(excluding)
		require.NoError(t, err)
		after, err := e.TotalForDates(including)
		require.NoError(t, err)

		delta, err := e.Delta(history, []civil.Date{d})
		if after < before {
			// Splitting a 9-day run into 3+5 earns two tiers; rejoining loses one
			assert.ErrorIs(t, err, domain.ErrRewardInvariant, "date %s", d)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, after, delta+before, "date %s", d)
	}
}

func TestEngine_DeltaCandidateAlreadyPresent(t *testing.T) {
	e := NewDefaultEngine()
	history := dateRange(t, "2018-01-01", "2018-01-03")

	// The third day completes the 3-day tier whether or not history already has it
	delta, err := e.Delta(history, []civil.Date{mustDate(t, "2018-01-03")})
	require.NoError(t, err)
	assert.Equal(t, 10, delta)
}

func TestEngine_DeltaMultipleCandidates(t *testing.T) {
	e := NewDefaultEngine()
	delta, err := e.Delta(nil, dateRange(t, "2018-01-01", "2018-01-10"))
	require.NoError(t, err)
	assert.Equal(t, 60, delta)
}

func TestEngine_DeltaRejectsNegativeTables(t *testing.T) {
	e := NewEngine([]domain.RewardTier{
		{MinLength: 1, Amount: 100},
		{MinLength: 2, Amount: -150},
	})

	// Joining two single-day streaks into one three-day streak loses money
	_, err := e.Delta(
		[]civil.Date{mustDate(t, "2018-01-01"), mustDate(t, "2018-01-03")},
		[]civil.Date{mustDate(t, "2018-01-02")},
	)
	assert.ErrorIs(t, err, domain.ErrRewardInvariant)
}

func TestEngine_DeltaDuplicateHistory(t *testing.T) {
	e := NewDefaultEngine()
	d := mustDate(t, "2018-01-01")
	_, err := e.Delta([]civil.Date{d, d}, []civil.Date{d.AddDays(1)})
	assert.ErrorIs(t, err, domain.ErrDuplicateDate)
}

func TestEngine_Summarize(t *testing.T) {
	e := NewDefaultEngine()
	today := mustDate(t, "2018-01-20")

	dates := append(dateRange(t, "2018-01-01", "2018-01-12"), dateRange(t, "2018-01-16", "2018-01-19")...)
	summary, err := e.Summarize("u1", domain.PuzzleMiniCrossword, dates, today)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Current, "streak ending yesterday still counts")
	assert.Equal(t, 12, summary.Longest)
	assert.Equal(t, 60+10, summary.TotalReward)
	assert.Len(t, summary.Streaks, 2)

	summary, err = e.Summarize("u1", domain.PuzzleMiniCrossword, dates, today.AddDays(2))
	require.NoError(t, err)
	assert.Zero(t, summary.Current)
}
