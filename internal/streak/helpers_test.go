package streak

import (
	"testing"

	"github.com/golang-sql/civil"
	"github.com/stretchr/testify/require"
)

func mustDate(t testing.TB, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	require.NoError(t, err)
	return d
}

// dateRange returns every date from start through end inclusive
func dateRange(t testing.TB, start, end string) []civil.Date {
	t.Helper()
	from, to := mustDate(t, start), mustDate(t, end)
	var out []civil.Date
	for d := from; !d.After(to); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out
}
