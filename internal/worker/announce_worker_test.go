package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/metrics"
)

var workerToday = civil.Date{Year: 2018, Month: 1, Day: 20}

type fakeAnnouncer struct {
	mu     sync.Mutex
	calls  []domain.PuzzleType
	failOn domain.PuzzleType
}

func (f *fakeAnnouncer) Announce(ctx context.Context, pt domain.PuzzleType, date civil.Date) (*domain.Announcement, error) {
	f.mu.Lock()
	f.calls = append(f.calls, pt)
	f.mu.Unlock()
	if pt == f.failOn {
		return nil, errors.New("store unavailable")
	}
	return &domain.Announcement{PuzzleType: pt, Date: date, Yesterday: []string{"alice"}}, nil
}

func (f *fakeAnnouncer) Today() civil.Date { return workerToday }

type recorder struct {
	mu    sync.Mutex
	items []*domain.Announcement
}

func (r *recorder) publish(ctx context.Context, a *domain.Announcement) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, a)
}

func TestAnnounceWorker_TriggerAnnouncesEveryPuzzle(t *testing.T) {
	announcer := &fakeAnnouncer{}
	published := &recorder{}
	pool := NewPool(2, 10)
	pool.Start(context.Background())

	w := NewAnnounceWorker(announcer, pool, "0 9 * * *", time.UTC, published.publish)
	assert.Equal(t, len(domain.AllPuzzleTypes()), w.Trigger(context.Background()))
	require.NoError(t, pool.Stop(context.Background()))

	assert.ElementsMatch(t, domain.AllPuzzleTypes(), announcer.calls)
	require.Len(t, published.items, len(domain.AllPuzzleTypes()))
	for _, a := range published.items {
		assert.Equal(t, workerToday, a.Date)
	}
}

func TestAnnounceWorker_FailureIsCountedAndSkipped(t *testing.T) {
	announcer := &fakeAnnouncer{failOn: domain.PuzzleCrossword}
	published := &recorder{}
	pool := NewPool(1, 10)
	pool.Start(context.Background())

	errCounter := metrics.Announcements.WithLabelValues(string(domain.PuzzleCrossword), metrics.ResultError)
	okCounter := metrics.Announcements.WithLabelValues(string(domain.PuzzleMiniCrossword), metrics.ResultSuccess)
	errBefore, okBefore := testutil.ToFloat64(errCounter), testutil.ToFloat64(okCounter)

	w := NewAnnounceWorker(announcer, pool, "0 9 * * *", time.UTC, published.publish)
	w.Trigger(context.Background())
	require.NoError(t, pool.Stop(context.Background()))

	assert.Len(t, published.items, len(domain.AllPuzzleTypes())-1)
	assert.Equal(t, errBefore+1, testutil.ToFloat64(errCounter))
	assert.Equal(t, okBefore+1, testutil.ToFloat64(okCounter))
}

func TestAnnounceWorker_StartRejectsBadSchedule(t *testing.T) {
	w := NewAnnounceWorker(&fakeAnnouncer{}, NewPool(1, 1), "every morning", time.UTC, nil)
	assert.Error(t, w.Start())
}

func TestAnnounceWorker_StartAndShutdown(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	w := NewAnnounceWorker(&fakeAnnouncer{}, NewPool(1, 1), "0 9 * * *", loc, nil)
	require.NoError(t, w.Start())

	entries := w.cron.Entries()
	require.Len(t, entries, 1)
	next := entries[0].Next.In(loc)
	assert.Equal(t, 9, next.Hour(), "schedule is evaluated in the configured zone")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, w.Shutdown(ctx))
}
