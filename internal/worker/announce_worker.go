package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-sql/civil"
	"github.com/robfig/cron/v3"

	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/logger"
	"github.com/osse101/CrossBot_Go/internal/metrics"
)

// Announcer builds announcements. puzzle.Service satisfies it.
type Announcer interface {
	Announce(ctx context.Context, pt domain.PuzzleType, date civil.Date) (*domain.Announcement, error)
	Today() civil.Date
}

// PublishFunc hands a finished announcement to whatever posts it to chat
type PublishFunc func(ctx context.Context, a *domain.Announcement)

// AnnounceWorker builds the daily winners announcement for every puzzle type
// on a cron schedule evaluated in the bot's time zone
type AnnounceWorker struct {
	announcer Announcer
	pool      *Pool
	publish   PublishFunc
	cron      *cron.Cron
	spec      string
}

// NewAnnounceWorker creates a worker firing on spec, a standard 5-field cron
// expression, in loc. A nil publish only logs the result.
func NewAnnounceWorker(announcer Announcer, pool *Pool, spec string, loc *time.Location, publish PublishFunc) *AnnounceWorker {
	if loc == nil {
		loc = time.UTC
	}
	if publish == nil {
		publish = logAnnouncement
	}
	return &AnnounceWorker{
		announcer: announcer,
		pool:      pool,
		publish:   publish,
		cron:      cron.New(cron.WithLocation(loc)),
		spec:      spec,
	}
}

// Start registers the schedule and starts the cron loop
func (w *AnnounceWorker) Start() error {
	if _, err := w.cron.AddFunc(w.spec, func() { w.Trigger(context.Background()) }); err != nil {
		return fmt.Errorf(ErrMsgInvalidSchedule, w.spec, err)
	}
	w.cron.Start()

	entries := w.cron.Entries()
	logger.FromContext(context.Background()).Info(LogMsgAnnounceScheduled,
		"schedule", w.spec,
		"next_run_at", entries[len(entries)-1].Next)
	return nil
}

// Trigger queues one announcement per puzzle type for today and returns how
// many were queued
func (w *AnnounceWorker) Trigger(ctx context.Context) int {
	today := w.announcer.Today()
	logger.FromContext(ctx).Info(LogMsgAnnounceTriggered, "date", today)

	queued := 0
	for _, pt := range domain.AllPuzzleTypes() {
		job := &announceJob{announcer: w.announcer, publish: w.publish, puzzle: pt, date: today}
		if w.pool.Submit(job) {
			queued++
		}
	}
	return queued
}

// Shutdown stops the schedule and waits for a running trigger to return
func (w *AnnounceWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAnnounceStopping)

	stopped := w.cron.Stop()
	select {
	case <-stopped.Done():
		log.Info(LogMsgAnnounceStopped)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgAnnounceStopTimeout)
		return ctx.Err()
	}
}

type announceJob struct {
	announcer Announcer
	publish   PublishFunc
	puzzle    domain.PuzzleType
	date      civil.Date
}

func (j *announceJob) Name() string {
	return announceJobPrefix + string(j.puzzle)
}

func (j *announceJob) Process(ctx context.Context) error {
	a, err := j.announcer.Announce(ctx, j.puzzle, j.date)
	if err != nil {
		metrics.Announcements.WithLabelValues(string(j.puzzle), metrics.ResultError).Inc()
		logger.FromContext(ctx).Error(LogMsgAnnounceFailed, "puzzle", j.puzzle, "date", j.date, "error", err)
		return fmt.Errorf(ErrMsgAnnounceFailed, j.puzzle, err)
	}
	metrics.Announcements.WithLabelValues(string(j.puzzle), metrics.ResultSuccess).Inc()
	j.publish(ctx, a)
	return nil
}

func logAnnouncement(ctx context.Context, a *domain.Announcement) {
	logger.FromContext(ctx).Info(LogMsgAnnounceBuilt,
		"puzzle", a.PuzzleType,
		"date", a.Date,
		"yesterday", a.Yesterday,
		"day_before", a.DayBefore,
		"streak_user_id", a.StreakUserID,
		"streak_length", a.StreakLength)
}
