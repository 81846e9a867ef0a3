package puzzle

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-sql/civil"

	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/ledger"
	"github.com/osse101/CrossBot_Go/internal/logger"
	"github.com/osse101/CrossBot_Go/internal/metrics"
	"github.com/osse101/CrossBot_Go/internal/repository"
)

// AddTime records a time and pays for it in the same transaction. The first
// write for a day wins. A storage conflict is retried once; the retry sees
// the winning record and reports Added=false.
func (s *service) AddTime(ctx context.Context, userID string, pt domain.PuzzleType, date civil.Date, seconds int) (*AddTimeResult, error) {
	log := logger.FromContext(ctx)

	if err := validatePuzzleType(pt); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", domain.ErrInvalidInput)
	}
	seconds = domain.NormalizeSeconds(seconds)

	settings, err := s.settings.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadSettingsFailed, err)
	}
	droppable, err := s.items.ListDroppable(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadDroppableFailed, err)
	}

	result, err := s.addTime(ctx, userID, pt, date, seconds, settings, droppable)
	if errors.Is(err, domain.ErrStorageConflict) {
		metrics.StorageConflicts.Inc()
		log.Warn(LogMsgConflictRetry, "user_id", userID, "puzzle", pt, "date", date, "error", err)
		result, err = s.addTime(ctx, userID, pt, date, seconds, settings, droppable)
	}
	if err != nil {
		return nil, err
	}

	recordAddMetrics(pt, result)
	return result, nil
}

func (s *service) addTime(ctx context.Context, userID string, pt domain.PuzzleType, date civil.Date, seconds int, settings domain.GameSettings, droppable []domain.Item) (*AddTimeResult, error) {
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(userID)
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	users, err := ledger.LockUsers(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	user := users[userID]

	existing, err := tx.GetCompletion(ctx, userID, pt, date)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCompletionFailed, err)
	}
	if existing != nil && !existing.IsDeleted() {
		log.Info(LogMsgDuplicateEntry, "user_id", userID, "puzzle", pt, "date", date, "time", existing.TimeString())
		return &AddTimeResult{Added: false, Completion: *existing, Balance: user.Balance}, nil
	}

	completion := domain.Completion{
		UserID:     userID,
		PuzzleType: pt,
		Date:       date,
		Seconds:    domain.IntPtr(seconds),
		Timestamp:  s.now().UTC(),
	}

	// The bonus must be measured against history without this date
	bonus := 0
	if completion.IsSolved() && existing == nil {
		dates, err := tx.CompletedDates(ctx, userID, pt)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgCompletedDatesFailed, err)
		}
		if bonus, err = s.engine.Delta(dates, []civil.Date{date}); err != nil {
			return nil, err
		}
	}

	created, err := tx.SaveCompletion(ctx, completion)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSaveCompletionFailed, err)
	}

	result := &AddTimeResult{
		Added:       true,
		Completion:  completion,
		Resurrected: !created,
	}

	switch {
	case result.Resurrected:
		log.Info(LogMsgResurrected, "user_id", userID, "puzzle", pt, "date", date)
	case completion.IsSolved():
		earned := settings.CurrencyPerSolve + bonus
		if err := ledger.CreditTx(ctx, tx, user, earned); err != nil {
			return nil, err
		}
		result.CurrencyEarned = earned
		result.StreakBonus = bonus

		if item := s.selector.ChooseDrop(settings.ItemDropRate, droppable); item != nil {
			if err := ledger.GrantItemTx(ctx, tx, userID, item.Key, 1); err != nil {
				return nil, fmt.Errorf(ErrMsgGrantDropFailed, err)
			}
			result.ItemDropped = item
			log.Info(LogMsgItemDropped, "user_id", userID, "item", item.Key)
		}
	}
	result.Balance = user.Balance

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgTimeAdded, "user_id", userID, "puzzle", pt, "date", date,
		"time", completion.TimeString(), "earned", result.CurrencyEarned, "streak_bonus", bonus)
	return result, nil
}

func recordAddMetrics(pt domain.PuzzleType, result *AddTimeResult) {
	outcome := metrics.OutcomeSolved
	switch {
	case !result.Added:
		outcome = metrics.OutcomeDuplicate
	case result.Resurrected:
		outcome = metrics.OutcomeResurrected
	case result.Completion.IsFail():
		outcome = metrics.OutcomeFail
	}
	metrics.CompletionsRecorded.WithLabelValues(string(pt), outcome).Inc()

	if result.CurrencyEarned > 0 {
		metrics.CurrencyAwarded.WithLabelValues(string(pt)).Add(float64(result.CurrencyEarned))
	}
	if result.StreakBonus > 0 {
		metrics.StreakRewards.WithLabelValues(string(pt)).Add(float64(result.StreakBonus))
	}
	if result.ItemDropped != nil {
		metrics.ItemsDropped.WithLabelValues(result.ItemDropped.Key).Inc()
	}
}

// RemoveTime hard-deletes fails so they can be re-entered as solves, and
// soft-deletes solves so re-entering them pays nothing.
func (s *service) RemoveTime(ctx context.Context, userID string, pt domain.PuzzleType, date civil.Date) (bool, error) {
	log := logger.FromContext(ctx)

	if err := validatePuzzleType(pt); err != nil {
		return false, err
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return false, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := ledger.LockUsers(ctx, tx, userID); err != nil {
		return false, err
	}

	existing, err := tx.GetCompletion(ctx, userID, pt, date)
	if err != nil {
		return false, fmt.Errorf(ErrMsgGetCompletionFailed, err)
	}
	if existing == nil || existing.IsDeleted() {
		log.Info(LogMsgNothingToRemove, "user_id", userID, "puzzle", pt, "date", date)
		return false, nil
	}

	if existing.IsFail() {
		err = tx.HardDeleteCompletion(ctx, userID, pt, date)
	} else {
		err = tx.SoftDeleteCompletion(ctx, userID, pt, date)
	}
	if err != nil {
		return false, fmt.Errorf(ErrMsgDeleteCompletionFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.CompletionsRemoved.WithLabelValues(string(pt)).Inc()
	log.Info(LogMsgTimeRemoved, "user_id", userID, "puzzle", pt, "date", date, "time", existing.TimeString())
	return true, nil
}
