package puzzle

import (
	"context"
	"fmt"

	"github.com/golang-sql/civil"

	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/utils"
)

func (s *service) RewardDelta(ctx context.Context, userID string, pt domain.PuzzleType, dates []civil.Date) (int, error) {
	if err := validatePuzzleType(pt); err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return 0, nil
	}
	existing, err := s.repo.CompletedDates(ctx, userID, pt)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgCompletedDatesFailed, err)
	}
	return s.engine.Delta(existing, dates)
}

func (s *service) ListCompletions(ctx context.Context, userID string, pt domain.PuzzleType) ([]domain.Completion, error) {
	if err := validatePuzzleType(pt); err != nil {
		return nil, err
	}
	completions, err := s.repo.ListCompletions(ctx, userID, pt)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCompletionsFailed, err)
	}
	return completions, nil
}

func (s *service) CompletionsOn(ctx context.Context, pt domain.PuzzleType, date civil.Date) ([]domain.Completion, error) {
	if err := validatePuzzleType(pt); err != nil {
		return nil, err
	}
	completions, err := s.repo.ListCompletionsOn(ctx, pt, date)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCompletionsFailed, err)
	}
	return completions, nil
}

func (s *service) StreakSummary(ctx context.Context, userID string, pt domain.PuzzleType) (*domain.StreakSummary, error) {
	if err := validatePuzzleType(pt); err != nil {
		return nil, err
	}
	dates, err := s.repo.CompletedDates(ctx, userID, pt)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCompletedDatesFailed, err)
	}
	summary, err := s.engine.Summarize(userID, pt, dates, s.Today())
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// Missed walks back from today and returns the n most recent days without
// any record. Fails count as played; removed times do not.
func (s *service) Missed(ctx context.Context, userID string, pt domain.PuzzleType, n int) ([]domain.MissedDate, error) {
	if err := validatePuzzleType(pt); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = domain.MissedDefaultCount
	}
	n = utils.ClampInt(n, 1, domain.MissedMaxCount)

	completions, err := s.repo.ListCompletions(ctx, userID, pt)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCompletionsFailed, err)
	}
	played := make(map[civil.Date]struct{}, len(completions))
	for _, c := range completions {
		played[c.Date] = struct{}{}
	}

	missed := make([]domain.MissedDate, 0, n)
	date := s.Today()
	for i := 0; i < domain.MissedSearchLimit && len(missed) < n; i++ {
		if _, ok := played[date]; !ok {
			missed = append(missed, domain.MissedDate{Date: date, URL: pt.URL(date)})
		}
		date = date.AddDays(-1)
	}
	return missed, nil
}
