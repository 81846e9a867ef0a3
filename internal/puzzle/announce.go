package puzzle

import (
	"context"
	"fmt"
	"sort"

	"github.com/golang-sql/civil"

	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/logger"
)

// Announce reports who solved fastest the day before date and the day
// before that. When someone won both days it follows their winning streak
// back. Ties on the streak go to the lowest user id.
func (s *service) Announce(ctx context.Context, pt domain.PuzzleType, date civil.Date) (*domain.Announcement, error) {
	if err := validatePuzzleType(pt); err != nil {
		return nil, err
	}

	yesterday, err := s.winners(ctx, pt, date.AddDays(-1))
	if err != nil {
		return nil, err
	}
	dayBefore, err := s.winners(ctx, pt, date.AddDays(-2))
	if err != nil {
		return nil, err
	}

	announcement := &domain.Announcement{
		PuzzleType: pt,
		Date:       date,
		Yesterday:  yesterday,
		DayBefore:  dayBefore,
	}

	both := intersect(yesterday, dayBefore)
	if len(both) > 0 {
		userID := both[0]
		length := 2
		for length < announceStreakCap {
			earlier, err := s.winners(ctx, pt, date.AddDays(-(length + 1)))
			if err != nil {
				return nil, err
			}
			if !contains(earlier, userID) {
				break
			}
			length++
		}
		announcement.StreakUserID = userID
		announcement.StreakLength = length
	}

	logger.FromContext(ctx).Info(LogMsgAnnounceBuilt, "puzzle", pt, "date", date,
		"yesterday", yesterday, "streak_user", announcement.StreakUserID, "streak_length", announcement.StreakLength)
	return announcement, nil
}

// winners returns every user tied for the fastest successful time, sorted
func (s *service) winners(ctx context.Context, pt domain.PuzzleType, date civil.Date) ([]string, error) {
	completions, err := s.repo.ListCompletionsOn(ctx, pt, date)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCompletionsFailed, err)
	}

	best := -1
	for _, c := range completions {
		if c.IsSolved() && (best < 0 || *c.Seconds < best) {
			best = *c.Seconds
		}
	}

	winners := []string{}
	if best < 0 {
		return winners, nil
	}
	for _, c := range completions {
		if c.IsSolved() && *c.Seconds == best {
			winners = append(winners, c.UserID)
		}
	}
	sort.Strings(winners)
	return winners, nil
}

func intersect(a, b []string) []string {
	out := []string{}
	for _, id := range a {
		if contains(b, id) {
			out = append(out, id)
		}
	}
	return out
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
