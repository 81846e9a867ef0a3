package handler

import (
	"context"
	"net/http"

	"github.com/golang-sql/civil"

	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/puzzle"
)

// RewardDeltaRequest asks what streak reward the candidate dates would add
type RewardDeltaRequest struct {
	UserID string   `json:"user_id" validate:"required,max=100"`
	Puzzle string   `json:"puzzle" validate:"required,puzzle"`
	Dates  []string `json:"dates" validate:"required,min=1,max=366,dive,civildate"`
}

// RewardDeltaResponse carries the marginal streak reward
type RewardDeltaResponse struct {
	Delta int `json:"delta"`
}

// MissedResponse lists recent days with no record
type MissedResponse struct {
	Missed []domain.MissedDate `json:"missed"`
}

// HandleGetStreaks returns a user's streak groups and totals
// @Summary Get streaks
// @Tags streaks
// @Produce json
// @Param user_id query string true "User ID"
// @Param puzzle query string true "Puzzle type"
// @Success 200 {object} domain.StreakSummary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/streaks [get]
func HandleGetStreaks(svc puzzle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, paramUserID)
		if !ok {
			return
		}
		pt, ok := getPuzzleParam(r, w)
		if !ok {
			return
		}

		summary, err := svc.StreakSummary(r.Context(), userID, pt)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetStreaksFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, summary)
	}
}

// HandleRewardDelta computes the streak reward added by candidate dates
// @Summary Streak reward delta
// @Description Returns how much the candidate dates would add to the user's total streak reward
// @Tags streaks
// @Accept json
// @Produce json
// @Param request body RewardDeltaRequest true "Candidate dates"
// @Success 200 {object} RewardDeltaResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/rewards/delta [post]
func HandleRewardDelta(svc puzzle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, ErrMsgRewardDeltaFailed, http.StatusOK,
			func(ctx context.Context, req RewardDeltaRequest) (int, error) {
				dates := make([]civil.Date, 0, len(req.Dates))
				for _, raw := range req.Dates {
					dates = append(dates, parseDateOr(raw, civil.Date{}))
				}
				return svc.RewardDelta(ctx, req.UserID, domain.PuzzleType(req.Puzzle), dates)
			},
			func(delta int) interface{} {
				return RewardDeltaResponse{Delta: delta}
			},
		)
	}
}

// HandleGetMissed lists the most recent days a user has not played
// @Summary Missed puzzles
// @Tags streaks
// @Produce json
// @Param user_id query string true "User ID"
// @Param puzzle query string true "Puzzle type"
// @Param n query int false "How many dates to return"
// @Success 200 {object} MissedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/missed [get]
func HandleGetMissed(svc puzzle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, paramUserID)
		if !ok {
			return
		}
		pt, ok := getPuzzleParam(r, w)
		if !ok {
			return
		}
		n, ok := getIntParam(r, w, paramN, 0)
		if !ok {
			return
		}

		missed, err := svc.Missed(r.Context(), userID, pt, n)
		if err != nil {
			respondServiceError(w, r, ErrMsgMissedFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, MissedResponse{Missed: nonNil(missed)})
	}
}

// HandleAnnounce builds the winners announcement for a puzzle
// @Summary Winners announcement
// @Description Lists the fastest solvers of the two previous days and any winner who took both
// @Tags streaks
// @Produce json
// @Param puzzle query string true "Puzzle type"
// @Param date query string false "Announcement date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} domain.Announcement
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/announce [get]
func HandleAnnounce(svc puzzle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pt, ok := getPuzzleParam(r, w)
		if !ok {
			return
		}
		date, ok := getDateParam(r, w, svc.Today())
		if !ok {
			return
		}

		announcement, err := svc.Announce(r.Context(), pt, date)
		if err != nil {
			respondServiceError(w, r, ErrMsgAnnounceFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, announcement)
	}
}
