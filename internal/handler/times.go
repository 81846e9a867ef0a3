package handler

import (
	"net/http"

	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/logger"
	"github.com/osse101/CrossBot_Go/internal/puzzle"
)

// AddTimeRequest records a solve time. A negative Seconds marks a failed attempt.
// Date defaults to today in the bot's time zone.
type AddTimeRequest struct {
	UserID  string `json:"user_id" validate:"required,max=100"`
	Puzzle  string `json:"puzzle" validate:"required,puzzle"`
	Date    string `json:"date,omitempty" validate:"omitempty,civildate"`
	Seconds *int   `json:"seconds" validate:"required"`
}

// AddTimeResponse wraps the service result with a user-facing message
type AddTimeResponse struct {
	Message string `json:"message"`
	*puzzle.AddTimeResult
}

// RemoveTimeRequest identifies the record to remove
type RemoveTimeRequest struct {
	UserID string `json:"user_id" validate:"required,max=100"`
	Puzzle string `json:"puzzle" validate:"required,puzzle"`
	Date   string `json:"date" validate:"required,civildate"`
}

// CompletionsResponse lists completion records
type CompletionsResponse struct {
	Completions []domain.Completion `json:"completions"`
}

// HandleAddTime records a user's time for a puzzle
// @Summary Add puzzle time
// @Description Records a solve time or failure and pays out currency, streak bonus and item drops
// @Tags times
// @Accept json
// @Produce json
// @Param request body AddTimeRequest true "Time details"
// @Success 201 {object} AddTimeResponse "Time recorded"
// @Success 200 {object} AddTimeResponse "A record already existed"
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/times [post]
func HandleAddTime(svc puzzle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddTimeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add time"); err != nil {
			return
		}

		log := logger.FromContext(r.Context())
		LogRequestFields(log, "user_id", req.UserID, "puzzle", req.Puzzle, "date", req.Date, "seconds", *req.Seconds)

		date := parseDateOr(req.Date, svc.Today())
		res, err := svc.AddTime(r.Context(), req.UserID, domain.PuzzleType(req.Puzzle), date, *req.Seconds)
		if err != nil {
			respondServiceError(w, r, ErrMsgAddTimeFailed, err)
			return
		}

		if !res.Added {
			respondJSON(w, http.StatusOK, AddTimeResponse{Message: MsgTimeAlreadyPresent, AddTimeResult: res})
			return
		}
		respondJSON(w, http.StatusCreated, AddTimeResponse{Message: MsgTimeRecorded, AddTimeResult: res})
	}
}

// HandleRemoveTime removes a user's time for a puzzle day
// @Summary Remove puzzle time
// @Description Failed attempts are deleted outright, solves are blanked so re-entry pays nothing
// @Tags times
// @Accept json
// @Produce json
// @Param request body RemoveTimeRequest true "Record to remove"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/times [delete]
func HandleRemoveTime(svc puzzle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RemoveTimeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Remove time"); err != nil {
			return
		}

		removed, err := svc.RemoveTime(r.Context(), req.UserID, domain.PuzzleType(req.Puzzle), parseDateOr(req.Date, svc.Today()))
		if err != nil {
			respondServiceError(w, r, ErrMsgRemoveTimeFailed, err)
			return
		}
		respondResult(w, removed, MsgTimeRemoved, MsgNothingToRemove)
	}
}

// HandleListTimes lists one user's records for a puzzle
// @Summary List user times
// @Tags times
// @Produce json
// @Param user_id query string true "User ID"
// @Param puzzle query string true "Puzzle type"
// @Success 200 {object} CompletionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/times [get]
func HandleListTimes(svc puzzle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, paramUserID)
		if !ok {
			return
		}
		pt, ok := getPuzzleParam(r, w)
		if !ok {
			return
		}

		completions, err := svc.ListCompletions(r.Context(), userID, pt)
		if err != nil {
			respondServiceError(w, r, ErrMsgListTimesFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, CompletionsResponse{Completions: nonNil(completions)})
	}
}

// HandleTimesOnDay lists every record for a puzzle on one day, fastest first
// @Summary List times for a day
// @Tags times
// @Produce json
// @Param puzzle query string true "Puzzle type"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} CompletionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/times/day [get]
func HandleTimesOnDay(svc puzzle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pt, ok := getPuzzleParam(r, w)
		if !ok {
			return
		}
		date, ok := getDateParam(r, w, svc.Today())
		if !ok {
			return
		}

		completions, err := svc.CompletionsOn(r.Context(), pt, date)
		if err != nil {
			respondServiceError(w, r, ErrMsgListTimesFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, CompletionsResponse{Completions: nonNil(completions)})
	}
}

// nonNil keeps empty lists rendering as [] rather than null
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
