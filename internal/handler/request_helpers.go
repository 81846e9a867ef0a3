package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/golang-sql/civil"

	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// It logs the operation and returns a standardized error response to the client.
//
// Parameters:
//   - r: The HTTP request containing the JSON body
//   - w: The HTTP response writer to send error responses
//   - req: Pointer to the request struct to decode into (must implement validation tags)
//   - actionName: Human-readable name for the action (e.g., "Add time", "Transfer")
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req AddTimeRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Add time"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter from the request.
// If the parameter is missing or empty, it writes an error response and returns false.
//
// Example usage:
//
//	userID, ok := GetQueryParam(r, w, "user_id")
//	if !ok {
//	    return
//	}
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
// Unlike GetQueryParam, this does not write an error response if the parameter is missing.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// getPuzzleParam reads and parses the required "puzzle" query parameter
func getPuzzleParam(r *http.Request, w http.ResponseWriter) (domain.PuzzleType, bool) {
	raw, ok := GetQueryParam(r, w, paramPuzzle)
	if !ok {
		return "", false
	}
	pt, err := domain.ParsePuzzleType(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPuzzleTypeError)
		return "", false
	}
	return pt, true
}

// getDateParam reads the "date" query parameter, falling back to def when absent
func getDateParam(r *http.Request, w http.ResponseWriter, def civil.Date) (civil.Date, bool) {
	raw := r.URL.Query().Get(paramDate)
	if raw == "" {
		return def, true
	}
	d, err := civil.ParseDate(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidDate)
		return civil.Date{}, false
	}
	return d, true
}

// getIntParam reads an optional integer query parameter
func getIntParam(r *http.Request, w http.ResponseWriter, paramName string, def int) (int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
		return 0, false
	}
	return v, true
}

// parseDateOr parses a validated YYYY-MM-DD body field, falling back to def when empty
func parseDateOr(raw string, def civil.Date) civil.Date {
	if raw == "" {
		return def
	}
	// validator's "date" tag has already accepted raw
	d, _ := civil.ParseDate(raw)
	return d
}

// LogRequestFields is a helper to log common request fields in a structured way.
//
// Example usage:
//
//	LogRequestFields(log, "user_id", req.UserID, "puzzle", req.Puzzle)
func LogRequestFields(log *slog.Logger, keyvals ...interface{}) {
	if len(keyvals)%2 != 0 {
		log.Warn("LogRequestFields called with odd number of arguments")
		return
	}
	log.Debug("Request details", keyvals...)
}

// handleAction is a generic helper for POST handlers: decode and validate the
// body, call the service, and write the response or the mapped error.
func handleAction[REQ any, RES any](
	w http.ResponseWriter,
	r *http.Request,
	opName string,
	status int,
	action func(context.Context, REQ) (RES, error),
	responseFactory func(RES) interface{},
) {
	var req REQ
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}

	res, err := action(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}

	respondJSON(w, status, responseFactory(res))
}

// Query parameter names
const (
	paramUserID = "user_id"
	paramPuzzle = "puzzle"
	paramDate   = "date"
	paramN      = "n"
)
