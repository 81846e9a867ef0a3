package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ResultResponse reports an operation whose failure is an expected outcome,
// such as a debit without enough funds
type ResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// encodeBuffers recycles response buffers; most payloads fit the initial size
var encodeBuffers = sync.Pool{
	New: func() interface{} { return bytes.NewBuffer(make([]byte, 0, 512)) },
}

// respondJSON sends a JSON response with the given status code and payload.
// The payload is encoded before any header is written so an encoding failure
// still produces a clean 500.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		encodeBuffers.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(buf).Encode(ErrorResponse{Error: ErrMsgGenericServerError})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondResult sends a 200 with a success flag and the matching message
func respondResult(w http.ResponseWriter, ok bool, okMsg, failMsg string) {
	msg := okMsg
	if !ok {
		msg = failMsg
	}
	respondJSON(w, http.StatusOK, ResultResponse{Success: ok, Message: msg})
}

// respondServiceError logs a failed service call and maps it onto a status and user message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
		msg = opName + ": " + msg
	} else {
		log.Warn(opName, "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgConflictError      = "Someone else changed that at the same time. Please try again."

	ErrMsgInvalidPuzzleTypeError = "Unknown puzzle type"
	ErrMsgDuplicateDateError     = "The same date was given more than once"
	ErrMsgRewardInvariantError   = "That entry would reduce earned streak rewards"

	ErrMsgUserNotFoundError  = "User not found"
	ErrMsgItemNotFoundError  = "Item not found"
	ErrMsgNotEquippableError = "That item can't be worn as a hat"

	ErrMsgInvalidAmountError   = "Amount must be positive"
	ErrMsgInvalidQuantityError = "Quantity must be positive"
	ErrMsgSelfTransferError    = "You can't send money to yourself"

	ErrMsgInvalidSettingsError = "Invalid game settings"
	ErrMsgInvalidInputError    = "Invalid input"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Unrecognized errors never leak their text to the client.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidPuzzleType):
		return http.StatusBadRequest, ErrMsgInvalidPuzzleTypeError
	case errors.Is(err, domain.ErrDuplicateDate):
		return http.StatusBadRequest, ErrMsgDuplicateDateError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrNotEquippable):
		return http.StatusBadRequest, ErrMsgNotEquippableError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantityError
	case errors.Is(err, domain.ErrSelfTransfer):
		return http.StatusBadRequest, ErrMsgSelfTransferError
	case errors.Is(err, domain.ErrInvalidSettings):
		return http.StatusBadRequest, ErrMsgInvalidSettingsError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrStorageConflict):
		return http.StatusConflict, ErrMsgConflictError
	case errors.Is(err, domain.ErrRewardInvariant):
		return http.StatusConflict, ErrMsgRewardInvariantError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
