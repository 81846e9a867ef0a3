package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/ledger"
)

// RegisterUserRequest creates a user or refreshes their display name
type RegisterUserRequest struct {
	UserID string `json:"user_id" validate:"required,max=100"`
	Name   string `json:"name" validate:"max=100"`
}

// HandleRegisterUser registers a chat user
// @Summary Register user
// @Description Creates the user on first contact, otherwise updates the display name
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "User details"
// @Success 201 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/users [post]
func HandleRegisterUser(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, ErrMsgRegisterUserFailed, http.StatusCreated,
			func(ctx context.Context, req RegisterUserRequest) (*domain.User, error) {
				return svc.RegisterUser(ctx, req.UserID, req.Name)
			},
			func(u *domain.User) interface{} { return u },
		)
	}
}

// HandleGetAccount returns a user's balance, hat and inventory
// @Summary Get account
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} domain.Account
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/users/{id} [get]
func HandleGetAccount(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "id")

		account, err := svc.GetAccount(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetAccountFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, account)
	}
}
