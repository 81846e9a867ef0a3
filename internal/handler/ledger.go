package handler

import (
	"net/http"

	"github.com/osse101/CrossBot_Go/internal/ledger"
	"github.com/osse101/CrossBot_Go/internal/logger"
)

// TransferRequest moves currency between two users
type TransferRequest struct {
	FromUserID string `json:"from_user_id" validate:"required,max=100"`
	ToUserID   string `json:"to_user_id" validate:"required,max=100,nefield=FromUserID"`
	Amount     int    `json:"amount" validate:"gt=0"`
}

// AdjustBalanceRequest is an admin credit or debit
type AdjustBalanceRequest struct {
	UserID string `json:"user_id" validate:"required,max=100"`
	Amount int    `json:"amount" validate:"gt=0"`
}

// AdjustItemRequest is an admin item grant or revoke
type AdjustItemRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100"`
	ItemKey  string `json:"item_key" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

// EquipRequest puts an owned hat on
type EquipRequest struct {
	UserID  string `json:"user_id" validate:"required,max=100"`
	ItemKey string `json:"item_key" validate:"required,max=100"`
}

// UnequipRequest takes the current hat off
type UnequipRequest struct {
	UserID string `json:"user_id" validate:"required,max=100"`
}

// HandleTransfer moves currency from one user to another
// @Summary Transfer currency
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Transfer details"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ledger/transfer [post]
func HandleTransfer(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TransferRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Transfer"); err != nil {
			return
		}

		ok, err := svc.Transfer(r.Context(), req.FromUserID, req.ToUserID, req.Amount)
		if err != nil {
			respondServiceError(w, r, ErrMsgTransferFailed, err)
			return
		}
		respondResult(w, ok, MsgTransferred, MsgNotEnoughMoney)
	}
}

// HandleCredit adds currency to a user's balance
// @Summary Credit currency (admin)
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body AdjustBalanceRequest true "Credit details"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ledger/credit [post]
func HandleCredit(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdjustBalanceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Credit"); err != nil {
			return
		}

		if err := svc.Credit(r.Context(), req.UserID, req.Amount); err != nil {
			respondServiceError(w, r, ErrMsgCreditFailed, err)
			return
		}
		logger.FromContext(r.Context()).Info("Admin credit", "user_id", req.UserID, "amount", req.Amount)
		respondResult(w, true, MsgCredited, "")
	}
}

// HandleDebit removes currency from a user's balance
// @Summary Debit currency (admin)
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body AdjustBalanceRequest true "Debit details"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ledger/debit [post]
func HandleDebit(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdjustBalanceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Debit"); err != nil {
			return
		}

		ok, err := svc.Debit(r.Context(), req.UserID, req.Amount)
		if err != nil {
			respondServiceError(w, r, ErrMsgDebitFailed, err)
			return
		}
		respondResult(w, ok, MsgDebited, MsgNotEnoughMoney)
	}
}

// HandleGrantItem adds items to a user's inventory
// @Summary Grant item (admin)
// @Tags items
// @Accept json
// @Produce json
// @Param request body AdjustItemRequest true "Grant details"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/items/grant [post]
func HandleGrantItem(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdjustItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Grant item"); err != nil {
			return
		}

		if err := svc.GrantItem(r.Context(), req.UserID, req.ItemKey, req.Quantity); err != nil {
			respondServiceError(w, r, ErrMsgGrantItemFailed, err)
			return
		}
		respondResult(w, true, MsgItemGranted, "")
	}
}

// HandleRevokeItem removes items from a user's inventory. A worn hat is never removed.
// @Summary Revoke item (admin)
// @Tags items
// @Accept json
// @Produce json
// @Param request body AdjustItemRequest true "Revoke details"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/items/revoke [post]
func HandleRevokeItem(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdjustItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Revoke item"); err != nil {
			return
		}

		ok, err := svc.RevokeItem(r.Context(), req.UserID, req.ItemKey, req.Quantity)
		if err != nil {
			respondServiceError(w, r, ErrMsgRevokeItemFailed, err)
			return
		}
		respondResult(w, ok, MsgItemRevoked, MsgNotEnoughItems)
	}
}

// HandleEquipHat wears an owned hat
// @Summary Equip hat
// @Tags items
// @Accept json
// @Produce json
// @Param request body EquipRequest true "Hat to wear"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/hat [post]
func HandleEquipHat(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EquipRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Equip hat"); err != nil {
			return
		}

		ok, err := svc.Equip(r.Context(), req.UserID, req.ItemKey)
		if err != nil {
			respondServiceError(w, r, ErrMsgEquipFailed, err)
			return
		}
		respondResult(w, ok, MsgHatEquipped, MsgHatNotOwned)
	}
}

// HandleUnequipHat takes the current hat off
// @Summary Remove hat
// @Tags items
// @Accept json
// @Produce json
// @Param request body UnequipRequest true "User"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/hat [delete]
func HandleUnequipHat(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UnequipRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Remove hat"); err != nil {
			return
		}

		ok, err := svc.Unequip(r.Context(), req.UserID)
		if err != nil {
			respondServiceError(w, r, ErrMsgUnequipFailed, err)
			return
		}
		respondResult(w, ok, MsgHatRemoved, MsgNoHat)
	}
}
