package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CrossBot_Go/internal/domain"
)

func TestHandleRegisterUser(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockLedgerService{}
		mockSvc.On("RegisterUser", mock.Anything, "u1", "Alice").Return(&domain.User{ID: "u1", Name: "Alice"}, nil)

		w := httptest.NewRecorder()
		HandleRegisterUser(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/users",
			jsonBody(t, RegisterUserRequest{UserID: "u1", Name: "Alice"})))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Missing ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleRegisterUser(&MockLedgerService{}).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/users",
			jsonBody(t, RegisterUserRequest{Name: "Alice"})))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequestSummary)
	})

	t.Run("Service Error", func(t *testing.T) {
		mockSvc := &MockLedgerService{}
		mockSvc.On("RegisterUser", mock.Anything, "u1", "").Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		HandleRegisterUser(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/users",
			jsonBody(t, RegisterUserRequest{UserID: "u1"})))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgRegisterUserFailed)
	})
}

func TestHandleGetAccount(t *testing.T) {
	newRouter := func(svc *MockLedgerService) http.Handler {
		r := chi.NewRouter()
		r.Get("/api/v1/users/{id}", HandleGetAccount(svc))
		return r
	}

	t.Run("Found", func(t *testing.T) {
		mockSvc := &MockLedgerService{}
		hat := "top_hat"
		mockSvc.On("GetAccount", mock.Anything, "u1").Return(&domain.Account{
			User: domain.User{ID: "u1", Balance: 120, HatKey: &hat},
			Inventory: []domain.InventoryItem{
				{Item: domain.Item{Key: "top_hat", Name: "Top Hat", IsHat: true}, Quantity: 2},
			},
		}, nil)

		w := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/users/u1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"balance":120`)
		assert.Contains(t, w.Body.String(), `"hat":"top_hat"`)
		assert.Contains(t, w.Body.String(), `"quantity":2`)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockSvc := &MockLedgerService{}
		mockSvc.On("GetAccount", mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

		w := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/users/ghost", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgUserNotFoundError)
	})
}

func TestHandleTransfer(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    TransferRequest
		setupMock      func(*MockLedgerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: TransferRequest{FromUserID: "a", ToUserID: "b", Amount: 25},
			setupMock: func(m *MockLedgerService) {
				m.On("Transfer", mock.Anything, "a", "b", 25).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"success":true`,
		},
		{
			name:        "Insufficient Funds Is A Result",
			requestBody: TransferRequest{FromUserID: "a", ToUserID: "b", Amount: 25},
			setupMock: func(m *MockLedgerService) {
				m.On("Transfer", mock.Anything, "a", "b", 25).Return(false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgNotEnoughMoney,
		},
		{
			name:           "Self Transfer Rejected",
			requestBody:    TransferRequest{FromUserID: "a", ToUserID: "a", Amount: 25},
			setupMock:      func(m *MockLedgerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Must differ from fromuserid",
		},
		{
			name:           "Zero Amount Rejected",
			requestBody:    TransferRequest{FromUserID: "a", ToUserID: "b"},
			setupMock:      func(m *MockLedgerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"amount"`,
		},
		{
			name:        "Unknown Sender",
			requestBody: TransferRequest{FromUserID: "a", ToUserID: "b", Amount: 5},
			setupMock: func(m *MockLedgerService) {
				m.On("Transfer", mock.Anything, "a", "b", 5).Return(false, domain.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgUserNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockLedgerService{}
			tt.setupMock(mockSvc)

			w := httptest.NewRecorder()
			HandleTransfer(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/ledger/transfer", jsonBody(t, tt.requestBody)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleCreditDebit(t *testing.T) {
	t.Run("Credit", func(t *testing.T) {
		mockSvc := &MockLedgerService{}
		mockSvc.On("Credit", mock.Anything, "u1", 100).Return(nil)

		w := httptest.NewRecorder()
		HandleCredit(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/ledger/credit",
			jsonBody(t, AdjustBalanceRequest{UserID: "u1", Amount: 100})))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgCredited)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Debit Without Funds", func(t *testing.T) {
		mockSvc := &MockLedgerService{}
		mockSvc.On("Debit", mock.Anything, "u1", 100).Return(false, nil)

		w := httptest.NewRecorder()
		HandleDebit(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/ledger/debit",
			jsonBody(t, AdjustBalanceRequest{UserID: "u1", Amount: 100})))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})

	t.Run("Negative Amount", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleDebit(&MockLedgerService{}).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/ledger/debit",
			jsonBody(t, AdjustBalanceRequest{UserID: "u1", Amount: -5})))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleItemAdjustments(t *testing.T) {
	t.Run("Grant Unknown Item", func(t *testing.T) {
		mockSvc := &MockLedgerService{}
		mockSvc.On("GrantItem", mock.Anything, "u1", "nope", 1).Return(domain.ErrItemNotFound)

		w := httptest.NewRecorder()
		HandleGrantItem(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/items/grant",
			jsonBody(t, AdjustItemRequest{UserID: "u1", ItemKey: "nope", Quantity: 1})))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgItemNotFoundError)
	})

	t.Run("Revoke Worn Hat", func(t *testing.T) {
		mockSvc := &MockLedgerService{}
		mockSvc.On("RevokeItem", mock.Anything, "u1", "top_hat", 1).Return(false, nil)

		w := httptest.NewRecorder()
		HandleRevokeItem(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/items/revoke",
			jsonBody(t, AdjustItemRequest{UserID: "u1", ItemKey: "top_hat", Quantity: 1})))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgNotEnoughItems)
	})

	t.Run("Equip Non-hat", func(t *testing.T) {
		mockSvc := &MockLedgerService{}
		mockSvc.On("Equip", mock.Anything, "u1", "pencil").Return(false, domain.ErrNotEquippable)

		w := httptest.NewRecorder()
		HandleEquipHat(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/hat",
			jsonBody(t, EquipRequest{UserID: "u1", ItemKey: "pencil"})))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNotEquippableError)
	})

	t.Run("Equip", func(t *testing.T) {
		mockSvc := &MockLedgerService{}
		mockSvc.On("Equip", mock.Anything, "u1", "top_hat").Return(true, nil)

		w := httptest.NewRecorder()
		HandleEquipHat(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/hat",
			jsonBody(t, EquipRequest{UserID: "u1", ItemKey: "top_hat"})))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgHatEquipped)
	})

	t.Run("Unequip Bare Head", func(t *testing.T) {
		mockSvc := &MockLedgerService{}
		mockSvc.On("Unequip", mock.Anything, "u1").Return(false, nil)

		w := httptest.NewRecorder()
		HandleUnequipHat(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/hat",
			jsonBody(t, UnequipRequest{UserID: "u1"})))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgNoHat)
	})
}
