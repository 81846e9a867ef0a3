package handler

import (
	"context"
	"net/http"

	"github.com/osse101/CrossBot_Go/internal/catalog"
	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/settings"
)

// ItemsResponse lists catalog items
type ItemsResponse struct {
	Items []domain.Item `json:"items"`
}

// UpdateSettingsRequest replaces the economy settings. Both fields are required
// so a partial body can't silently zero the other knob.
type UpdateSettingsRequest struct {
	ItemDropRate     *float64 `json:"item_drop_rate" validate:"required,gte=0,lte=1"`
	CurrencyPerSolve *int     `json:"currency_per_solve" validate:"required,gte=0"`
}

// HandleListItems returns the item catalog
// @Summary List items
// @Tags items
// @Produce json
// @Success 200 {object} ItemsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/items [get]
func HandleListItems(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListItemsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, ItemsResponse{Items: nonNil(items)})
	}
}

// HandleGetSettings returns the current economy settings
// @Summary Get game settings (admin)
// @Tags admin
// @Produce json
// @Success 200 {object} domain.GameSettings
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/settings [get]
func HandleGetSettings(svc settings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := svc.Current(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSettingsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, current)
	}
}

// HandleUpdateSettings replaces the economy settings
// @Summary Update game settings (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body UpdateSettingsRequest true "New settings"
// @Success 200 {object} domain.GameSettings
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/settings [put]
func HandleUpdateSettings(svc settings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, ErrMsgUpdateSettingsFailed, http.StatusOK,
			func(ctx context.Context, req UpdateSettingsRequest) (domain.GameSettings, error) {
				s := domain.GameSettings{
					ItemDropRate:     *req.ItemDropRate,
					CurrencyPerSolve: *req.CurrencyPerSolve,
				}
				if err := svc.Update(ctx, s); err != nil {
					return domain.GameSettings{}, err
				}
				return s, nil
			},
			func(s domain.GameSettings) interface{} { return s },
		)
	}
}

// HandleCatalogSync reloads the item catalog file into the store
// @Summary Sync item catalog (admin)
// @Tags admin
// @Produce json
// @Success 200 {object} catalog.SyncResult
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/catalog/sync [post]
func HandleCatalogSync(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Sync(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgCatalogSyncFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
