package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CrossBot_Go/internal/domain"
)

// SettingsRepository stores the single game_settings row
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) GetSettings(ctx context.Context) (*domain.GameSettings, error) {
	var s domain.GameSettings
	err := r.db.QueryRow(ctx, `
		SELECT item_drop_rate, currency_per_solve
		FROM game_settings WHERE id = $1`, settingsRowID,
	).Scan(&s.ItemDropRate, &s.CurrencyPerSolve)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapPgError(ErrMsgFailedToGetSettings, err)
	}
	return &s, nil
}

func (r *SettingsRepository) SaveSettings(ctx context.Context, s domain.GameSettings) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO game_settings (id, item_drop_rate, currency_per_solve, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE
		SET item_drop_rate = EXCLUDED.item_drop_rate,
			currency_per_solve = EXCLUDED.currency_per_solve,
			updated_at = NOW()`,
		settingsRowID, s.ItemDropRate, s.CurrencyPerSolve)
	if err != nil {
		return wrapPgError(ErrMsgFailedToSaveSettings, err)
	}
	return nil
}
