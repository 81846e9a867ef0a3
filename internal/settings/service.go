package settings

import (
	"context"
	"fmt"

	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/logger"
	"github.com/osse101/CrossBot_Go/internal/repository"
)

// Service exposes the admin-tunable economy knobs
type Service interface {
	// Current returns the stored settings, or the configured defaults when
	// nothing has been saved yet
	Current(ctx context.Context) (domain.GameSettings, error)
	Update(ctx context.Context, s domain.GameSettings) error
}

type service struct {
	repo     repository.Settings
	defaults domain.GameSettings
}

// NewService creates a settings service falling back to defaults
func NewService(repo repository.Settings, defaults domain.GameSettings) Service {
	return &service{repo: repo, defaults: defaults}
}

func (s *service) Current(ctx context.Context) (domain.GameSettings, error) {
	stored, err := s.repo.GetSettings(ctx)
	if err != nil {
		return domain.GameSettings{}, fmt.Errorf("failed to load game settings: %w", err)
	}
	if stored == nil {
		return s.defaults, nil
	}
	return *stored, nil
}

func (s *service) Update(ctx context.Context, settings domain.GameSettings) error {
	if err := Validate(settings); err != nil {
		return err
	}
	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to save game settings: %w", err)
	}

	logger.FromContext(ctx).Info("Game settings updated",
		"item_drop_rate", settings.ItemDropRate,
		"currency_per_solve", settings.CurrencyPerSolve)
	return nil
}

// Validate checks the drop rate is a probability and the payout is not negative
func Validate(s domain.GameSettings) error {
	if s.ItemDropRate < 0 || s.ItemDropRate > 1 {
		return fmt.Errorf("%w: item drop rate %v is outside [0, 1]", domain.ErrInvalidSettings, s.ItemDropRate)
	}
	if s.CurrencyPerSolve < 0 {
		return fmt.Errorf("%w: currency per solve %d is negative", domain.ErrInvalidSettings, s.CurrencyPerSolve)
	}
	return nil
}
