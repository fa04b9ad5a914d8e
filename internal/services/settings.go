package services

import (
	"context"
	"errors"
	"time"

	"fitness-center/internal/dto"
	"fitness-center/internal/entities"
	"fitness-center/internal/repositories"
	"fitness-center/pkg/config"
	apperrors "fitness-center/pkg/errors"
	"fitness-center/pkg/ratelimit"
	"fitness-center/pkg/utils"

	"go.uber.org/zap"
)

type SettingsServiceInterface interface {
	ratelimit.SettingsProvider
	GetRateLimit(ctx context.Context) (dto.RateLimitSettingsDTO, error)
	UpdateRateLimit(ctx context.Context, payload dto.RateLimitSettingsDTO, updatedBy string) (dto.RateLimitSettingsDTO, error)
}

type SettingsService struct {
	repo     repositories.SettingsRepositoryInterface
	defaults config.RateLimitConfig
	logger   *zap.Logger
}

func NewSettingsService(repo repositories.SettingsRepositoryInterface, defaults config.RateLimitConfig, logger *zap.Logger) SettingsServiceInterface {
	return &SettingsService{repo: repo, defaults: defaults, logger: logger}
}

// RateLimitSettings reads the stored document on every call. A missing
// document means the configured defaults; a stored window or maximum that
// is not positive is replaced by its default.
func (s *SettingsService) RateLimitSettings(ctx context.Context) (ratelimit.Settings, error) {
	stored, err := s.repo.GetRateLimit(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		return s.defaultSettings(), nil
	}
	if err != nil {
		return ratelimit.Settings{}, err
	}

	current := ratelimit.Settings{
		Enabled:     stored.Enabled,
		Window:      time.Duration(stored.WindowSeconds) * time.Second,
		MaxRequests: stored.MaxRequests,
	}
	if current.Window <= 0 || current.MaxRequests <= 0 {
		s.logger.Warn("stored rate limit settings are invalid, using defaults",
			zap.Int("windowSeconds", stored.WindowSeconds),
			zap.Int("maxRequests", stored.MaxRequests),
		)
		current.Window = s.defaults.Window
		current.MaxRequests = s.defaults.MaxRequests
	}
	return current, nil
}

func (s *SettingsService) GetRateLimit(ctx context.Context) (dto.RateLimitSettingsDTO, error) {
	current, err := s.RateLimitSettings(ctx)
	if err != nil {
		return dto.RateLimitSettingsDTO{}, err
	}
	return dto.RateLimitSettingsDTO{
		Enabled:       utils.ToPtr(current.Enabled),
		WindowSeconds: int(current.Window / time.Second),
		MaxRequests:   current.MaxRequests,
	}, nil
}

func (s *SettingsService) UpdateRateLimit(ctx context.Context, payload dto.RateLimitSettingsDTO, updatedBy string) (dto.RateLimitSettingsDTO, error) {
	if payload.Enabled == nil {
		return dto.RateLimitSettingsDTO{}, apperrors.NewBadRequestError("enabled is required")
	}
	if payload.WindowSeconds <= 0 || payload.MaxRequests <= 0 {
		return dto.RateLimitSettingsDTO{}, apperrors.NewBadRequestError("window and max requests must be positive")
	}

	err := s.repo.SaveRateLimit(ctx, &entities.RateLimitSettings{
		Enabled:       *payload.Enabled,
		WindowSeconds: payload.WindowSeconds,
		MaxRequests:   payload.MaxRequests,
		UpdatedBy:     updatedBy,
		UpdatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return dto.RateLimitSettingsDTO{}, err
	}

	s.logger.Info("rate limit settings updated",
		zap.String("by", updatedBy),
		zap.Bool("enabled", *payload.Enabled),
		zap.Int("windowSeconds", payload.WindowSeconds),
		zap.Int("maxRequests", payload.MaxRequests),
	)
	return payload, nil
}

func (s *SettingsService) defaultSettings() ratelimit.Settings {
	return ratelimit.Settings{
		Enabled:     s.defaults.Enabled,
		Window:      s.defaults.Window,
		MaxRequests: s.defaults.MaxRequests,
	}
}
