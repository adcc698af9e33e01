package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"receipt-desk/internal/models"
	"receipt-desk/internal/repository"

	"go.uber.org/zap"
)

// DefaultPlatformFee applies when the setting is missing or unreadable.
const DefaultPlatformFee = 10.0

type SettingsService struct {
	settings SettingStore
	cache    SettingsCache
	cacheTTL time.Duration
	now      Clock
	logger   *zap.Logger
}

// NewSettingsService accepts a nil cache.
func NewSettingsService(settings SettingStore, cache SettingsCache, cacheTTL time.Duration, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		settings: settings,
		cache:    cache,
		cacheTTL: cacheTTL,
		now:      time.Now,
		logger:   logger,
	}
}

// PlatformFee returns the current platform fee percentage. It never fails.
func (s *SettingsService) PlatformFee(ctx context.Context) float64 {
	key := models.SettingPlatformFeePercentage

	if s.cache != nil {
		if v, ok, err := s.cache.Get(ctx, key); err == nil && ok {
			if fee, ok := parseFee(v); ok {
				return fee
			}
		} else if err != nil {
			s.logger.Debug("Settings cache read failed", zap.Error(err))
		}
	}

	setting, err := s.settings.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("Failed to read platform fee, using default", zap.Error(err))
		}
		return DefaultPlatformFee
	}

	fee, ok := parseFee(setting.Value)
	if !ok {
		s.logger.Warn("Stored platform fee is not a number, using default", zap.String("value", setting.Value))
		return DefaultPlatformFee
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, setting.Value, s.cacheTTL); err != nil {
			s.logger.Debug("Settings cache write failed", zap.Error(err))
		}
	}
	return fee
}

func (s *SettingsService) UpdatePlatformFee(ctx context.Context, actor Actor, value float64) (float64, error) {
	if err := requireAdmin(actor); err != nil {
		return 0, err
	}
	if math.IsNaN(value) || value < 0 || value > 100 {
		return 0, fmt.Errorf("%w: platform fee must be within [0, 100]", ErrInvalidArgument)
	}

	err := s.settings.Upsert(ctx, &models.GlobalSetting{
		Key:         models.SettingPlatformFeePercentage,
		Value:       strconv.FormatFloat(value, 'f', -1, 64),
		Description: "Platform fee percentage deducted from partner deposits",
		UpdatedAt:   s.now(),
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, models.SettingPlatformFeePercentage); err != nil {
			s.logger.Warn("Failed to invalidate cached platform fee", zap.Error(err))
		}
	}

	s.logger.Info("Platform fee updated", zap.Float64("value", value), zap.String("by", actor.UserID.String()))
	return value, nil
}

// parseFee accepts any finite number, including 0.
func parseFee(v string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
