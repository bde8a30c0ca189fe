package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/settings/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Service сервис глобальных настроек бронирования
type Service struct {
	settingsRepo SettingsRepository
	cache        SettingsCache
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, cache SettingsCache, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Get возвращает текущие настройки (через кэш)
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Error("Get: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: Get - load settings: %v", ErrInternal, err)
	}
	return models.FromDomainSettings(settings), nil
}

// Update частично обновляет настройки.
// В отличие от движка, который пропускает испорченные значения, здесь они отклоняются целиком.
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating global settings")

	// 1. Валидируем запрос
	if err := validateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 2. Читаем актуальные настройки напрямую из хранилища
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Update: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: Update - load settings: %v", ErrInternal, err)
	}

	// 3. Применяем изменения и сохраняем
	req.ApplyTo(&settings)
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		s.logger.Error("Update: failed to save settings: %v", err)
		return nil, fmt.Errorf("%w: Update - save settings: %v", ErrInternal, err)
	}

	// 4. Сбрасываем кэш
	s.cache.Invalidate(ctx)

	s.logger.Info("Update: settings updated")
	return models.FromDomainSettings(settings), nil
}

func validateRequest(req *models.UpdateSettingsRequest) error {
	for day, hours := range req.WeeklyHours {
		if day < 0 || day > 6 {
			return fmt.Errorf("%w: weekday %d out of range 0..6", ErrInvalidInput, day)
		}
		if hours == "" {
			continue
		}
		if _, err := types.ParseTimeRange(hours); err != nil {
			return fmt.Errorf("%w: weekly hours for day %d: %v", ErrInvalidInput, day, err)
		}
	}

	if req.Breaks != nil && strings.TrimSpace(*req.Breaks) != "" {
		for _, part := range strings.Split(*req.Breaks, ",") {
			if _, err := types.ParseTimeRange(part); err != nil {
				return fmt.Errorf("%w: break %q: %v", ErrInvalidInput, strings.TrimSpace(part), err)
			}
		}
	}

	if req.FutureDaysLimit != nil {
		if v := *req.FutureDaysLimit; v < domain.MinFutureDaysLimit || v > domain.MaxFutureDaysLimit {
			return fmt.Errorf("%w: futureDaysLimit must be between %d and %d",
				ErrInvalidInput, domain.MinFutureDaysLimit, domain.MaxFutureDaysLimit)
		}
	}

	if req.SlotIntervalMinutes != nil {
		if v := *req.SlotIntervalMinutes; v < domain.MinSlotIntervalMinutes || v > domain.MaxSlotIntervalMinutes {
			return fmt.Errorf("%w: slotIntervalMinutes must be between %d and %d",
				ErrInvalidInput, domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes)
		}
	}

	return nil
}
