package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	resourceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/resource"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	resourceRepo ResourceRepository
	settings     SettingsProvider
	engine       AvailabilityEngine
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resourceRepo ResourceRepository,
	settings SettingsProvider,
	engine AvailabilityEngine,
	logger Logger,
) *UseCase {
	return &UseCase{
		resourceRepo: resourceRepo,
		settings:     settings,
		engine:       engine,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Некорректная дата или длительность дают пустой список слотов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: resource=%d, assignee=%d, date=%s, duration=%d",
		req.ResourceID, req.AssigneeID, req.Date, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем ресурс
	resource, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("GetAvailableSlots: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	// 3. Получаем снимок настроек
	settings, err := uc.settings.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 4. Длительность по умолчанию - длительность ресурса
	duration := req.DurationMinutes
	if duration == 0 {
		duration = resource.DurationMinutes
	}

	// 5. Считаем слоты
	slots, err := uc.engine.AvailableSlots(ctx, settings, resource, req.Date, duration, req.AssigneeID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: engine failed for resource=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to compute slots: %w", ErrInternal, err)
	}

	resp := &Response{
		Date:            req.Date,
		ResourceID:      req.ResourceID,
		AssigneeID:      req.AssigneeID,
		DurationMinutes: duration,
		Slots:           make([]Slot, 0, len(slots)),
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, Slot{
			StartTime:       s.StartTime,
			DurationMinutes: s.DurationMinutes,
			AvailableSpots:  s.AvailableSpots,
			TotalSpots:      s.TotalSpots,
		})
	}

	uc.logger.Info("GetAvailableSlots: resource=%d date=%s found %d slots", req.ResourceID, req.Date, len(resp.Slots))
	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}
	if req.AssigneeID < 0 {
		return fmt.Errorf("%w: assigneeID must not be negative", ErrInvalidInput)
	}
	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: durationMinutes must not be negative", ErrInvalidInput)
	}
	return nil
}
