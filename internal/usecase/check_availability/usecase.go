package check_availability

import (
	"context"
	"errors"
	"fmt"

	resourceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
)

// UseCase use case для проверки доступности произвольного интервала
type UseCase struct {
	resourceRepo ResourceRepository
	engine       AvailabilityEngine
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(resourceRepo ResourceRepository, engine AvailabilityEngine, logger Logger) *UseCase {
	return &UseCase{
		resourceRepo: resourceRepo,
		engine:       engine,
		logger:       logger,
	}
}

// Execute проверяет, помещается ли ещё одно бронирование в интервал [Start, End),
// расширенный буферами ресурса. Пустой или перевёрнутый интервал недоступен.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: resource=%d, assignee=%d, interval=[%s, %s)",
		req.ResourceID, req.AssigneeID, req.Start.Format("2006-01-02T15:04"), req.End.Format("2006-01-02T15:04"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем ресурс
	resource, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("CheckAvailability: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %w", ErrInternal, err)
	}

	// 3. Проверяем вместимость с учетом буферов
	decision, err := uc.engine.CheckBuffered(ctx, resource, req.Start, req.End, req.AssigneeID)
	if err != nil {
		uc.logger.Error("CheckAvailability: capacity check failed for resource=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: capacity check: %w", ErrInternal, err)
	}

	bufferedStart, bufferedEnd := req.Start, req.End
	if req.Start.Before(req.End) {
		bufferedStart, bufferedEnd = availability.BufferedRange(resource, req.Start, req.End)
	}

	uc.logger.Info("CheckAvailability: resource=%d available=%t (%d/%d)",
		req.ResourceID, decision.Available, decision.Overlapping, decision.Capacity)

	return &Response{
		ResourceID:     req.ResourceID,
		AssigneeID:     req.AssigneeID,
		Start:          req.Start,
		End:            req.End,
		BufferedStart:  bufferedStart,
		BufferedEnd:    bufferedEnd,
		Overlapping:    decision.Overlapping,
		Capacity:       decision.Capacity,
		AvailableSpots: decision.FreeSpots(),
		Available:      decision.Available,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}
	if req.AssigneeID < 0 {
		return fmt.Errorf("%w: assigneeID must not be negative", ErrInvalidInput)
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	return nil
}
