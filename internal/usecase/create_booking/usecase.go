package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	resourceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRepository
	settings        SettingsProvider
	engine          AvailabilityEngine
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	resourceRepo ResourceRepository,
	settings SettingsProvider,
	engine AvailabilityEngine,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		resourceRepo:    resourceRepo,
		settings:        settings,
		engine:          engine,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка вместимости и вставка выполняются в одной сериализуемой транзакции,
// поэтому два конкурентных запроса не могут занять последнее место одновременно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: resource=%d, customer=%d, assignee=%d, date=%s, time=%s",
		req.ResourceID, req.CustomerID, req.AssigneeID, req.Date, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Снимок настроек
	settings, err := uc.settings.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		result = nil

		// 3.1. Получаем ресурс
		resource, err := uc.resourceRepo.GetByID(txCtx, req.ResourceID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				uc.logger.Warn("CreateBooking: resource id=%d not found", req.ResourceID)
				return ErrResourceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get resource id=%d: %v", req.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %w", ErrInternal, err)
		}

		// 3.2. Длительность по умолчанию - длительность ресурса
		duration := req.DurationMinutes
		if duration == 0 {
			duration = resource.DurationMinutes
		}
		if duration <= 0 || duration > domain.MaxDurationMinutes {
			uc.logger.Warn("CreateBooking: resource id=%d has invalid duration=%d", req.ResourceID, duration)
			return fmt.Errorf("%w: duration must be between 1 and %d minutes", ErrInvalidInput, domain.MaxDurationMinutes)
		}

		// 3.3. Проверяем дату, расписание и сетку слотов
		day, err := uc.engine.ValidateSlot(settings, resource, req.Date, req.StartTime)
		if err != nil {
			uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
			return mapSlotError(err)
		}

		start := req.StartTime.On(day, uc.engine.Location())
		end := start.Add(time.Duration(duration) * time.Minute)

		// 3.4. Финальная проверка вместимости с теми же буферами, что и при выдаче слотов
		decision, err := uc.engine.CheckBuffered(txCtx, resource, start, end, req.AssigneeID)
		if err != nil {
			uc.logger.Error("CreateBooking: capacity check failed: %v", err)
			return fmt.Errorf("%w: capacity check: %w", ErrInternal, err)
		}
		if !decision.Available {
			uc.logger.Warn("CreateBooking: slot not available, %d/%d spots taken",
				decision.Overlapping, decision.Capacity)
			return ErrSlotNotAvailable
		}

		uc.logger.Info("CreateBooking: slot available, %d/%d spots taken",
			decision.Overlapping, decision.Capacity)

		// 3.5. Создаем бронирование
		reservation := &domain.Reservation{
			ResourceID: req.ResourceID,
			CustomerID: req.CustomerID,
			StartAt:    start,
			EndAt:      end,
			Status:     domain.StatusConfirmed,
			Notes:      req.Notes,
		}
		if req.AssigneeID > 0 {
			reservation.AssigneeID = ptr.Ptr(req.AssigneeID)
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ResourceID:      result.ResourceID,
		AssigneeID:      result.AssigneeID,
		CustomerID:      result.CustomerID,
		StartAt:         result.StartAt,
		EndAt:           result.EndAt,
		DurationMinutes: result.DurationMinutes(),
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}
	if req.AssigneeID < 0 {
		return fmt.Errorf("%w: assigneeID must not be negative", ErrInvalidInput)
	}
	if !req.StartTime.IsValid() {
		return fmt.Errorf("%w: invalid start time", ErrInvalidInput)
	}
	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: durationMinutes must not be negative", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}

// mapSlotError переводит ошибки движка в ошибки use case
func mapSlotError(err error) error {
	switch {
	case errors.Is(err, availability.ErrInvalidDate):
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	case errors.Is(err, availability.ErrDateNotBookable):
		return fmt.Errorf("%w: %v", ErrDateNotBookable, err)
	case errors.Is(err, availability.ErrClosed):
		return fmt.Errorf("%w: %v", ErrResourceClosed, err)
	case errors.Is(err, availability.ErrOffGrid), errors.Is(err, availability.ErrInBreak):
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	default:
		return fmt.Errorf("%w: slot validation: %v", ErrInternal, err)
	}
}
