package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	location        *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// location - часовой пояс, в котором показываются даты бронирований.
func NewService(
	reservationRepo ReservationRepository,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		reservationRepo: reservationRepo,
		location:        location,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.getReservation(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation, s.location), nil
}

// ListByResource получает бронирования ресурса.
// По умолчанию отменённые бронирования не возвращаются.
func (s *Service) ListByResource(ctx context.Context, req *models.ListByResourceRequest) (*models.ReservationListResponse, error) {
	logMsg := fmt.Sprintf("ListByResource: fetching reservations for resource=%d", req.ResourceID)
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", *req.Date)
	}
	if req.AssigneeID != nil {
		logMsg += fmt.Sprintf(", assignee=%d", *req.AssigneeID)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter(s.location)
	if err != nil {
		s.logger.Warn("ListByResource: invalid filter for resource=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.ListByResource(ctx, filter)
	if err != nil {
		s.logger.Error("ListByResource: repository error for resource=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: ListByResource - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByResource: successfully fetched %d reservations for resource=%d", len(reservations), req.ResourceID)
	return models.FromDomainReservationList(reservations, s.location), nil
}

// Cancel отменяет бронирование.
// Отменить можно только ожидающее или подтверждённое бронирование.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for reservation id=%d", id)
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	reservation, err := s.getReservation(ctx, "Cancel", id)
	if err != nil {
		return err
	}

	// Проверяем, можно ли отменить бронирование
	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, reservation.Status)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, id, req.CancellationReason); err != nil {
		return s.mapRepoError("Cancel", id, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return nil
}

// UpdateStatus обновляет статус бронирования.
// Допустимы переходы pending -> confirmed|cancelled и confirmed -> completed|cancelled.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s", id, req.Status)

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	reservation, err := s.getReservation(ctx, "UpdateStatus", id)
	if err != nil {
		return err
	}

	if !reservation.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for reservation id=%d",
			reservation.Status, newStatus, id)
		return ErrInvalidTransition
	}

	// Отмена через смену статуса фиксирует время отмены
	if newStatus == domain.StatusCancelled {
		err = s.reservationRepo.Cancel(ctx, id, "")
	} else {
		err = s.reservationRepo.UpdateStatus(ctx, id, newStatus)
	}
	if err != nil {
		return s.mapRepoError("UpdateStatus", id, err)
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", id, newStatus)
	return nil
}

// Вспомогательные методы

func (s *Service) getReservation(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(op, id, err)
	}
	return reservation, nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, reservationRepo.ErrReservationNotFound) {
		s.logger.Warn("%s: reservation id=%d not found", op, id)
		return ErrReservationNotFound
	}
	s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
