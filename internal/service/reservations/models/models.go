package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListByResourceRequest запрос на получение бронирований ресурса
type ListByResourceRequest struct {
	ResourceID       int64   `json:"resourceId"`
	Date             *string `json:"date,omitempty"`       // "2026-03-02", бронирования этой даты
	AssigneeID       *int64  `json:"assigneeId,omitempty"` // Фильтр по исполнителю (опционально)
	Status           *string `json:"status,omitempty"`     // Фильтр по статусу (опционально)
	IncludeCancelled bool    `json:"includeCancelled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр.
// Дата интерпретируется в часовом поясе loc.
func (r *ListByResourceRequest) ToDomainFilter(loc *time.Location) (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		ResourceID:       r.ResourceID,
		AssigneeID:       r.AssigneeID,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Date != nil {
		day, err := time.ParseInLocation(domain.DateFormat, *r.Date, loc)
		if err != nil {
			return filter, err
		}
		next := day.AddDate(0, 0, 1)
		filter.From = &day
		filter.To = &next
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID              int64     `json:"id"`
	ResourceID      int64     `json:"resourceId"`
	AssigneeID      *int64    `json:"assigneeId,omitempty"`
	CustomerID      int64     `json:"customerId"`
	Date            string    `json:"date"`      // "2026-03-02"
	StartTime       string    `json:"startTime"` // "10:00"
	EndTime         string    `json:"endTime"`   // "10:45"
	StartAt         time.Time `json:"startAt"`
	EndAt           time.Time `json:"endAt"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO.
// Дата и время показываются в часовом поясе loc.
func FromDomainReservation(r *domain.Reservation, loc *time.Location) *ReservationResponse {
	if r == nil {
		return nil
	}

	start := r.StartAt.In(loc)
	end := r.EndAt.In(loc)

	resp := &ReservationResponse{
		ID:                 r.ID,
		ResourceID:         r.ResourceID,
		AssigneeID:         r.AssigneeID,
		CustomerID:         r.CustomerID,
		Date:               start.Format(domain.DateFormat),
		StartTime:          start.Format(domain.TimeFormat),
		EndTime:            end.Format(domain.TimeFormat),
		StartAt:            start,
		EndAt:              end,
		DurationMinutes:    r.DurationMinutes(),
		Status:             string(r.Status),
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation, loc *time.Location) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, reservation := range reservations {
		if r := FromDomainReservation(reservation, loc); r != nil {
			resp.Reservations = append(resp.Reservations, *r)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
