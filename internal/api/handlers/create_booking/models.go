package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ResourceID      int64   `json:"resourceId"`
	CustomerID      int64   `json:"customerId"`
	AssigneeID      *int64  `json:"assigneeId,omitempty"`
	BookingDate     string  `json:"bookingDate"` // "2026-03-02"
	StartTime       string  `json:"startTime"`   // "10:00"
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	ResourceID      int64   `json:"resourceId"`
	AssigneeID      *int64  `json:"assigneeId,omitempty"`
	CustomerID      int64   `json:"customerId"`
	StartAt         string  `json:"startAt"`
	EndAt           string  `json:"endAt"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Дата передается как есть: её проверяет движок доступности.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим время
	startTime, err := types.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, err
	}

	req := &createBooking.Request{
		ResourceID: r.ResourceID,
		CustomerID: r.CustomerID,
		Date:       r.BookingDate,
		StartTime:  startTime,
		Notes:      r.Notes,
	}
	if r.AssigneeID != nil {
		req.AssigneeID = *r.AssigneeID
	}
	if r.DurationMinutes != nil {
		req.DurationMinutes = *r.DurationMinutes
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ResourceID:      resp.ResourceID,
		AssigneeID:      resp.AssigneeID,
		CustomerID:      resp.CustomerID,
		StartAt:         resp.StartAt.Format(time.RFC3339),
		EndAt:           resp.EndAt.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
