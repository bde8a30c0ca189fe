package domain

import "time"

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// AllStatuses все известные статусы
var AllStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// IsValid проверяет, что статус известен
func (s ReservationStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Reservation бронирование ресурса на абсолютный интервал [StartAt, EndAt)
type Reservation struct {
	ID         int64
	ResourceID int64
	AssigneeID *int64 // nil, если исполнитель не выбран
	CustomerID int64
	StartAt    time.Time
	EndAt      time.Time
	Status     ReservationStatus
	Notes      *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CountsAgainstCapacity возвращает true для всех статусов, кроме cancelled
func (r *Reservation) CountsAgainstCapacity() bool {
	return r.Status != StatusCancelled
}

// Overlaps проверяет пересечение бронирования с [start, end)
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return Overlaps(r.StartAt, r.EndAt, start, end)
}

// CanBeCancelled проверяет, можно ли отменить бронирование
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanTransitionTo проверяет, допустима ли смена статуса
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	switch r.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// DurationMinutes длительность бронирования в минутах
func (r *Reservation) DurationMinutes() int {
	return int(r.EndAt.Sub(r.StartAt) / time.Minute)
}

// Overlaps проверка полуоткрытых интервалов: [aStart, aEnd) и [bStart, bEnd)
// пересекаются тогда и только тогда, когда aStart < bEnd && aEnd > bStart.
// Соприкасающиеся границы не пересекаются.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// ReservationsFilter фильтр списка бронирований ресурса
type ReservationsFilter struct {
	ResourceID       int64      // обязательно
	AssigneeID       *int64     // опционально
	From             *time.Time // бронирования, заканчивающиеся после From
	To               *time.Time // бронирования, начинающиеся до To
	Status           *ReservationStatus
	IncludeCancelled bool
}
