package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
}

// SettingsProvider источник снимка глобальных настроек
type SettingsProvider interface {
	Get(ctx context.Context) (domain.Settings, error)
}

// AvailabilityEngine движок доступности
type AvailabilityEngine interface {
	Location() *time.Location
	ValidateSlot(settings domain.Settings, resource *domain.Resource, date string, start types.TimeOfDay) (time.Time, error)
	CheckBuffered(ctx context.Context, resource *domain.Resource, start, end time.Time, assigneeID int64) (availability.Decision, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
