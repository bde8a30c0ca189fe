package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

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
	AvailableSlots(
		ctx context.Context,
		settings domain.Settings,
		resource *domain.Resource,
		date string,
		durationMinutes int,
		assigneeID int64,
	) ([]domain.AvailableSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
