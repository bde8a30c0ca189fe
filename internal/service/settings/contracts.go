package settings

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// SettingsRepository интерфейс хранилища глобальных настроек
type SettingsRepository interface {
	Get(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
}

// SettingsCache интерфейс кэша снимка настроек
type SettingsCache interface {
	Get(ctx context.Context) (domain.Settings, error)
	Invalidate(ctx context.Context)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
