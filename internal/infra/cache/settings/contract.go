package settings

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Loader источник настроек при промахе кэша
type Loader interface {
	Get(ctx context.Context) (domain.Settings, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
}
