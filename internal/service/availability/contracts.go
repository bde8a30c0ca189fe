package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ReservationCounter хранилище бронирований.
// Реализация обязана исключать отменённые брони и применять полуоткрытое
// пересечение start_at < end AND end_at > start на стороне хранилища.
type ReservationCounter interface {
	CountOverlapping(ctx context.Context, scope domain.CapacityScope, start, end time.Time) (int, error)
}

// BlackoutCalendar предикат закрытых дат (праздники, выходные дни)
type BlackoutCalendar interface {
	IsBlocked(date time.Time) bool
}

// MetricsRecorder приёмник метрик движка
type MetricsRecorder interface {
	ObserveAvailabilityCheck(result string)
	ObserveSlotsReturned(count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noBlackouts struct{}

func (noBlackouts) IsBlocked(time.Time) bool { return false }

type noMetrics struct{}

func (noMetrics) ObserveAvailabilityCheck(string) {}
func (noMetrics) ObserveSlotsReturned(int)        {}
