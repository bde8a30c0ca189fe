package availability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Engine движок доступности: сетка слотов, перерывы, горизонт бронирования и вместимость.
// Не хранит состояния между вызовами: конфигурация передаётся снимком domain.Settings,
// бронирования читаются через ReservationCounter. Безопасен для конкурентного использования.
type Engine struct {
	loc       *time.Location
	blackouts BlackoutCalendar
	gate      *DateGate
	detector  *ConflictDetector
	filter    *SlotFilter
	metrics   MetricsRecorder
	logger    Logger
}

// NewEngine создает движок доступности
func NewEngine(
	store ReservationCounter,
	blackouts BlackoutCalendar,
	loc *time.Location,
	recorder MetricsRecorder,
	logger Logger,
) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	if recorder == nil {
		recorder = noMetrics{}
	}

	detector := NewConflictDetector(NewCapacityCounter(store), recorder)

	return &Engine{
		loc:       loc,
		blackouts: blackouts,
		gate:      NewDateGate(loc, &RealTimeProvider{}, blackouts),
		detector:  detector,
		filter:    NewSlotFilter(detector, loc),
		metrics:   recorder,
		logger:    logger,
	}
}

// WithTimeProvider подменяет источник текущего времени (для тестов)
func (e *Engine) WithTimeProvider(tp TimeProvider) *Engine {
	e.gate = NewDateGate(e.loc, tp, e.blackouts)
	return e
}

// Location возвращает часовой пояс сервиса
func (e *Engine) Location() *time.Location {
	return e.loc
}

// Today возвращает текущую дату в часовом поясе сервиса
func (e *Engine) Today() time.Time {
	return e.gate.Today()
}

// ParseDate парсит дату YYYY-MM-DD в часовом поясе сервиса
func (e *Engine) ParseDate(date string) (time.Time, bool) {
	parsed, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(date), e.loc)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// AvailableSlots возвращает доступные для бронирования времена начала на дату.
// Некорректные входные данные (дата, длительность) дают пустой список, не ошибку.
// Ошибка возвращается только при сбое хранилища бронирований.
func (e *Engine) AvailableSlots(
	ctx context.Context,
	settings domain.Settings,
	resource *domain.Resource,
	date string,
	durationMinutes int,
	assigneeID int64,
) ([]domain.AvailableSlot, error) {
	empty := []domain.AvailableSlot{}

	// 1. Валидация длительности
	if durationMinutes <= 0 || durationMinutes > domain.MaxDurationMinutes {
		e.logger.Warn("AvailableSlots: resource=%d invalid duration=%d", resource.ID, durationMinutes)
		return empty, nil
	}

	// 2. Парсинг даты
	day, ok := e.ParseDate(date)
	if !ok {
		e.logger.Warn("AvailableSlots: resource=%d invalid date=%q", resource.ID, date)
		return empty, nil
	}

	// 3. Проверка горизонта бронирования и блэкаутов
	if !e.gate.IsBookable(day, settings.FutureDaysLimit) {
		e.logger.Info("AvailableSlots: resource=%d date=%s is not bookable", resource.ID, date)
		return empty, nil
	}

	// 4. Рабочее окно на день
	resolution := ResolveSchedule(resource, settings, day)
	if !resolution.IsOpen() {
		e.logger.Info("AvailableSlots: resource=%d closed on %s", resource.ID, date)
		return empty, nil
	}

	// 5. Сетка слотов с учётом перерывов
	candidates := GenerateSlots(resolution.Window, settings.SlotIntervalMinutes, e.breaks(settings))

	// 6. Проверка вместимости для каждого кандидата
	slots, err := e.filter.Filter(ctx, resource, day, candidates, durationMinutes, assigneeID)
	if err != nil {
		e.logger.Error("AvailableSlots: resource=%d date=%s: %v", resource.ID, date, err)
		return nil, err
	}

	e.metrics.ObserveSlotsReturned(len(slots))
	e.logger.Info("AvailableSlots: resource=%d date=%s schedule=%s window=%s candidates=%d available=%d",
		resource.ID, date, resolution.Source, resolution.Window, len(candidates), len(slots))

	return slots, nil
}

// Check проверяет вместимость интервала [start, end) как есть, без буферов
func (e *Engine) Check(ctx context.Context, resource *domain.Resource, start, end time.Time, assigneeID int64) (Decision, error) {
	return e.detector.Check(ctx, resource, start, end, assigneeID)
}

// IsAvailable сообщает, помещается ли ещё одна бронь в [start, end)
func (e *Engine) IsAvailable(ctx context.Context, resource *domain.Resource, start, end time.Time, assigneeID int64) (bool, error) {
	return e.detector.IsAvailable(ctx, resource, start, end, assigneeID)
}

// CheckBuffered проверяет вместимость интервала, расширенного буферами ресурса:
// [start - buffer_before, end + buffer_after). Используется при создании брони,
// чтобы финальная проверка совпадала с проверкой при выдаче слотов.
func (e *Engine) CheckBuffered(ctx context.Context, resource *domain.Resource, start, end time.Time, assigneeID int64) (Decision, error) {
	if !start.Before(end) {
		// буферы не должны превращать пустой интервал в непустой
		return e.detector.Check(ctx, resource, start, end, assigneeID)
	}
	adjustedStart, adjustedEnd := BufferedRange(resource, start, end)
	return e.detector.Check(ctx, resource, adjustedStart, adjustedEnd, assigneeID)
}

// ValidateSlot проверяет, что start является слотом сетки на дату:
// дата открыта для бронирования, у ресурса есть расписание, время на сетке и не в перерыве.
// Вместимость не проверяется.
func (e *Engine) ValidateSlot(settings domain.Settings, resource *domain.Resource, date string, start types.TimeOfDay) (time.Time, error) {
	day, ok := e.ParseDate(date)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	if !e.gate.IsBookable(day, settings.FutureDaysLimit) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrDateNotBookable, date)
	}

	resolution := ResolveSchedule(resource, settings, day)
	if !resolution.IsOpen() {
		return time.Time{}, fmt.Errorf("%w: %s", ErrClosed, date)
	}

	breaks := e.breaks(settings)
	for _, candidate := range GenerateSlots(resolution.Window, settings.SlotIntervalMinutes, breaks) {
		if candidate == start {
			return day, nil
		}
	}

	if breaks.InBreak(start) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInBreak, start)
	}
	return time.Time{}, fmt.Errorf("%w: %s not in %s", ErrOffGrid, start, resolution.Window)
}

func (e *Engine) breaks(settings domain.Settings) BreakCalendar {
	calendar, rejected := ParseBreaks(settings.Breaks)
	if len(rejected) > 0 {
		e.logger.Warn("breaks: skipped malformed ranges %v", rejected)
	}
	return calendar
}
