package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// SlotFilter оставляет кандидатов, у которых в расширенном буферами интервале есть свободное место
type SlotFilter struct {
	detector *ConflictDetector
	loc      *time.Location
}

// NewSlotFilter создает фильтр, размещающий кандидатов на дате в часовом поясе loc
func NewSlotFilter(detector *ConflictDetector, loc *time.Location) *SlotFilter {
	if loc == nil {
		loc = time.UTC
	}
	return &SlotFilter{detector: detector, loc: loc}
}

// BufferedInterval возвращает [start - buffer_before, start + duration + buffer_after).
// Буферы расширяют только кандидата, границы сохранённых бронирований не меняются.
func BufferedInterval(resource *domain.Resource, start time.Time, durationMinutes int) (time.Time, time.Time) {
	return BufferedRange(resource, start, start.Add(time.Duration(durationMinutes)*time.Minute))
}

// BufferedRange возвращает [start - buffer_before, end + buffer_after) для точных границ интервала
func BufferedRange(resource *domain.Resource, start, end time.Time) (time.Time, time.Time) {
	adjustedStart := start.Add(-time.Duration(resource.EffectiveBufferBefore()) * time.Minute)
	adjustedEnd := end.Add(time.Duration(resource.EffectiveBufferAfter()) * time.Minute)
	return adjustedStart, adjustedEnd
}

// Filter проверяет кандидатов по порядку и возвращает доступные в том же порядке.
// Первая ошибка хранилища прерывает фильтрацию.
func (f *SlotFilter) Filter(
	ctx context.Context,
	resource *domain.Resource,
	date time.Time,
	candidates []types.TimeOfDay,
	durationMinutes int,
	assigneeID int64,
) ([]domain.AvailableSlot, error) {
	slots := make([]domain.AvailableSlot, 0, len(candidates))
	if durationMinutes <= 0 {
		return slots, nil
	}

	for _, candidate := range candidates {
		start := candidate.On(date, f.loc)
		adjustedStart, adjustedEnd := BufferedInterval(resource, start, durationMinutes)

		decision, err := f.detector.Check(ctx, resource, adjustedStart, adjustedEnd, assigneeID)
		if err != nil {
			return nil, err
		}
		if !decision.Available {
			continue
		}

		slots = append(slots, domain.AvailableSlot{
			StartTime:       candidate,
			DurationMinutes: durationMinutes,
			AvailableSpots:  decision.FreeSpots(),
			TotalSpots:      decision.Capacity,
		})
	}

	return slots, nil
}
