package availability

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// GenerateSlots выдаёт open, open+interval, ... строго до close.
// Интервал ограничен [5, 120]. Кандидаты, начало которых попадает в перерыв,
// отбрасываются; остальная часть слота с перерывами не сверяется.
func GenerateSlots(window types.TimeRange, intervalMinutes int, breaks BreakCalendar) []types.TimeOfDay {
	interval := domain.ClampInt(intervalMinutes, domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes)

	slots := make([]types.TimeOfDay, 0, window.DurationMinutes()/interval+1)
	for t := window.Start; t.Before(window.End); t = t.AddMinutes(interval) {
		if breaks.InBreak(t) {
			continue
		}
		slots = append(slots, t)
	}
	return slots
}
