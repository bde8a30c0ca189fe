package availability

import (
	"sort"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// BreakCalendar глобальные ежедневные перерывы, одинаковые для всех дней и ресурсов
type BreakCalendar struct {
	ranges []types.TimeRange
}

// ParseBreaks разбирает список диапазонов "HH:MM-HH:MM" через запятую.
// Некорректные диапазоны пропускаются и возвращаются в rejected, корректные сохраняются.
func ParseBreaks(raw string) (calendar BreakCalendar, rejected []string) {
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		r, err := types.ParseTimeRange(part)
		if err != nil {
			rejected = append(rejected, part)
			continue
		}
		calendar.ranges = append(calendar.ranges, r)
	}

	sort.Slice(calendar.ranges, func(i, j int) bool {
		if calendar.ranges[i].Start == calendar.ranges[j].Start {
			return calendar.ranges[i].End < calendar.ranges[j].End
		}
		return calendar.ranges[i].Start < calendar.ranges[j].Start
	})

	return calendar, rejected
}

// Breaks возвращает перерывы в порядке начала
func (c BreakCalendar) Breaks() []types.TimeRange {
	out := make([]types.TimeRange, len(c.ranges))
	copy(out, c.ranges)
	return out
}

// InBreak проверяет start <= t < end хотя бы для одного перерыва
func (c BreakCalendar) InBreak(t types.TimeOfDay) bool {
	for _, r := range c.ranges {
		if r.Contains(t) {
			return true
		}
	}
	return false
}
