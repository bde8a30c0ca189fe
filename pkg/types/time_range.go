package types

import (
	"fmt"
	"strings"
)

// TimeRange полуоткрытый интервал времени суток [Start, End)
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewTimeRange создает интервал, требуя Start < End
func NewTimeRange(start, end TimeOfDay) (TimeRange, error) {
	if !start.IsValid() || !end.IsValid() || !start.Before(end) {
		return TimeRange{}, fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, start, end)
	}
	return TimeRange{Start: start, End: end}, nil
}

// ParseTimeRange парсит строку формата HH:MM-HH:MM
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}

	start, err := ParseTimeOfDay(parts[0])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeRange, s, err)
	}
	end, err := ParseTimeOfDay(parts[1])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeRange, s, err)
	}

	return NewTimeRange(start, end)
}

// Contains возвращает true, если Start <= t < End
func (r TimeRange) Contains(t TimeOfDay) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// DurationMinutes длительность интервала в минутах
func (r TimeRange) DurationMinutes() int {
	return int(r.End - r.Start)
}

// String форматирует интервал как HH:MM-HH:MM
func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}
