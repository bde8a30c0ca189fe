package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidTimeOfDay возвращается при некорректном формате времени (ожидается HH:MM)
	ErrInvalidTimeOfDay = errors.New("types: invalid time of day, expected HH:MM")

	// ErrInvalidTimeRange возвращается при некорректном диапазоне (ожидается HH:MM-HH:MM, start < end)
	ErrInvalidTimeRange = errors.New("types: invalid time range, expected HH:MM-HH:MM")
)

// TimeOfDay время суток в минутах от полуночи.
// Допустимые значения: [0, MinutesPerDay). Значение вне диапазона получается
// только через AddMinutes и не является валидным временем суток.
type TimeOfDay int

// NewTimeOfDay создает время суток из часов и минут
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeOfDay, hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// MustTimeOfDay аналог NewTimeOfDay, паникует при ошибке (для констант и тестов)
func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay парсит строку строго в формате HH:MM (две цифры часов, две цифры минут)
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	hour, err := parseTwoDigits(s[:2])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	minute, err := parseTwoDigits(s[3:])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	return NewTimeOfDay(hour, minute)
}

// TimeOfDayFromTime возвращает время суток для момента времени в его локации
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func parseTwoDigits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidTimeOfDay
		}
	}
	return strconv.Atoi(s)
}

// Hour возвращает часы
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute возвращает минуты
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// Minutes возвращает количество минут от полуночи
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// IsValid проверяет, что значение лежит в пределах суток
func (t TimeOfDay) IsValid() bool {
	return t >= 0 && t < MinutesPerDay
}

// AddMinutes сдвигает время на n минут без заворачивания через полночь
func (t TimeOfDay) AddMinutes(n int) TimeOfDay {
	return t + TimeOfDay(n)
}

// Before возвращает true, если t строго раньше other
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// After возвращает true, если t строго позже other
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

// On возвращает абсолютный момент времени для даты date в локации loc.
// Используются только год, месяц и день из date. Время собирается по показаниям
// настенных часов, поэтому в дни перехода на летнее/зимнее время 10:00 остаётся 10:00.
// Несуществующее время (внутри пропущенного часа) нормализуется по правилам time.Date.
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)
}

// String форматирует время как HH:MM
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalText реализует encoding.TextMarshaler
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler
func (t *TimeOfDay) UnmarshalText(data []byte) error {
	parsed, err := ParseTimeOfDay(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
