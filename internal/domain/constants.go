package domain

// Значения настроек по умолчанию
const (
	DefaultFutureDaysLimit     = 60
	DefaultSlotIntervalMinutes = 30
	DefaultCapacity            = 1
)

// Границы для настроек, прочитанных из хранилища.
// Значения вне диапазона ограничиваются, а не отклоняются.
const (
	MinCapacity            = 1
	MaxCapacity            = 50
	MinBufferMinutes       = 0
	MaxBufferMinutes       = 240
	MinSlotIntervalMinutes = 5
	MaxSlotIntervalMinutes = 120
	MinFutureDaysLimit     = 1
	MaxFutureDaysLimit     = 365
)

// Константы бизнес-валидации
const (
	MaxDurationMinutes          = 24 * 60
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ClampInt ограничивает v диапазоном [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
