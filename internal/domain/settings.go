package domain

import "time"

// Settings неизменяемый снимок глобальных настроек бронирования.
// Строки хранятся как есть, разбор выполняет движок доступности.
type Settings struct {
	// WeeklyHours индекс - time.Weekday (0 = воскресенье), "" - выходной
	WeeklyHours [7]string `json:"weeklyHours"`
	// Breaks диапазоны "HH:MM-HH:MM" через запятую
	Breaks              string `json:"breaks"`
	FutureDaysLimit     int    `json:"futureDaysLimit"`
	SlotIntervalMinutes int    `json:"slotIntervalMinutes"`
}

// DefaultSettings настройки со всеми выходными днями и лимитами по умолчанию
func DefaultSettings() Settings {
	return Settings{
		FutureDaysLimit:     DefaultFutureDaysLimit,
		SlotIntervalMinutes: DefaultSlotIntervalMinutes,
	}
}

// WeeklyEntry сырая глобальная запись на день недели
func (s Settings) WeeklyEntry(day time.Weekday) string {
	if day < time.Sunday || day > time.Saturday {
		return ""
	}
	return s.WeeklyHours[day]
}

// EffectiveFutureDaysLimit горизонт бронирования, ограниченный [1, 365]
func (s Settings) EffectiveFutureDaysLimit() int {
	return ClampInt(s.FutureDaysLimit, MinFutureDaysLimit, MaxFutureDaysLimit)
}

// EffectiveSlotInterval шаг сетки, ограниченный [5, 120]
func (s Settings) EffectiveSlotInterval() int {
	return ClampInt(s.SlotIntervalMinutes, MinSlotIntervalMinutes, MaxSlotIntervalMinutes)
}
