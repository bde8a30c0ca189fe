package models

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модели

// UpdateSettingsRequest запрос на обновление глобальных настроек.
// Все поля опциональны - обновляются только переданные значения.
type UpdateSettingsRequest struct {
	// WeeklyHours - ключ день недели 0..6 (0 = воскресенье), пустая строка = выходной
	WeeklyHours         map[int]string `json:"weeklyHours,omitempty"`
	Breaks              *string        `json:"breaks,omitempty"`
	FutureDaysLimit     *int           `json:"futureDaysLimit,omitempty"`
	SlotIntervalMinutes *int           `json:"slotIntervalMinutes,omitempty"`
}

// ApplyTo применяет обновления к снимку настроек.
// Дни вне диапазона 0..6 пропускаются: их отклоняет валидация сервиса.
func (r *UpdateSettingsRequest) ApplyTo(settings *domain.Settings) {
	for day, hours := range r.WeeklyHours {
		if day < 0 || day >= len(settings.WeeklyHours) {
			continue
		}
		settings.WeeklyHours[day] = hours
	}
	if r.Breaks != nil {
		settings.Breaks = *r.Breaks
	}
	if r.FutureDaysLimit != nil {
		settings.FutureDaysLimit = *r.FutureDaysLimit
	}
	if r.SlotIntervalMinutes != nil {
		settings.SlotIntervalMinutes = *r.SlotIntervalMinutes
	}
}

// Response модели

// SettingsResponse ответ с глобальными настройками
type SettingsResponse struct {
	WeeklyHours         map[string]string `json:"weeklyHours"` // "monday": "09:00-18:00", выходные опущены
	Breaks              string            `json:"breaks"`
	FutureDaysLimit     int               `json:"futureDaysLimit"`
	SlotIntervalMinutes int               `json:"slotIntervalMinutes"`
}

var weekdayKeys = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// FromDomainSettings конвертирует снимок в DTO.
// Лимиты показываются с учетом ограничений движка.
func FromDomainSettings(s domain.Settings) *SettingsResponse {
	resp := &SettingsResponse{
		WeeklyHours:         make(map[string]string),
		Breaks:              s.Breaks,
		FutureDaysLimit:     s.EffectiveFutureDaysLimit(),
		SlotIntervalMinutes: s.EffectiveSlotInterval(),
	}
	for day, hours := range s.WeeklyHours {
		if hours != "" {
			resp.WeeklyHours[weekdayKeys[day]] = hours
		}
	}
	return resp
}
