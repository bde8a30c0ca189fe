package domain

import "time"

// Resource бронируемая услуга, опционально с выбором исполнителя.
// Значения хранятся как заданы, ограничения применяют методы Effective*.
type Resource struct {
	ID                  int64
	Name                string
	DurationMinutes     int
	Capacity            int
	BufferBeforeMinutes int
	BufferAfterMinutes  int
	UseGlobalSchedule   bool
	// ScheduleOverride сырые записи "HH:MM-HH:MM" по дням недели
	ScheduleOverride map[time.Weekday]string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveCapacity вместимость, ограниченная [MinCapacity, MaxCapacity]
func (r *Resource) EffectiveCapacity() int {
	return ClampInt(r.Capacity, MinCapacity, MaxCapacity)
}

// EffectiveBufferBefore буфер до начала, ограниченный [0, 240]
func (r *Resource) EffectiveBufferBefore() int {
	return ClampInt(r.BufferBeforeMinutes, MinBufferMinutes, MaxBufferMinutes)
}

// EffectiveBufferAfter буфер после окончания, ограниченный [0, 240]
func (r *Resource) EffectiveBufferAfter() int {
	return ClampInt(r.BufferAfterMinutes, MinBufferMinutes, MaxBufferMinutes)
}

// OverrideFor сырая запись переопределения на день недели
func (r *Resource) OverrideFor(day time.Weekday) (string, bool) {
	if r.UseGlobalSchedule || r.ScheduleOverride == nil {
		return "", false
	}
	entry, ok := r.ScheduleOverride[day]
	return entry, ok && entry != ""
}
