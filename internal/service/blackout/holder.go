package blackout

import (
	"sync/atomic"
	"time"
)

// Holder хранит актуальный календарь и подменяет его при перезагрузке файла.
// Реализует предикат закрытых дат для движка доступности.
type Holder struct {
	current atomic.Pointer[Calendar]
}

// NewHolder создает holder с начальным календарём (nil означает "нет блэкаутов")
func NewHolder(initial *Calendar) *Holder {
	h := &Holder{}
	h.Store(initial)
	return h
}

// Store атомарно заменяет календарь
func (h *Holder) Store(c *Calendar) {
	if c == nil {
		c = NewCalendar()
	}
	h.current.Store(c)
}

// Current возвращает текущий календарь
func (h *Holder) Current() *Calendar {
	return h.current.Load()
}

// IsBlocked проверяет дату по текущему календарю
func (h *Holder) IsBlocked(date time.Time) bool {
	return h.Current().IsBlocked(date)
}
