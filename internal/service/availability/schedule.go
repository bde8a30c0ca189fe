package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ScheduleSource источник рабочего окна на день
type ScheduleSource int

const (
	// SourceClosed на день нет пригодного расписания
	SourceClosed ScheduleSource = iota
	// SourceOverride собственная запись ресурса заменила глобальную
	SourceOverride
	// SourceGlobal действует глобальная запись на день недели
	SourceGlobal
)

// String возвращает имя источника для логов и ответов
func (s ScheduleSource) String() string {
	switch s {
	case SourceOverride:
		return "override"
	case SourceGlobal:
		return "global"
	default:
		return "closed"
	}
}

// Resolution результат выбора расписания на дату.
// Window имеет смысл только при Source != SourceClosed.
type Resolution struct {
	Source ScheduleSource
	Window types.TimeRange
}

// IsOpen возвращает true, если рабочее окно есть
func (r Resolution) IsOpen() bool {
	return r.Source != SourceClosed
}

// ResolveSchedule выбирает рабочее окно на дату.
// Корректная запись переопределения полностью заменяет глобальную на этот день недели.
// Некорректная или пустая запись считается отсутствующей (используется глобальная),
// день без пригодных записей закрыт.
func ResolveSchedule(resource *domain.Resource, settings domain.Settings, date time.Time) Resolution {
	if resource == nil || date.IsZero() {
		return Resolution{Source: SourceClosed}
	}

	day := date.Weekday()

	if entry, ok := resource.OverrideFor(day); ok {
		if window, err := types.ParseTimeRange(entry); err == nil {
			return Resolution{Source: SourceOverride, Window: window}
		}
	}

	if window, err := types.ParseTimeRange(settings.WeeklyEntry(day)); err == nil {
		return Resolution{Source: SourceGlobal, Window: window}
	}

	return Resolution{Source: SourceClosed}
}
