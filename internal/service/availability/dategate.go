package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// DateGate решает, открыта ли календарная дата для бронирования
type DateGate struct {
	loc          *time.Location
	timeProvider TimeProvider
	blackouts    BlackoutCalendar
}

// NewDateGate создает проверку, считающую "сегодня" в часовом поясе loc
func NewDateGate(loc *time.Location, timeProvider TimeProvider, blackouts BlackoutCalendar) *DateGate {
	if loc == nil {
		loc = time.UTC
	}
	if blackouts == nil {
		blackouts = noBlackouts{}
	}
	return &DateGate{loc: loc, timeProvider: timeProvider, blackouts: blackouts}
}

// IsBookable возвращает false для дат раньше сегодняшней, дальше futureDaysLimit дней
// от сегодня (лимит ограничен [1, 365]) и для дат из календаря блэкаутов.
func (g *DateGate) IsBookable(date time.Time, futureDaysLimit int) bool {
	if date.IsZero() {
		return false
	}

	limit := domain.ClampInt(futureDaysLimit, domain.MinFutureDaysLimit, domain.MaxFutureDaysLimit)
	days := daysBetween(g.Today(), date)

	if days < 0 || days > limit {
		return false
	}
	return !g.blackouts.IsBlocked(date)
}

// Today возвращает текущую календарную дату в часовом поясе проверки
func (g *DateGate) Today() time.Time {
	now := g.timeProvider.Now().In(g.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, g.loc)
}

// daysBetween считает календарные дни от a до b без учёта времени суток и перевода часов
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
