package availability

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// понедельник 2026-03-02, "сегодня" во всех тестах пакета
var monday = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

// memoryStore считает бронирования так же, как SQL репозиторий
type memoryStore struct {
	mu           sync.Mutex
	reservations []*domain.Reservation
	err          error
	calls        int
}

func (s *memoryStore) add(resourceID int64, assigneeID int64, start, end time.Time, status domain.ReservationStatus) *domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := &domain.Reservation{
		ID:         int64(len(s.reservations) + 1),
		ResourceID: resourceID,
		StartAt:    start,
		EndAt:      end,
		Status:     status,
	}
	if assigneeID > 0 {
		r.AssigneeID = ptr.Ptr(assigneeID)
	}
	s.reservations = append(s.reservations, r)
	return r
}

func (s *memoryStore) CountOverlapping(_ context.Context, scope domain.CapacityScope, start, end time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if s.err != nil {
		return 0, s.err
	}

	count := 0
	for _, r := range s.reservations {
		if scope.Matches(r) && r.CountsAgainstCapacity() && r.Overlaps(start, end) {
			count++
		}
	}
	return count, nil
}

type blockedDates map[string]bool

func (b blockedDates) IsBlocked(date time.Time) bool {
	return b[date.Format(domain.DateFormat)]
}

type recordingMetrics struct {
	checks map[string]int
	slots  []int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{checks: map[string]int{}}
}

func (m *recordingMetrics) ObserveAvailabilityCheck(result string) { m.checks[result]++ }
func (m *recordingMetrics) ObserveSlotsReturned(count int)         { m.slots = append(m.slots, count) }

var _ MetricsRecorder = (*metrics.Metrics)(nil)

func clock(hour, minute int, date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC)
}

func newTestEngine(store ReservationCounter, blackouts BlackoutCalendar) *Engine {
	return NewEngine(store, blackouts, time.UTC, nil, logger.Nop()).
		WithTimeProvider(fixedTime{now: clock(8, 0, monday)})
}

func weekdaySettings(hours string) domain.Settings {
	settings := domain.DefaultSettings()
	for day := time.Monday; day <= time.Friday; day++ {
		settings.WeeklyHours[day] = hours
	}
	return settings
}
