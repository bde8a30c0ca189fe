package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func slotTimes(slots []domain.AvailableSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime.String()
	}
	return out
}

func TestAvailableSlots_BufferAfterScenario(t *testing.T) {
	store := &memoryStore{}
	engine := newTestEngine(store, nil)

	settings := weekdaySettings("09:00-12:00")
	settings.SlotIntervalMinutes = 15
	resource := &domain.Resource{ID: 1, DurationMinutes: 30, Capacity: 1, BufferAfterMinutes: 15, UseGlobalSchedule: true}
	store.add(1, 0, clock(9, 30, monday), clock(10, 0, monday), domain.StatusConfirmed)

	slots, err := engine.AvailableSlots(context.Background(), settings, resource, "2026-03-02", 30, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"10:00", "10:15", "10:30", "10:45",
		"11:00", "11:15", "11:30", "11:45",
	}, slotTimes(slots))
	assert.Equal(t, 1, slots[0].TotalSpots)
	assert.Equal(t, 1, slots[0].AvailableSpots)
	assert.Equal(t, 30, slots[0].DurationMinutes)
}

func TestAvailableSlots_BufferIsOneSided(t *testing.T) {
	store := &memoryStore{}
	engine := newTestEngine(store, nil)

	settings := weekdaySettings("09:00-12:00")
	settings.SlotIntervalMinutes = 30
	resource := &domain.Resource{ID: 1, Capacity: 1, BufferBeforeMinutes: 30, UseGlobalSchedule: true}
	store.add(1, 0, clock(10, 0, monday), clock(10, 30, monday), domain.StatusConfirmed)

	slots, err := engine.AvailableSlots(context.Background(), settings, resource, "2026-03-02", 30, 0)
	require.NoError(t, err)

	// 09:30 заканчивается ровно в начале брони: сохранённая бронь буфером не расширяется.
	// 10:30 попадает в неё собственным буфером.
	assert.Equal(t, []string{"09:00", "09:30", "11:00", "11:30"}, slotTimes(slots))
}

func TestAvailableSlots_CapacityReportsFreeSpots(t *testing.T) {
	store := &memoryStore{}
	engine := newTestEngine(store, nil)

	settings := weekdaySettings("09:00-11:00")
	settings.SlotIntervalMinutes = 60
	resource := &domain.Resource{ID: 1, Capacity: 3, UseGlobalSchedule: true}
	store.add(1, 0, clock(9, 0, monday), clock(10, 0, monday), domain.StatusConfirmed)
	store.add(1, 0, clock(9, 0, monday), clock(10, 0, monday), domain.StatusCancelled)

	slots, err := engine.AvailableSlots(context.Background(), settings, resource, "2026-03-02", 60, 0)
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, 2, slots[0].AvailableSpots)
	assert.Equal(t, 3, slots[1].AvailableSpots)
	assert.False(t, slots[0].IsFullyAvailable())
	assert.True(t, slots[1].IsFullyAvailable())
}

func TestAvailableSlots_BreaksAndOverride(t *testing.T) {
	engine := newTestEngine(&memoryStore{}, nil)

	settings := weekdaySettings("09:00-17:00")
	settings.Breaks = "12:00-13:00, broken"
	settings.SlotIntervalMinutes = 15
	resource := &domain.Resource{ID: 1, Capacity: 1, ScheduleOverride: map[time.Weekday]string{
		time.Monday: "11:30-13:30",
	}}

	slots, err := engine.AvailableSlots(context.Background(), settings, resource, "2026-03-02", 15, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"11:30", "11:45", "13:00", "13:15"}, slotTimes(slots))
}

func TestAvailableSlots_Horizon(t *testing.T) {
	engine := newTestEngine(&memoryStore{}, nil)

	settings := domain.DefaultSettings()
	for day := range settings.WeeklyHours {
		settings.WeeklyHours[day] = "09:00-10:00"
	}
	resource := &domain.Resource{ID: 1, Capacity: 1, UseGlobalSchedule: true}

	within, err := engine.AvailableSlots(context.Background(), settings, resource,
		monday.AddDate(0, 0, 60).Format(domain.DateFormat), 30, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, within)

	beyond, err := engine.AvailableSlots(context.Background(), settings, resource,
		monday.AddDate(0, 0, 61).Format(domain.DateFormat), 30, 0)
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestAvailableSlots_FailsClosed(t *testing.T) {
	store := &memoryStore{}
	engine := newTestEngine(store, blockedDates{"2026-03-03": true})
	settings := weekdaySettings("09:00-12:00")
	resource := &domain.Resource{ID: 1, Capacity: 1, UseGlobalSchedule: true}

	tests := []struct {
		name     string
		date     string
		duration int
	}{
		{name: "malformed date", date: "02.03.2026", duration: 30},
		{name: "impossible date", date: "2026-02-30", duration: 30},
		{name: "zero duration", date: "2026-03-02", duration: 0},
		{name: "negative duration", date: "2026-03-02", duration: -15},
		{name: "past date", date: "2026-03-01", duration: 30},
		{name: "blackout", date: "2026-03-03", duration: 30},
		{name: "closed weekday", date: "2026-03-07", duration: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := engine.AvailableSlots(context.Background(), settings, resource, tt.date, tt.duration, 0)
			require.NoError(t, err)
			assert.NotNil(t, slots)
			assert.Empty(t, slots)
		})
	}
	assert.Zero(t, store.calls)
}

func TestAvailableSlots_StorageErrorIsNotZeroOverlaps(t *testing.T) {
	storageErr := errors.New("deadline exceeded")
	engine := newTestEngine(&memoryStore{err: storageErr}, nil)

	slots, err := engine.AvailableSlots(context.Background(), weekdaySettings("09:00-12:00"),
		&domain.Resource{ID: 1, Capacity: 1, UseGlobalSchedule: true}, "2026-03-02", 30, 0)

	assert.Nil(t, slots)
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, storageErr)
}

func TestAvailableSlots_PerAgentCapacity(t *testing.T) {
	store := &memoryStore{}
	engine := newTestEngine(store, nil)
	settings := weekdaySettings("10:00-11:00")
	settings.SlotIntervalMinutes = 60
	resource := &domain.Resource{ID: 1, Capacity: 1, UseGlobalSchedule: true}
	store.add(1, 7, clock(10, 0, monday), clock(11, 0, monday), domain.StatusConfirmed)

	pooled, err := engine.AvailableSlots(context.Background(), settings, resource, "2026-03-02", 60, 0)
	require.NoError(t, err)
	assert.Empty(t, pooled)

	otherAgent, err := engine.AvailableSlots(context.Background(), settings, resource, "2026-03-02", 60, 8)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00"}, slotTimes(otherAgent))
}

func TestAvailableSlots_RecordsMetrics(t *testing.T) {
	recorder := newRecordingMetrics()
	engine := NewEngine(&memoryStore{}, nil, time.UTC, recorder, logger.Nop()).
		WithTimeProvider(fixedTime{now: monday})
	settings := weekdaySettings("09:00-10:00")

	slots, err := engine.AvailableSlots(context.Background(), settings,
		&domain.Resource{ID: 1, Capacity: 1, UseGlobalSchedule: true}, "2026-03-02", 30, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{len(slots)}, recorder.slots)
	assert.Equal(t, 2, recorder.checks["available"])
}

func TestEngine_CheckBuffered(t *testing.T) {
	store := &memoryStore{}
	engine := newTestEngine(store, nil)
	resource := &domain.Resource{ID: 1, Capacity: 1, BufferAfterMinutes: 15}
	store.add(1, 0, clock(9, 30, monday), clock(10, 0, monday), domain.StatusConfirmed)

	plain, err := engine.Check(context.Background(), resource, clock(9, 0, monday), clock(9, 30, monday), 0)
	require.NoError(t, err)
	assert.True(t, plain.Available)

	buffered, err := engine.CheckBuffered(context.Background(), resource, clock(9, 0, monday), clock(9, 30, monday), 0)
	require.NoError(t, err)
	assert.False(t, buffered.Available)
	assert.Equal(t, 1, buffered.Overlapping)

	available, err := engine.IsAvailable(context.Background(), resource, clock(10, 0, monday), clock(10, 30, monday), 0)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestEngine_CheckBuffered_InvertedIntervalStaysUnavailable(t *testing.T) {
	store := &memoryStore{}
	engine := newTestEngine(store, nil)
	resource := &domain.Resource{ID: 1, Capacity: 3, BufferBeforeMinutes: 60, BufferAfterMinutes: 60}

	decision, err := engine.CheckBuffered(context.Background(), resource, clock(10, 0, monday), clock(9, 50, monday), 0)
	require.NoError(t, err)

	assert.False(t, decision.Available)
	assert.Equal(t, 3, decision.Capacity)
	assert.Zero(t, store.calls)
}

func TestEngine_ValidateSlot(t *testing.T) {
	engine := newTestEngine(&memoryStore{}, nil)
	settings := weekdaySettings("09:00-17:00")
	settings.Breaks = "12:00-13:00"
	resource := &domain.Resource{ID: 1, Capacity: 1, UseGlobalSchedule: true}

	tests := []struct {
		name    string
		date    string
		start   types.TimeOfDay
		wantErr error
	}{
		{name: "on grid", date: "2026-03-02", start: types.MustTimeOfDay(9, 30)},
		{name: "off grid", date: "2026-03-02", start: types.MustTimeOfDay(9, 10), wantErr: ErrOffGrid},
		{name: "at close", date: "2026-03-02", start: types.MustTimeOfDay(17, 0), wantErr: ErrOffGrid},
		{name: "in break", date: "2026-03-02", start: types.MustTimeOfDay(12, 0), wantErr: ErrInBreak},
		{name: "closed day", date: "2026-03-08", start: types.MustTimeOfDay(10, 0), wantErr: ErrClosed},
		{name: "beyond horizon", date: "2026-06-01", start: types.MustTimeOfDay(10, 0), wantErr: ErrDateNotBookable},
		{name: "invalid date", date: "2026-13-01", start: types.MustTimeOfDay(10, 0), wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := engine.ValidateSlot(settings, resource, tt.date, tt.start)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.date, day.Format(domain.DateFormat))
		})
	}
}

func TestEngine_ParseDateUsesLocation(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)
	engine := NewEngine(&memoryStore{}, nil, moscow, nil, logger.Nop())

	day, ok := engine.ParseDate("2026-03-02")
	require.True(t, ok)
	assert.Equal(t, moscow, day.Location())
	assert.Equal(t, moscow, engine.Location())

	_, ok = engine.ParseDate("")
	assert.False(t, ok)
}

func TestAvailableSlots_DSTDayKeepsWallClock(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2026-03-08 - переход на летнее время в America/New_York
	day := time.Date(2026, time.March, 8, 0, 0, 0, 0, ny)
	at := func(hour, minute int) time.Time {
		return time.Date(2026, time.March, 8, hour, minute, 0, 0, ny)
	}

	store := &memoryStore{}
	engine := NewEngine(store, nil, ny, nil, logger.Nop()).
		WithTimeProvider(fixedTime{now: at(8, 0)})

	settings := domain.DefaultSettings()
	settings.WeeklyHours[time.Sunday] = "09:00-11:00"
	settings.SlotIntervalMinutes = 30
	resource := &domain.Resource{ID: 1, Capacity: 1, UseGlobalSchedule: true}
	store.add(1, 0, at(9, 0), at(9, 30), domain.StatusConfirmed)

	slots, err := engine.AvailableSlots(context.Background(), settings, resource, day.Format(domain.DateFormat), 30, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:30", "10:00", "10:30"}, slotTimes(slots))

	decision, err := engine.CheckBuffered(context.Background(), resource,
		types.MustTimeOfDay(9, 0).On(day, ny), types.MustTimeOfDay(9, 30).On(day, ny), 0)
	require.NoError(t, err)
	assert.False(t, decision.Available)
}

func TestEngine_CheckBuffered_KeepsSubMinuteEnd(t *testing.T) {
	store := &memoryStore{}
	engine := newTestEngine(store, nil)
	resource := &domain.Resource{ID: 1, Capacity: 1}
	store.add(1, 0, clock(9, 1, monday), clock(9, 30, monday), domain.StatusConfirmed)

	start := clock(9, 0, monday)
	decision, err := engine.CheckBuffered(context.Background(), resource, start, start.Add(90*time.Second), 0)
	require.NoError(t, err)

	assert.False(t, decision.Available)
	assert.Equal(t, 1, decision.Overlapping)
}
