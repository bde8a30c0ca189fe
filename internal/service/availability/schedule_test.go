package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestResolveSchedule(t *testing.T) {
	settings := weekdaySettings("09:00-17:00")
	settings.WeeklyHours[time.Wednesday] = "9-17"

	tests := []struct {
		name       string
		resource   domain.Resource
		date       time.Time
		wantSource ScheduleSource
		wantWindow string
	}{
		{
			name:       "global schedule",
			resource:   domain.Resource{ID: 1, UseGlobalSchedule: true},
			date:       monday,
			wantSource: SourceGlobal,
			wantWindow: "09:00-17:00",
		},
		{
			name: "override replaces global for its weekday",
			resource: domain.Resource{ID: 1, ScheduleOverride: map[time.Weekday]string{
				time.Monday: "10:00-14:00",
			}},
			date:       monday,
			wantSource: SourceOverride,
			wantWindow: "10:00-14:00",
		},
		{
			name: "override for another weekday falls back to global",
			resource: domain.Resource{ID: 1, ScheduleOverride: map[time.Weekday]string{
				time.Tuesday: "10:00-14:00",
			}},
			date:       monday,
			wantSource: SourceGlobal,
			wantWindow: "09:00-17:00",
		},
		{
			name: "malformed override treated as absent",
			resource: domain.Resource{ID: 1, ScheduleOverride: map[time.Weekday]string{
				time.Monday: "10:00 14:00",
			}},
			date:       monday,
			wantSource: SourceGlobal,
			wantWindow: "09:00-17:00",
		},
		{
			name: "use global schedule ignores override",
			resource: domain.Resource{ID: 1, UseGlobalSchedule: true, ScheduleOverride: map[time.Weekday]string{
				time.Monday: "10:00-14:00",
			}},
			date:       monday,
			wantSource: SourceGlobal,
			wantWindow: "09:00-17:00",
		},
		{
			name: "override opens a day closed globally",
			resource: domain.Resource{ID: 1, ScheduleOverride: map[time.Weekday]string{
				time.Sunday: "11:00-15:00",
			}},
			date:       monday.AddDate(0, 0, 6),
			wantSource: SourceOverride,
			wantWindow: "11:00-15:00",
		},
		{
			name:       "no entry is closed",
			resource:   domain.Resource{ID: 1},
			date:       monday.AddDate(0, 0, 5),
			wantSource: SourceClosed,
		},
		{
			name:       "malformed global entry is closed",
			resource:   domain.Resource{ID: 1},
			date:       monday.AddDate(0, 0, 2),
			wantSource: SourceClosed,
		},
		{
			name: "inverted override and missing global is closed",
			resource: domain.Resource{ID: 1, ScheduleOverride: map[time.Weekday]string{
				time.Saturday: "18:00-10:00",
			}},
			date:       monday.AddDate(0, 0, 5),
			wantSource: SourceClosed,
		},
		{
			name:       "zero date is closed",
			resource:   domain.Resource{ID: 1},
			date:       time.Time{},
			wantSource: SourceClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSchedule(&tt.resource, settings, tt.date)

			assert.Equal(t, tt.wantSource, got.Source)
			assert.Equal(t, tt.wantSource != SourceClosed, got.IsOpen())
			if tt.wantWindow != "" {
				assert.Equal(t, tt.wantWindow, got.Window.String())
			}
		})
	}
}

func TestScheduleSource_String(t *testing.T) {
	assert.Equal(t, "override", SourceOverride.String())
	assert.Equal(t, "global", SourceGlobal.String())
	assert.Equal(t, "closed", SourceClosed.String())
}
