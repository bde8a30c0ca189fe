package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestFromValues(t *testing.T) {
	settings := FromValues(map[string]string{
		"weekly_hours.1":        "09:00-18:00",
		"weekly_hours.6":        " 10:00-14:00 ",
		"weekly_hours.7":        "09:00-10:00",
		"weekly_hours.x":        "09:00-10:00",
		"breaks":                "13:00-14:00",
		"future_days_limit":     "30",
		"slot_interval_minutes": "fifteen",
		"unknown":               "ignored",
	})

	assert.Equal(t, "09:00-18:00", settings.WeeklyHours[1])
	assert.Equal(t, "10:00-14:00", settings.WeeklyHours[6])
	assert.Equal(t, "", settings.WeeklyHours[0])
	assert.Equal(t, "13:00-14:00", settings.Breaks)
	assert.Equal(t, 30, settings.FutureDaysLimit)
	assert.Equal(t, domain.DefaultSlotIntervalMinutes, settings.SlotIntervalMinutes)
}

func TestFromValues_Empty(t *testing.T) {
	assert.Equal(t, domain.DefaultSettings(), FromValues(nil))
}

func TestToValues_RoundTrip(t *testing.T) {
	original := domain.Settings{
		WeeklyHours:         [7]string{"", "09:00-18:00", "09:00-18:00", "", "", "", "10:00-14:00"},
		Breaks:              "13:00-14:00,16:00-16:15",
		FutureDaysLimit:     90,
		SlotIntervalMinutes: 15,
	}

	values := ToValues(original)
	require.Len(t, values, 10)
	assert.Equal(t, [2]string{"weekly_hours.0", ""}, values[0])
	assert.Equal(t, [2]string{"slot_interval_minutes", "15"}, values[9])

	m := make(map[string]string, len(values))
	for _, kv := range values {
		m[kv[0]] = kv[1]
	}
	assert.Equal(t, original, FromValues(m))
}
