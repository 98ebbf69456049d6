package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func refDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFormatEntryClockBareTime(t *testing.T) {
	// A stored "HH:MM:SS" already reflects the display wall clock, so it
	// must come back verbatim, minus seconds. No extra offset.
	assert.Equal(t, "13:05", FormatEntryClock("13:05:00", refDate("2024-03-10")))
	assert.Equal(t, "00:00", FormatEntryClock("00:00:00", refDate("2024-03-10")))
	assert.Equal(t, "09:30", FormatEntryClock("09:30", refDate("2024-03-10")))
}

func TestParseEntryTimeKeepsReferenceCalendarDate(t *testing.T) {
	// A UTC-midnight reference must not slide to the previous day when
	// the bare clock is pinned to the display zone.
	ref := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	got, err := ParseEntryTime("13:05:00", ref)
	assert.NoError(t, err)

	y, m, d := got.Date()
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.March, m)
	assert.Equal(t, 10, d)
}

func TestFormatEntryClockISO(t *testing.T) {
	// An explicit-offset timestamp is projected into América/São Paulo.
	assert.Equal(t, "13:05", FormatEntryClock("2024-03-10T13:05:00-03:00", refDate("2024-03-10")))
	assert.Equal(t, "10:05", FormatEntryClock("2024-03-10T13:05:00Z", refDate("2024-03-10")))
}

func TestFormatEntryClockFallback(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "aa:bb:cc", "2024-03-10Tgarbage"} {
		assert.Equal(t, TimeUnavailable, FormatEntryClock(raw, refDate("2024-03-10")), "input %q", raw)
	}
}

func TestFormatEntryClockToday(t *testing.T) {
	assert.Equal(t, "Hoje, 13:05", FormatEntryClockToday("13:05:00"))
	// The fallback label is never prefixed.
	assert.Equal(t, TimeUnavailable, FormatEntryClockToday("nope"))
}

func TestMealTypeLabel(t *testing.T) {
	assert.Equal(t, "Café da manhã", MealTypeLabel("breakfast"))
	assert.Equal(t, "Almoço", MealTypeLabel("lunch"))
	assert.Equal(t, "Jantar", MealTypeLabel("dinner"))
	assert.Equal(t, "Lanche", MealTypeLabel("snack"))
	assert.Equal(t, "Refeição", MealTypeLabel("brunch"))
}
