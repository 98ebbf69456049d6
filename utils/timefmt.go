package utils

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// TimeUnavailable is the fixed label shown whenever a stored time value
// cannot be interpreted. Formatting never surfaces an error past this
// package.
const TimeUnavailable = "Horário não disponível"

var displayLocation = loadDisplayLocation()

func loadDisplayLocation() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		// Containers without tzdata still get the right wall clock.
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}

var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseEntryTime interprets either a full ISO-8601 timestamp or a bare
// "HH:MM:SS" / "HH:MM" clock value. Bare clock values are combined with
// ref's calendar date in the display timezone.
func ParseEntryTime(raw string, ref time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("empty time value")
	}

	if strings.Contains(raw, "T") {
		for _, layout := range isoLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, nil
			}
		}
		return time.Time{}, errors.New("unrecognized timestamp format")
	}

	if strings.Contains(raw, ":") {
		parts := strings.Split(raw, ":")
		hour, err := strconv.Atoi(parts[0])
		if err != nil {
			return time.Time{}, errors.New("invalid hour")
		}
		minute, err := strconv.Atoi(parts[1])
		if err != nil {
			return time.Time{}, errors.New("invalid minute")
		}
		second := 0
		if len(parts) > 2 && parts[2] != "" {
			second, err = strconv.Atoi(parts[2])
			if err != nil {
				return time.Time{}, errors.New("invalid second")
			}
		}
		// The reference carries the entry's calendar date as stored;
		// converting it between zones first could slide it a day.
		y, m, d := ref.Date()
		return time.Date(y, m, d, hour, minute, second, 0, displayLocation), nil
	}

	return time.Time{}, errors.New("unrecognized time format")
}

// FormatEntryClock renders an entry's time value as "HH:MM" on the display
// timezone's wall clock, falling back to TimeUnavailable for anything
// unparsable. The projection into America/Sao_Paulo is the only offset
// applied; the legacy mobile client additionally subtracted a fixed three
// hours before formatting, which double-corrected and is not reproduced.
func FormatEntryClock(raw string, ref time.Time) string {
	t, err := ParseEntryTime(raw, ref)
	if err != nil {
		return TimeUnavailable
	}
	return t.In(displayLocation).Format("15:04")
}

// FormatEntryClockToday renders today's entries as "Hoje, HH:MM".
func FormatEntryClockToday(raw string) string {
	clock := FormatEntryClock(raw, time.Now())
	if clock == TimeUnavailable {
		return clock
	}
	return "Hoje, " + clock
}

// MealTypeLabel maps a stored meal type to its pt-BR display label.
func MealTypeLabel(mealType string) string {
	switch mealType {
	case "breakfast":
		return "Café da manhã"
	case "lunch":
		return "Almoço"
	case "dinner":
		return "Jantar"
	case "snack":
		return "Lanche"
	default:
		return "Refeição"
	}
}

// DisplayLocation exposes the fixed target timezone for callers that need
// "today" on the user-facing calendar.
func DisplayLocation() *time.Location { return displayLocation }
