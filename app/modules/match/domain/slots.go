package matchdomain

import (
	"fmt"
	"slices"
	"time"
)

const (
	// DateLayout is the calendar date format stored on matches.
	DateLayout = "2006-01-02"

	firstSlotHour = 8
	lastSlotHour  = 23
	slotLength    = 90 * time.Minute
)

// GenerateTimeSlots returns the bookable start times of a day: 90 minute
// sessions from 08:00 while the start hour is before 23:00.
func GenerateTimeSlots() []string {
	var slots []string
	start := time.Date(0, 1, 1, firstSlotHour, 0, 0, 0, time.UTC)
	for t := start; t.Hour() < lastSlotHour && t.Day() == start.Day(); t = t.Add(slotLength) {
		slots = append(slots, fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
	}
	return slots
}

// IsValidSlot reports whether startTime is one of the generated slots.
func IsValidSlot(startTime string) bool {
	return slices.Contains(GenerateTimeSlots(), startTime)
}

// ParseDate validates a YYYY-MM-DD calendar date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must use YYYY-MM-DD: %w", date, err)
	}
	return t, nil
}

// Today formats now as a calendar date in UTC.
func Today(now time.Time) string {
	return now.UTC().Format(DateLayout)
}
