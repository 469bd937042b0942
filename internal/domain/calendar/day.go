// Package calendar contains the lesson scheduling domain model for EduLog:
// days of the week, lesson descriptions, lesson times, and the Lesson
// entity itself.
package calendar

import (
	"strings"
	"time"

	"github.com/edulog-app/edulog/internal/domain/shared"
)

// InvalidDayOfWeek is shown to the user when a day fails validation.
const InvalidDayOfWeek = "Day should be a valid day of the week, spelt in full or as a 3-letter shorthand, e.g. Monday, fri"

// Day represents a day of the week a lesson happens on. It is stored as the
// canonical full English name, e.g. "Monday".
type Day string

var daysOfWeek = map[string]time.Weekday{
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
}

// IsValidDayOfWeek reports whether the raw string spells a day of the week
// in full or as its 3-letter shorthand, in any letter case.
func IsValidDayOfWeek(raw string) bool {
	_, ok := daysOfWeek[strings.ToLower(raw)]
	return ok
}

// NewDay creates a Day from raw input. The stored value is canonical
// regardless of the case or shorthand used, so "fri" and "FRIDAY" compare
// equal.
func NewDay(raw string) (Day, error) {
	weekday, ok := daysOfWeek[strings.ToLower(raw)]
	if !ok {
		return "", shared.NewDomainError("calendar", "NewDay", shared.ErrInvalidFormat, InvalidDayOfWeek)
	}
	return Day(weekday.String()), nil
}

// IsValid checks if the day holds a canonical day name.
func (d Day) IsValid() bool {
	weekday, ok := daysOfWeek[strings.ToLower(string(d))]
	return ok && string(d) == weekday.String()
}

// Weekday returns the underlying time.Weekday.
func (d Day) Weekday() time.Weekday {
	return daysOfWeek[strings.ToLower(string(d))]
}

// String returns the full English day name.
func (d Day) String() string {
	return string(d)
}
