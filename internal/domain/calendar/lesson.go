package calendar

import (
	"fmt"

	"github.com/edulog-app/edulog/internal/domain/shared"
)

// Lesson is a weekly scheduled lesson in the calendar. Lessons are
// identified by their description: two lessons with the same description
// are considered the same lesson even on different days or times.
type Lesson struct {
	description Description
	day         Day
	time        LessonTime
}

// NewLesson constructs a Lesson from pre-validated parts.
func NewLesson(description Description, day Day, time LessonTime) (*Lesson, error) {
	missing := func(field string) error {
		return shared.NewDomainError("calendar", "NewLesson", shared.ErrMissingArgument, field+" is required")
	}

	if description == "" {
		return nil, missing("description")
	}
	if day == "" {
		return nil, missing("day")
	}
	if time.IsZero() {
		return nil, missing("time")
	}

	return &Lesson{
		description: description,
		day:         day,
		time:        time,
	}, nil
}

// Description returns the lesson's description.
func (l *Lesson) Description() Description {
	return l.description
}

// Day returns the day of the week the lesson happens on.
func (l *Lesson) Day() Day {
	return l.day
}

// Time returns the lesson's start and end time.
func (l *Lesson) Time() LessonTime {
	return l.time
}

// IsSameLesson returns true if both lessons have the same description.
// This is the weaker notion of identity used for duplicate detection.
func (l *Lesson) IsSameLesson(other *Lesson) bool {
	if other == l {
		return true
	}
	return other != nil && other.description == l.description
}

// Equal returns true if both lessons have the same description, day and
// time.
func (l *Lesson) Equal(other *Lesson) bool {
	if other == l {
		return true
	}
	if other == nil {
		return false
	}
	return l.description == other.description &&
		l.day == other.day &&
		l.time.Equal(other.time)
}

// String returns a human-readable representation for display and logging.
func (l *Lesson) String() string {
	return fmt.Sprintf("%s: %s %s", l.description, l.day, l.time)
}
