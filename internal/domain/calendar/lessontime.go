package calendar

import (
	"regexp"

	"github.com/edulog-app/edulog/internal/domain/shared"
)

// Failure messages for lesson times. Per-field format violations and the
// joint same-time violation get distinct messages.
const (
	Not24HFormat = "Times should be in the 24-hour format HHMM without spaces, e.g. 0900 or 2359"
	NoSameTime   = "The start time and end time of a lesson cannot be the same"
)

var lessonTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3])[0-5][0-9]$`)

// Is24HFormat reports whether the raw string is a 24-hour "HHMM" time.
func Is24HFormat(raw string) bool {
	return lessonTimeRegex.MatchString(raw)
}

// IsValidTimePair reports whether two individually valid times satisfy the
// joint constraint: a lesson cannot start and end at the same instant. A
// start later than the end is allowed and means the lesson runs past
// midnight.
func IsValidTimePair(start, end string) bool {
	return start != end
}

// LessonTime is the start and end of a lesson, both stored in the 24-hour
// "HHMM" form they were entered in.
type LessonTime struct {
	start string
	end   string
}

// NewLessonTime creates a LessonTime from two already-trimmed "HHMM"
// strings. Each field is checked for format first; only then is the joint
// constraint checked, so a format failure is never reported as a relation
// failure.
func NewLessonTime(start, end string) (LessonTime, error) {
	if !Is24HFormat(start) || !Is24HFormat(end) {
		return LessonTime{}, shared.NewDomainError("calendar", "NewLessonTime", shared.ErrInvalidFormat, Not24HFormat)
	}
	if !IsValidTimePair(start, end) {
		return LessonTime{}, shared.NewDomainError("calendar", "NewLessonTime", shared.ErrInvalidRelation, NoSameTime)
	}
	return LessonTime{start: start, end: end}, nil
}

// Start returns the start time in "HHMM" form.
func (t LessonTime) Start() string {
	return t.start
}

// End returns the end time in "HHMM" form.
func (t LessonTime) End() string {
	return t.end
}

// IsZero reports whether the LessonTime was never constructed.
func (t LessonTime) IsZero() bool {
	return t.start == "" && t.end == ""
}

// SpansMidnight reports whether the lesson runs past midnight.
// Lexicographic comparison is exact for fixed-width HHMM strings.
func (t LessonTime) SpansMidnight() bool {
	return t.end < t.start
}

// Equal reports whether both lesson times have the same start and end.
func (t LessonTime) Equal(other LessonTime) bool {
	return t.start == other.start && t.end == other.end
}

// String returns the time range for display, e.g. "0900-1100".
func (t LessonTime) String() string {
	return t.start + "-" + t.end
}
