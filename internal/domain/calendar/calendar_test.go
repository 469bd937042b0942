package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/edulog-app/edulog/internal/domain/shared"
)

func TestNewDay_AcceptsFullNamesAndShorthands(t *testing.T) {
	tests := []struct {
		raw  string
		want Day
	}{
		{"Monday", "Monday"},
		{"monday", "Monday"},
		{"MON", "Monday"},
		{"fri", "Friday"},
		{"FRIDAY", "Friday"},
		{"Sun", "Sunday"},
	}
	for _, tc := range tests {
		day, err := NewDay(tc.raw)
		assert.NoError(t, err, "raw: %q", tc.raw)
		assert.Equal(t, tc.want, day, "raw: %q", tc.raw)
	}
}

func TestNewDay_RejectsInvalidInput(t *testing.T) {
	for _, raw := range []string{"", "Mondays", "fr", "holiday", "Mo nday", " mon"} {
		_, err := NewDay(raw)
		assert.ErrorIs(t, err, shared.ErrInvalidFormat, "raw: %q", raw)
	}
}

func TestDay_Weekday(t *testing.T) {
	day, err := NewDay("wed")
	assert.NoError(t, err)
	assert.Equal(t, time.Wednesday, day.Weekday())
}

func TestDescription_Predicates(t *testing.T) {
	assert.True(t, IsEmptyDescription(""))
	assert.False(t, IsEmptyDescription("a"))

	boundary := strings.Repeat("x", MaxDescriptionLength)
	assert.False(t, IsTooLongDescription(boundary))
	assert.True(t, IsTooLongDescription(boundary+"x"))
}

func TestNewDescription_DistinctFailureMessages(t *testing.T) {
	_, err := NewDescription("")
	assert.EqualError(t, err, "calendar.NewDescription: "+DescriptionEmpty)

	_, err = NewDescription(strings.Repeat("x", MaxDescriptionLength+1))
	assert.EqualError(t, err, "calendar.NewDescription: "+DescriptionTooLong)

	d, err := NewDescription("Sec 4 Physics")
	assert.NoError(t, err)
	assert.Equal(t, "Sec 4 Physics", d.String())
}

func TestIs24HFormat(t *testing.T) {
	valid := []string{"0000", "0900", "1200", "2359", "1830"}
	for _, s := range valid {
		assert.True(t, Is24HFormat(s), "expected valid time: %q", s)
	}

	invalid := []string{"", "2400", "1260", "12:00", "900", "09000", "12 00", "ab00"}
	for _, s := range invalid {
		assert.False(t, Is24HFormat(s), "expected invalid time: %q", s)
	}
}

func TestNewLessonTime_FormatCheckedBeforeRelation(t *testing.T) {
	// A malformed pair that is also "equal" must report the format failure,
	// never the relation failure.
	_, err := NewLessonTime("25:00", "25:00")
	assert.ErrorIs(t, err, shared.ErrInvalidFormat)
	assert.NotErrorIs(t, err, shared.ErrInvalidRelation)

	_, err = NewLessonTime("25:00", "1200")
	assert.ErrorIs(t, err, shared.ErrInvalidFormat)
}

func TestNewLessonTime_RejectsSameTime(t *testing.T) {
	_, err := NewLessonTime("1200", "1200")
	assert.ErrorIs(t, err, shared.ErrInvalidRelation)
	assert.NotErrorIs(t, err, shared.ErrInvalidFormat)
}

func TestNewLessonTime_StoresInputsVerbatim(t *testing.T) {
	lt, err := NewLessonTime("0900", "1100")
	assert.NoError(t, err)
	assert.Equal(t, "0900", lt.Start())
	assert.Equal(t, "1100", lt.End())
	assert.False(t, lt.SpansMidnight())
	assert.Equal(t, "0900-1100", lt.String())
}

func TestLessonTime_SpansMidnight(t *testing.T) {
	lt, err := NewLessonTime("2300", "0100")
	assert.NoError(t, err)
	assert.True(t, lt.SpansMidnight())
}

func newTestLesson(t *testing.T, description string) *Lesson {
	t.Helper()
	d, err := NewDescription(description)
	assert.NoError(t, err)
	day, err := NewDay("mon")
	assert.NoError(t, err)
	lt, err := NewLessonTime("1630", "1800")
	assert.NoError(t, err)
	lesson, err := NewLesson(d, day, lt)
	assert.NoError(t, err)
	return lesson
}

func TestNewLesson_RejectsMissingArguments(t *testing.T) {
	day, err := NewDay("mon")
	assert.NoError(t, err)
	lt, err := NewLessonTime("1630", "1800")
	assert.NoError(t, err)

	_, err = NewLesson("", day, lt)
	assert.ErrorIs(t, err, shared.ErrMissingArgument)
	_, err = NewLesson("Physics", "", lt)
	assert.ErrorIs(t, err, shared.ErrMissingArgument)
	_, err = NewLesson("Physics", day, LessonTime{})
	assert.ErrorIs(t, err, shared.ErrMissingArgument)
}

func TestLesson_IdentityByDescription(t *testing.T) {
	physics := newTestLesson(t, "Sec 4 Physics")
	other := newTestLesson(t, "Sec 4 Physics")
	maths := newTestLesson(t, "Sec 4 Maths")

	assert.True(t, physics.IsSameLesson(other))
	assert.True(t, physics.Equal(other))
	assert.False(t, physics.IsSameLesson(maths))
	assert.False(t, physics.IsSameLesson(nil))
}
