package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edulog-app/edulog/internal/domain/calendar"
	"github.com/edulog-app/edulog/internal/domain/shared"
	"github.com/edulog-app/edulog/internal/domain/student"
)

func TestParseIndex(t *testing.T) {
	index, err := ParseIndex("1")
	assert.NoError(t, err)
	assert.Equal(t, 1, index.OneBased())
	assert.Equal(t, 0, index.ZeroBased())

	index, err = ParseIndex("  10  ")
	assert.NoError(t, err)
	assert.Equal(t, 10, index.OneBased())

	for _, raw := range []string{"0", "-1", "1.5", "abc", "", " ", "+1", "9999999999999999999999"} {
		_, err := ParseIndex(raw)
		assert.EqualError(t, err, InvalidIndexMessage, "raw: %q", raw)
	}
}

func TestParseName(t *testing.T) {
	name, err := ParseName("  John Doe  ")
	assert.NoError(t, err)
	assert.Equal(t, student.Name("John Doe"), name)

	_, err = ParseName("Jo@hn")
	assert.EqualError(t, err, student.NameConstraints)
	assert.ErrorIs(t, err, shared.ErrInvalidFormat)
}

func TestParsePhone(t *testing.T) {
	phone, err := ParsePhone(" 98765432 ")
	assert.NoError(t, err)
	assert.Equal(t, student.Phone("98765432"), phone)

	_, err = ParsePhone("12")
	assert.EqualError(t, err, student.PhoneConstraints)
}

func TestParseAddress(t *testing.T) {
	address, err := ParseAddress(" 311 Clementi Ave 2 ")
	assert.NoError(t, err)
	assert.Equal(t, student.Address("311 Clementi Ave 2"), address)

	_, err = ParseAddress("   ")
	assert.EqualError(t, err, student.AddressConstraints)
}

func TestParseEmail(t *testing.T) {
	email, err := ParseEmail(" johnd@example.com ")
	assert.NoError(t, err)
	assert.Equal(t, student.Email("johnd@example.com"), email)

	_, err = ParseEmail("not-an-email")
	assert.EqualError(t, err, student.EmailConstraints)
}

func TestParseTag(t *testing.T) {
	tag, err := ParseTag(" beginner ")
	assert.NoError(t, err)
	assert.Equal(t, student.Tag("beginner"), tag)

	_, err = ParseTag("owes fees")
	assert.EqualError(t, err, student.TagConstraints)
}

func TestParseTags_CollapsesDuplicates(t *testing.T) {
	tags, err := ParseTags([]string{"maths", " maths ", "physics"})
	assert.NoError(t, err)
	assert.Equal(t, 2, tags.Len())
	assert.True(t, tags.Contains("maths"))
	assert.True(t, tags.Contains("physics"))

	_, err = ParseTags([]string{"maths", "not ok"})
	assert.EqualError(t, err, student.TagConstraints)

	empty, err := ParseTags(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestParseDescription(t *testing.T) {
	d, err := ParseDescription("  Sec 4 Physics  ")
	assert.NoError(t, err)
	assert.Equal(t, calendar.Description("Sec 4 Physics"), d)

	// Any 1..100 character trimmed string is accepted.
	d, err = ParseDescription(strings.Repeat("x", 100))
	assert.NoError(t, err)
	assert.Len(t, d.String(), 100)

	_, err = ParseDescription("   ")
	assert.EqualError(t, err, calendar.DescriptionEmpty)

	_, err = ParseDescription(strings.Repeat("x", 101))
	assert.EqualError(t, err, calendar.DescriptionTooLong)
}

func TestParseFee(t *testing.T) {
	fee, err := ParseFee("150")
	assert.NoError(t, err)
	assert.Equal(t, 150, fee.Int())

	_, err = ParseFee("-1")
	assert.EqualError(t, err, student.FeeConstraints)

	// Fees are checked as entered, without trimming.
	_, err = ParseFee(" 150")
	assert.EqualError(t, err, student.FeeConstraints)
}

func TestParseDayOfWeek(t *testing.T) {
	day, err := ParseDayOfWeek("fri")
	assert.NoError(t, err)
	assert.Equal(t, calendar.Day("Friday"), day)

	_, err = ParseDayOfWeek("holiday")
	assert.EqualError(t, err, calendar.InvalidDayOfWeek)
}

func TestParseLessonTime_Success(t *testing.T) {
	lt, err := ParseLessonTime(" 0900 ", " 1100 ")
	assert.NoError(t, err)
	assert.Equal(t, "0900", lt.Start(), "stored start equals the trimmed input")
	assert.Equal(t, "1100", lt.End(), "stored end equals the trimmed input")
}

func TestParseLessonTime_SameTimeIsRelationError(t *testing.T) {
	// A valid-format pair with equal times must fail with the same-time
	// relation error, never the format error.
	_, err := ParseLessonTime("1200", "1200")
	assert.EqualError(t, err, calendar.NoSameTime)
	assert.ErrorIs(t, err, shared.ErrInvalidRelation)
	assert.NotErrorIs(t, err, shared.ErrInvalidFormat)
}

func TestParseLessonTime_FormatCheckedBeforeRelation(t *testing.T) {
	_, err := ParseLessonTime("25:00", "12:00")
	assert.EqualError(t, err, calendar.Not24HFormat)
	assert.ErrorIs(t, err, shared.ErrInvalidFormat)
	assert.NotErrorIs(t, err, shared.ErrInvalidRelation)

	// Equal but malformed: still the format error.
	_, err = ParseLessonTime("9am", "9am")
	assert.EqualError(t, err, calendar.Not24HFormat)
}
