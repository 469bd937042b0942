// Package parser converts raw user-entered strings into validated domain
// value objects. All format constraints and failure messages are
// centralized here so the command layer never duplicates validation logic.
//
// Every parse function is pure and stateless: the same input always yields
// the same value or the same failure. Failures are caller input errors, not
// transient conditions, so there is no retry semantics; the command layer
// surfaces the failure message to the user verbatim.
package parser

import (
	"strconv"
	"strings"

	"github.com/edulog-app/edulog/internal/domain/calendar"
	"github.com/edulog-app/edulog/internal/domain/shared"
	"github.com/edulog-app/edulog/internal/domain/student"
)

// InvalidIndexMessage is the fixed failure message for ParseIndex.
const InvalidIndexMessage = "Index is not a non-zero unsigned integer."

// ParseError is the single failure type of the parsing layer. Message holds
// the constraint text shown to the user; Kind distinguishes per-field format
// violations from multi-field relation violations for errors.Is checks.
type ParseError struct {
	Message string
	Kind    error
}

// Error returns the user-facing message verbatim.
func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap returns the failure kind for errors.Is().
func (e *ParseError) Unwrap() error {
	return e.Kind
}

// NewParseError creates a format-violation parse failure.
func NewParseError(message string) *ParseError {
	return &ParseError{Message: message, Kind: shared.ErrInvalidFormat}
}

// NewRelationError creates a joint-constraint parse failure.
func NewRelationError(message string) *ParseError {
	return &ParseError{Message: message, Kind: shared.ErrInvalidRelation}
}

// isNonZeroUnsignedInteger reports whether s is a positive integer with no
// sign and no fractional part. Values that overflow int are rejected too.
func isNonZeroUnsignedInteger(s string) bool {
	v, err := strconv.Atoi(s)
	return err == nil && v > 0 && !strings.HasPrefix(s, "+")
}

// ParseIndex parses a one-based display index. Leading and trailing
// whitespace is trimmed.
func ParseIndex(oneBasedIndex string) (shared.Index, error) {
	trimmed := strings.TrimSpace(oneBasedIndex)
	if !isNonZeroUnsignedInteger(trimmed) {
		return 0, NewParseError(InvalidIndexMessage)
	}
	v, _ := strconv.Atoi(trimmed)
	index, err := shared.NewIndexFromOneBased(v)
	if err != nil {
		return 0, NewParseError(InvalidIndexMessage)
	}
	return index, nil
}

// ParseName parses a raw string into a Name. Leading and trailing
// whitespace is trimmed.
func ParseName(name string) (student.Name, error) {
	trimmed := strings.TrimSpace(name)
	if !student.Name(trimmed).IsValid() {
		return "", NewParseError(student.NameConstraints)
	}
	return student.Name(trimmed), nil
}

// ParsePhone parses a raw string into a Phone. Leading and trailing
// whitespace is trimmed.
func ParsePhone(phone string) (student.Phone, error) {
	trimmed := strings.TrimSpace(phone)
	if !student.Phone(trimmed).IsValid() {
		return "", NewParseError(student.PhoneConstraints)
	}
	return student.Phone(trimmed), nil
}

// ParseAddress parses a raw string into an Address. Leading and trailing
// whitespace is trimmed.
func ParseAddress(address string) (student.Address, error) {
	trimmed := strings.TrimSpace(address)
	if !student.Address(trimmed).IsValid() {
		return "", NewParseError(student.AddressConstraints)
	}
	return student.Address(trimmed), nil
}

// ParseEmail parses a raw string into an Email. Leading and trailing
// whitespace is trimmed.
func ParseEmail(email string) (student.Email, error) {
	trimmed := strings.TrimSpace(email)
	if !student.Email(trimmed).IsValid() {
		return "", NewParseError(student.EmailConstraints)
	}
	return student.Email(trimmed), nil
}

// ParseTag parses a raw string into a Tag. Leading and trailing whitespace
// is trimmed.
func ParseTag(tag string) (student.Tag, error) {
	trimmed := strings.TrimSpace(tag)
	if !student.Tag(trimmed).IsValid() {
		return "", NewParseError(student.TagConstraints)
	}
	return student.Tag(trimmed), nil
}

// ParseTags parses a collection of raw strings into a TagSet. Duplicates
// collapse into a single tag.
func ParseTags(tags []string) (*student.TagSet, error) {
	set := student.NewTagSet()
	for _, raw := range tags {
		tag, err := ParseTag(raw)
		if err != nil {
			return nil, err
		}
		// Set insertion; the set is still mutable here.
		_ = set.Add(tag)
	}
	return set, nil
}

// ParseDescription parses a raw string into a lesson Description. Leading
// and trailing whitespace is trimmed. Empty and over-length descriptions
// fail with distinct messages.
func ParseDescription(description string) (calendar.Description, error) {
	trimmed := strings.TrimSpace(description)
	if calendar.IsEmptyDescription(trimmed) {
		return "", NewParseError(calendar.DescriptionEmpty)
	}
	if calendar.IsTooLongDescription(trimmed) {
		return "", NewParseError(calendar.DescriptionTooLong)
	}
	return calendar.Description(trimmed), nil
}

// ParseFee parses a raw string into a Fee. The string is checked as
// entered, without trimming.
func ParseFee(fee string) (student.Fee, error) {
	if !student.IsValidFee(fee) {
		return 0, NewParseError(student.FeeConstraints)
	}
	parsed, err := student.NewFee(fee)
	if err != nil {
		return 0, NewParseError(student.FeeConstraints)
	}
	return parsed, nil
}

// ParseDayOfWeek parses a raw string into a Day. Full English day names and
// their 3-letter shorthands are accepted; letter case is up to the Day
// predicate.
func ParseDayOfWeek(day string) (calendar.Day, error) {
	if !calendar.IsValidDayOfWeek(day) {
		return "", NewParseError(calendar.InvalidDayOfWeek)
	}
	return calendar.NewDay(day)
}

// ParseLessonTime parses two raw strings representing the start and end of
// a lesson in 24-hour "HHMM" format. Leading and trailing whitespace is
// trimmed from both. Validation is two-phase: each time is checked for
// format independently first, then the pair is checked against the joint
// same-time constraint, so the most specific failing stage is reported.
func ParseLessonTime(startTime, endTime string) (calendar.LessonTime, error) {
	startTrimmed := strings.TrimSpace(startTime)
	endTrimmed := strings.TrimSpace(endTime)

	if !calendar.Is24HFormat(startTrimmed) || !calendar.Is24HFormat(endTrimmed) {
		return calendar.LessonTime{}, NewParseError(calendar.Not24HFormat)
	}
	if !calendar.IsValidTimePair(startTrimmed, endTrimmed) {
		return calendar.LessonTime{}, NewRelationError(calendar.NoSameTime)
	}

	return calendar.NewLessonTime(startTrimmed, endTrimmed)
}
