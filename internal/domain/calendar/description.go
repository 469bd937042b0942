package calendar

import (
	"github.com/edulog-app/edulog/internal/domain/shared"
)

// Failure messages for lesson descriptions. Empty and over-length inputs
// get distinct messages so the user knows which aspect to fix.
const (
	DescriptionEmpty   = "Description of a lesson cannot be empty."
	DescriptionTooLong = "Description of a lesson cannot exceed 100 characters."
)

// MaxDescriptionLength is the longest accepted lesson description.
const MaxDescriptionLength = 100

// Description identifies a lesson in the calendar, e.g. "Sec 4 Physics".
type Description string

// IsEmptyDescription reports whether the trimmed raw string is empty.
func IsEmptyDescription(raw string) bool {
	return len(raw) == 0
}

// IsTooLongDescription reports whether the raw string exceeds
// MaxDescriptionLength characters.
func IsTooLongDescription(raw string) bool {
	return len([]rune(raw)) > MaxDescriptionLength
}

// IsValid checks if the description is non-empty and within length.
func (d Description) IsValid() bool {
	return !IsEmptyDescription(string(d)) && !IsTooLongDescription(string(d))
}

// String returns the string representation.
func (d Description) String() string {
	return string(d)
}

// NewDescription creates a Description from an already-trimmed string.
func NewDescription(raw string) (Description, error) {
	if IsEmptyDescription(raw) {
		return "", shared.NewDomainError("calendar", "NewDescription", shared.ErrInvalidFormat, DescriptionEmpty)
	}
	if IsTooLongDescription(raw) {
		return "", shared.NewDomainError("calendar", "NewDescription", shared.ErrInvalidFormat, DescriptionTooLong)
	}
	return Description(raw), nil
}
