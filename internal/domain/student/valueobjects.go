package student

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/edulog-app/edulog/internal/domain/shared"
)

// ═══════════════════════════════════════════════════════════════════════════
// Name Value Object
// ═══════════════════════════════════════════════════════════════════════════

// NameConstraints is shown to the user when a name fails validation.
const NameConstraints = "Names should only contain alphanumeric characters and spaces, and it should not be blank"

// Name represents a student's name. Two students with the same name are
// treated as the same real-world student (weak identity).
type Name string

var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9 ]*$`)

// IsValid checks if the name is valid.
func (n Name) IsValid() bool {
	return nameRegex.MatchString(string(n))
}

// String returns the string representation.
func (n Name) String() string {
	return string(n)
}

// NewName creates a Name from raw input, trimming surrounding whitespace.
func NewName(raw string) (Name, error) {
	n := Name(strings.TrimSpace(raw))
	if !n.IsValid() {
		return "", shared.NewDomainError("student", "NewName", shared.ErrInvalidFormat, NameConstraints)
	}
	return n, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// Phone Value Object
// ═══════════════════════════════════════════════════════════════════════════

// PhoneConstraints is shown to the user when a phone number fails validation.
const PhoneConstraints = "Phone numbers should only contain numbers, and it should be at least 3 digits long"

// Phone represents a student's phone number.
type Phone string

var phoneRegex = regexp.MustCompile(`^\d{3,}$`)

// IsValid checks if the phone number is valid.
func (p Phone) IsValid() bool {
	return phoneRegex.MatchString(string(p))
}

// String returns the string representation.
func (p Phone) String() string {
	return string(p)
}

// NewPhone creates a Phone from raw input, trimming surrounding whitespace.
func NewPhone(raw string) (Phone, error) {
	p := Phone(strings.TrimSpace(raw))
	if !p.IsValid() {
		return "", shared.NewDomainError("student", "NewPhone", shared.ErrInvalidFormat, PhoneConstraints)
	}
	return p, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// Email Value Object
// ═══════════════════════════════════════════════════════════════════════════

// EmailConstraints is shown to the user when an email fails validation.
const EmailConstraints = "Emails should be of the format local-part@domain and adhere to the following constraints:\n" +
	"1. The local-part should only contain alphanumeric characters and these special characters: +_.- " +
	"The local-part may not start or end with any special characters and special characters may not be adjacent.\n" +
	"2. This is followed by a '@' and then a domain name made up of domain labels separated by periods. " +
	"The domain name must end with a domain label at least 2 characters long, have each domain label " +
	"start and end with alphanumeric characters, and have hyphens only between alphanumeric characters."

// Email represents a student's email address.
type Email string

var emailRegex = regexp.MustCompile(
	`^[a-zA-Z0-9]+([+_.\-][a-zA-Z0-9]+)*` + // local part
		`@` +
		`([a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?\.)*` + // leading domain labels
		`[a-zA-Z0-9][a-zA-Z0-9\-]*[a-zA-Z0-9]$`) // final label, at least 2 chars

// IsValid checks if the email is valid.
func (e Email) IsValid() bool {
	return emailRegex.MatchString(string(e))
}

// String returns the string representation.
func (e Email) String() string {
	return string(e)
}

// NewEmail creates an Email from raw input, trimming surrounding whitespace.
func NewEmail(raw string) (Email, error) {
	e := Email(strings.TrimSpace(raw))
	if !e.IsValid() {
		return "", shared.NewDomainError("student", "NewEmail", shared.ErrInvalidFormat, EmailConstraints)
	}
	return e, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// Address Value Object
// ═══════════════════════════════════════════════════════════════════════════

// AddressConstraints is shown to the user when an address fails validation.
const AddressConstraints = "Addresses can take any values, and it should not be blank"

// Address represents a student's address.
type Address string

var addressRegex = regexp.MustCompile(`^[^\s].*`)

// IsValid checks that the address is not blank.
func (a Address) IsValid() bool {
	return addressRegex.MatchString(string(a))
}

// String returns the string representation.
func (a Address) String() string {
	return string(a)
}

// NewAddress creates an Address from raw input, trimming surrounding whitespace.
func NewAddress(raw string) (Address, error) {
	a := Address(strings.TrimSpace(raw))
	if !a.IsValid() {
		return "", shared.NewDomainError("student", "NewAddress", shared.ErrInvalidFormat, AddressConstraints)
	}
	return a, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// Fee Value Object
// ═══════════════════════════════════════════════════════════════════════════

// FeeConstraints is shown to the user when a fee fails validation.
const FeeConstraints = "Fees should be a non-negative integer"

// Fee represents a monthly tuition fee, in whole currency units.
type Fee int

// IsValid checks that the fee is non-negative.
func (f Fee) IsValid() bool {
	return f >= 0
}

// Int returns the underlying int value.
func (f Fee) Int() int {
	return int(f)
}

// String returns the string representation.
func (f Fee) String() string {
	return strconv.Itoa(int(f))
}

// IsValidFee reports whether the raw string is a valid fee. The string is
// checked as entered, without trimming.
func IsValidFee(raw string) bool {
	v, err := strconv.Atoi(raw)
	return err == nil && v >= 0 && !strings.HasPrefix(raw, "+")
}

// NewFee creates a Fee from raw input.
func NewFee(raw string) (Fee, error) {
	if !IsValidFee(raw) {
		return 0, shared.NewDomainError("student", "NewFee", shared.ErrInvalidFormat, FeeConstraints)
	}
	v, _ := strconv.Atoi(raw)
	return Fee(v), nil
}

// ═══════════════════════════════════════════════════════════════════════════
// Tag Value Object
// ═══════════════════════════════════════════════════════════════════════════

// TagConstraints is shown to the user when a tag fails validation.
const TagConstraints = "Tags names should be alphanumeric"

// Tag represents a label attached to a student, e.g. "beginner" or "oweFees".
type Tag string

var tagRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// IsValid checks if the tag name is valid.
func (t Tag) IsValid() bool {
	return tagRegex.MatchString(string(t))
}

// String returns the string representation.
func (t Tag) String() string {
	return string(t)
}

// NewTag creates a Tag from raw input, trimming surrounding whitespace.
func NewTag(raw string) (Tag, error) {
	t := Tag(strings.TrimSpace(raw))
	if !t.IsValid() {
		return "", shared.NewDomainError("student", "NewTag", shared.ErrInvalidFormat, TagConstraints)
	}
	return t, nil
}
