package student

import (
	"fmt"

	"github.com/edulog-app/edulog/internal/domain/shared"
)

// ═══════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ═══════════════════════════════════════════════════════════════════════════

// Student is the central entity of the record book. All fields are supplied
// at construction, already validated by their own constructors, and never
// change afterwards; the only mutable state is the attendance flag.
type Student struct {
	// Identity field
	name Name

	// Data fields
	phone   Phone
	email   Email
	address Address
	tags    *TagSet

	// Attendance for the current lesson.
	present bool
}

// NewStudentParams contains the parameters for constructing a Student.
// Every field must be a validated, non-zero value object.
type NewStudentParams struct {
	Name    Name
	Phone   Phone
	Email   Email
	Address Address
	Tags    *TagSet
}

// NewStudent constructs a Student from pre-validated value objects.
// It rejects absent arguments as a programming-contract violation; it does
// not re-validate content. The tag set is copied in, never aliased.
func NewStudent(params NewStudentParams) (*Student, error) {
	missing := func(field string) error {
		return shared.NewDomainError("student", "NewStudent", shared.ErrMissingArgument, field+" is required")
	}

	if params.Name == "" {
		return nil, missing("name")
	}
	if params.Phone == "" {
		return nil, missing("phone")
	}
	if params.Email == "" {
		return nil, missing("email")
	}
	if params.Address == "" {
		return nil, missing("address")
	}
	if params.Tags == nil {
		return nil, missing("tags")
	}

	return &Student{
		name:    params.Name,
		phone:   params.Phone,
		email:   params.Email,
		address: params.Address,
		tags:    params.Tags.Copy(),
		present: false,
	}, nil
}

// Name returns the student's name.
func (s *Student) Name() Name {
	return s.name
}

// Phone returns the student's phone number.
func (s *Student) Phone() Phone {
	return s.phone
}

// Email returns the student's email address.
func (s *Student) Email() Email {
	return s.email
}

// Address returns the student's address.
func (s *Student) Address() Address {
	return s.address
}

// Tags returns a read-only view of the student's tags. Mutating the view
// fails with shared.ErrImmutableCollection; copy it to modify.
func (s *Student) Tags() *TagSet {
	return s.tags.Freeze()
}

// IsPresent reports whether the student is marked present.
func (s *Student) IsPresent() bool {
	return s.present
}

// Mark marks the student as present. Idempotent.
func (s *Student) Mark() {
	s.present = true
}

// Unmark marks the student as absent. Idempotent.
func (s *Student) Unmark() {
	s.present = false
}

// IsSameStudent returns true if both students have the same name.
// This is the weaker notion of identity used for duplicate detection.
func (s *Student) IsSameStudent(other *Student) bool {
	if other == s {
		return true
	}
	return other != nil && other.name == s.name
}

// Equal returns true if both students have the same identity and data
// fields, including tags and attendance. This is the stronger notion of
// equality.
func (s *Student) Equal(other *Student) bool {
	if other == s {
		return true
	}
	if other == nil {
		return false
	}
	return s.name == other.name &&
		s.phone == other.phone &&
		s.email == other.email &&
		s.address == other.address &&
		s.tags.Equal(other.tags) &&
		s.present == other.present
}

// String returns a human-readable representation for logging.
func (s *Student) String() string {
	return fmt.Sprintf("Student{name: %s, phone: %s, email: %s, address: %s, tags: %s, present: %t}",
		s.name, s.phone, s.email, s.address, s.tags, s.present)
}
