// Package model contains the in-memory record book the application operates
// on: the student roster and the lesson schedule. The command layer mutates
// it; the storage layer persists it.
package model

import (
	"strings"

	"github.com/edulog-app/edulog/internal/domain/shared"
	"github.com/edulog-app/edulog/internal/domain/student"
)

// Roster is an ordered list of students that enforces uniqueness: it never
// contains two students that are the same under the weak name identity
// (IsSameStudent).
type Roster struct {
	students []*student.Student
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{}
}

// Contains reports whether a student with the same identity is already in
// the roster.
func (r *Roster) Contains(s *student.Student) bool {
	for _, existing := range r.students {
		if existing.IsSameStudent(s) {
			return true
		}
	}
	return false
}

// Add appends a student to the roster.
// Returns shared.ErrAlreadyExists if a student with the same name exists.
func (r *Roster) Add(s *student.Student) error {
	if s == nil {
		return shared.NewDomainError("roster", "Add", shared.ErrMissingArgument, "student is required")
	}
	if r.Contains(s) {
		return shared.NewDomainError("roster", "Add", shared.ErrAlreadyExists, "this student already exists in the record book")
	}
	r.students = append(r.students, s)
	return nil
}

// Get returns the student at the given index.
func (r *Roster) Get(i shared.Index) (*student.Student, error) {
	if i.ZeroBased() < 0 || i.ZeroBased() >= len(r.students) {
		return nil, shared.NewDomainError("roster", "Get", shared.ErrIndexOutOfRange, "the student index provided is invalid")
	}
	return r.students[i.ZeroBased()], nil
}

// Set replaces the student at the given index. The replacement must not
// collide with any other student's identity.
func (r *Roster) Set(i shared.Index, edited *student.Student) error {
	if edited == nil {
		return shared.NewDomainError("roster", "Set", shared.ErrMissingArgument, "student is required")
	}
	if i.ZeroBased() < 0 || i.ZeroBased() >= len(r.students) {
		return shared.NewDomainError("roster", "Set", shared.ErrIndexOutOfRange, "the student index provided is invalid")
	}
	for pos, existing := range r.students {
		if pos != i.ZeroBased() && existing.IsSameStudent(edited) {
			return shared.NewDomainError("roster", "Set", shared.ErrAlreadyExists, "this student already exists in the record book")
		}
	}
	r.students[i.ZeroBased()] = edited
	return nil
}

// Remove deletes and returns the student at the given index.
func (r *Roster) Remove(i shared.Index) (*student.Student, error) {
	removed, err := r.Get(i)
	if err != nil {
		return nil, err
	}
	r.students = append(r.students[:i.ZeroBased()], r.students[i.ZeroBased()+1:]...)
	return removed, nil
}

// Mark marks the student at the given index as present.
func (r *Roster) Mark(i shared.Index) (*student.Student, error) {
	s, err := r.Get(i)
	if err != nil {
		return nil, err
	}
	s.Mark()
	return s, nil
}

// Unmark marks the student at the given index as absent.
func (r *Roster) Unmark(i shared.Index) (*student.Student, error) {
	s, err := r.Get(i)
	if err != nil {
		return nil, err
	}
	s.Unmark()
	return s, nil
}

// UnmarkAll resets every student's attendance, typically at the start of a
// new lesson.
func (r *Roster) UnmarkAll() {
	for _, s := range r.students {
		s.Unmark()
	}
}

// Find returns students whose name contains any of the given keywords as a
// whole word, case-insensitively.
func (r *Roster) Find(keywords []string) []*student.Student {
	var matched []*student.Student
	for _, s := range r.students {
		words := strings.Fields(strings.ToLower(s.Name().String()))
		for _, kw := range keywords {
			kw = strings.ToLower(kw)
			found := false
			for _, w := range words {
				if w == kw {
					found = true
					break
				}
			}
			if found {
				matched = append(matched, s)
				break
			}
		}
	}
	return matched
}

// Len returns the number of students in the roster.
func (r *Roster) Len() int {
	return len(r.students)
}

// Students returns the students in display order. The slice is a copy; the
// students themselves are shared.
func (r *Roster) Students() []*student.Student {
	out := make([]*student.Student, len(r.students))
	copy(out, r.students)
	return out
}
