package model

import (
	"github.com/edulog-app/edulog/internal/domain/calendar"
	"github.com/edulog-app/edulog/internal/domain/shared"
)

// Schedule is an ordered list of weekly lessons, unique by description.
type Schedule struct {
	lessons []*calendar.Lesson
}

// NewSchedule creates an empty schedule.
func NewSchedule() *Schedule {
	return &Schedule{}
}

// Contains reports whether a lesson with the same description is already
// scheduled.
func (c *Schedule) Contains(l *calendar.Lesson) bool {
	for _, existing := range c.lessons {
		if existing.IsSameLesson(l) {
			return true
		}
	}
	return false
}

// Add appends a lesson to the schedule.
// Returns shared.ErrAlreadyExists if a lesson with the same description
// exists.
func (c *Schedule) Add(l *calendar.Lesson) error {
	if l == nil {
		return shared.NewDomainError("schedule", "Add", shared.ErrMissingArgument, "lesson is required")
	}
	if c.Contains(l) {
		return shared.NewDomainError("schedule", "Add", shared.ErrAlreadyExists, "this lesson already exists in the calendar")
	}
	c.lessons = append(c.lessons, l)
	return nil
}

// Get returns the lesson at the given index.
func (c *Schedule) Get(i shared.Index) (*calendar.Lesson, error) {
	if i.ZeroBased() < 0 || i.ZeroBased() >= len(c.lessons) {
		return nil, shared.NewDomainError("schedule", "Get", shared.ErrIndexOutOfRange, "the lesson index provided is invalid")
	}
	return c.lessons[i.ZeroBased()], nil
}

// Remove deletes and returns the lesson at the given index.
func (c *Schedule) Remove(i shared.Index) (*calendar.Lesson, error) {
	removed, err := c.Get(i)
	if err != nil {
		return nil, err
	}
	c.lessons = append(c.lessons[:i.ZeroBased()], c.lessons[i.ZeroBased()+1:]...)
	return removed, nil
}

// Len returns the number of scheduled lessons.
func (c *Schedule) Len() int {
	return len(c.lessons)
}

// Lessons returns the lessons in display order. The slice is a copy; the
// lessons themselves are shared.
func (c *Schedule) Lessons() []*calendar.Lesson {
	out := make([]*calendar.Lesson, len(c.lessons))
	copy(out, c.lessons)
	return out
}
