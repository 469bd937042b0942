package command

import (
	"fmt"
	"strings"

	"github.com/edulog-app/edulog/internal/model"
)

// ListCommand shows every student in the record book.
type ListCommand struct{}

// Execute renders the roster in display order.
func (c *ListCommand) Execute(book *model.Book) (Result, error) {
	students := book.Roster.Students()
	if len(students) == 0 {
		return Result{Feedback: "No students in the record book"}, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Listed all students (%d):", len(students))
	for i, s := range students {
		fmt.Fprintf(&b, "\n%d. %s", i+1, formatStudent(s))
	}
	return Result{Feedback: b.String()}, nil
}
