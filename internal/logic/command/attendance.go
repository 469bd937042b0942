package command

import (
	"fmt"

	"github.com/edulog-app/edulog/internal/domain/shared"
	"github.com/edulog-app/edulog/internal/logic/parser"
	"github.com/edulog-app/edulog/internal/model"
)

// Usage strings for the attendance commands.
const (
	MarkUsage = "mark: Marks the student at the given index as present.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: mark 1"
	UnmarkUsage = "unmark: Marks the student at the given index as absent.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: unmark 1"
)

// MarkCommand marks a student as present for the current lesson.
type MarkCommand struct {
	Index shared.Index
}

func parseMark(args string) (Command, error) {
	index, err := parser.ParseIndex(args)
	if err != nil {
		return nil, parser.NewParseError(fmt.Sprintf(InvalidCommandFormat, MarkUsage))
	}
	return &MarkCommand{Index: index}, nil
}

// Execute marks the student at the index as present.
func (c *MarkCommand) Execute(book *model.Book) (Result, error) {
	s, err := book.Roster.Mark(c.Index)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Marked student as present: %s", s.Name()),
		Mutated:  true,
	}, nil
}

// UnmarkCommand marks a student as absent.
type UnmarkCommand struct {
	Index shared.Index
}

func parseUnmark(args string) (Command, error) {
	index, err := parser.ParseIndex(args)
	if err != nil {
		return nil, parser.NewParseError(fmt.Sprintf(InvalidCommandFormat, UnmarkUsage))
	}
	return &UnmarkCommand{Index: index}, nil
}

// Execute marks the student at the index as absent.
func (c *UnmarkCommand) Execute(book *model.Book) (Result, error) {
	s, err := book.Roster.Unmark(c.Index)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Marked student as absent: %s", s.Name()),
		Mutated:  true,
	}, nil
}

// UnmarkAllCommand resets attendance for the whole roster, typically at the
// start of a new lesson.
type UnmarkAllCommand struct{}

// Execute marks every student as absent.
func (c *UnmarkAllCommand) Execute(book *model.Book) (Result, error) {
	book.Roster.UnmarkAll()
	return Result{
		Feedback: "Attendance has been reset for all students",
		Mutated:  true,
	}, nil
}
