package command

import (
	"fmt"
	"strings"

	"github.com/edulog-app/edulog/internal/domain/calendar"
	"github.com/edulog-app/edulog/internal/domain/shared"
	"github.com/edulog-app/edulog/internal/logic/parser"
	"github.com/edulog-app/edulog/internal/model"
)

// Usage strings for the lesson commands.
const (
	AddLessonUsage = "addlesson: Adds a weekly lesson to the calendar.\n" +
		"Parameters: d/DESCRIPTION day/DAY from/HHMM to/HHMM\n" +
		"Example: addlesson d/Sec 4 Physics day/Monday from/1630 to/1800"
	DeleteLessonUsage = "deletelesson: Deletes the lesson at the given index in the calendar.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: deletelesson 1"
)

// AddLessonCommand schedules a new weekly lesson.
type AddLessonCommand struct {
	Lesson *calendar.Lesson
}

func parseAddLesson(args string) (Command, error) {
	m := parser.Tokenize(args,
		parser.PrefixDescription, parser.PrefixDay,
		parser.PrefixStart, parser.PrefixEnd)

	rawDescription, okDescription := m.Value(parser.PrefixDescription)
	rawDay, okDay := m.Value(parser.PrefixDay)
	rawStart, okStart := m.Value(parser.PrefixStart)
	rawEnd, okEnd := m.Value(parser.PrefixEnd)
	if !okDescription || !okDay || !okStart || !okEnd || m.Preamble() != "" {
		return nil, parser.NewParseError(fmt.Sprintf(InvalidCommandFormat, AddLessonUsage))
	}

	description, err := parser.ParseDescription(rawDescription)
	if err != nil {
		return nil, err
	}
	day, err := parser.ParseDayOfWeek(rawDay)
	if err != nil {
		return nil, err
	}
	time, err := parser.ParseLessonTime(rawStart, rawEnd)
	if err != nil {
		return nil, err
	}

	lesson, err := calendar.NewLesson(description, day, time)
	if err != nil {
		return nil, err
	}
	return &AddLessonCommand{Lesson: lesson}, nil
}

// Execute adds the lesson, rejecting duplicates by description identity.
func (c *AddLessonCommand) Execute(book *model.Book) (Result, error) {
	if err := book.Schedule.Add(c.Lesson); err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("New lesson added: %s", c.Lesson),
		Mutated:  true,
	}, nil
}

// DeleteLessonCommand removes the lesson at a display index.
type DeleteLessonCommand struct {
	Index shared.Index
}

func parseDeleteLesson(args string) (Command, error) {
	index, err := parser.ParseIndex(args)
	if err != nil {
		return nil, parser.NewParseError(fmt.Sprintf(InvalidCommandFormat, DeleteLessonUsage))
	}
	return &DeleteLessonCommand{Index: index}, nil
}

// Execute removes the lesson at the index.
func (c *DeleteLessonCommand) Execute(book *model.Book) (Result, error) {
	removed, err := book.Schedule.Remove(c.Index)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Deleted lesson: %s", removed),
		Mutated:  true,
	}, nil
}

// LessonsCommand shows every scheduled lesson.
type LessonsCommand struct{}

// Execute renders the calendar in display order.
func (c *LessonsCommand) Execute(book *model.Book) (Result, error) {
	lessons := book.Schedule.Lessons()
	if len(lessons) == 0 {
		return Result{Feedback: "No lessons in the calendar"}, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Listed all lessons (%d):", len(lessons))
	for i, l := range lessons {
		fmt.Fprintf(&b, "\n%d. %s", i+1, l)
	}
	return Result{Feedback: b.String()}, nil
}
