package command

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edulog-app/edulog/internal/domain/shared"
	"github.com/edulog-app/edulog/internal/domain/student"
	"github.com/edulog-app/edulog/internal/model"
)

func execute(t *testing.T, book *model.Book, input string) Result {
	t.Helper()
	cmd, err := Parse(input)
	assert.NoError(t, err, "input: %q", input)
	result, err := cmd.Execute(book)
	assert.NoError(t, err, "input: %q", input)
	return result
}

func TestParse_UnknownCommand(t *testing.T) {
	_, err := Parse("frobnicate 1")
	assert.EqualError(t, err, UnknownCommandMessage)

	_, err = Parse("   ")
	assert.EqualError(t, err, UnknownCommandMessage)
}

func TestAddCommand_AddsStudent(t *testing.T) {
	book := model.NewBook()
	result := execute(t, book, "add n/John Doe p/98765432 e/johnd@example.com a/311 Clementi Ave 2 t/beginner t/maths")

	assert.True(t, result.Mutated)
	assert.Contains(t, result.Feedback, "New student added")
	assert.Equal(t, 1, book.Roster.Len())

	s, err := book.Roster.Get(0)
	assert.NoError(t, err)
	assert.Equal(t, student.Name("John Doe"), s.Name())
	assert.Equal(t, 2, s.Tags().Len())
	assert.False(t, s.IsPresent())
}

func TestAddCommand_RejectsDuplicate(t *testing.T) {
	book := model.NewBook()
	execute(t, book, "add n/John Doe p/98765432 e/johnd@example.com a/311 Clementi Ave 2")

	cmd, err := Parse("add n/John Doe p/11111111 e/other@example.com a/elsewhere")
	assert.NoError(t, err)
	_, err = cmd.Execute(book)
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestAddCommand_MissingFieldsShowUsage(t *testing.T) {
	_, err := Parse("add n/John Doe")
	assert.EqualError(t, err, fmt.Sprintf(InvalidCommandFormat, AddUsage))
}

func TestAddCommand_SurfacesConstraintMessageVerbatim(t *testing.T) {
	_, err := Parse("add n/John Doe p/12 e/johnd@example.com a/311 Clementi Ave 2")
	assert.EqualError(t, err, student.PhoneConstraints)
}

func TestDeleteCommand(t *testing.T) {
	book := model.NewBook()
	execute(t, book, "add n/John Doe p/98765432 e/johnd@example.com a/311 Clementi Ave 2")

	result := execute(t, book, "delete 1")
	assert.Contains(t, result.Feedback, "Deleted student: John Doe")
	assert.Equal(t, 0, book.Roster.Len())

	_, err := Parse("delete zero")
	assert.EqualError(t, err, fmt.Sprintf(InvalidCommandFormat, DeleteUsage))
}

func TestAttendanceCommands(t *testing.T) {
	book := model.NewBook()
	execute(t, book, "add n/John Doe p/98765432 e/johnd@example.com a/311 Clementi Ave 2")
	execute(t, book, "add n/Jane Roe p/87654321 e/janer@example.com a/312 Clementi Ave 2")

	execute(t, book, "mark 1")
	s, err := book.Roster.Get(0)
	assert.NoError(t, err)
	assert.True(t, s.IsPresent())

	execute(t, book, "unmark 1")
	assert.False(t, s.IsPresent())

	// Unmarking an absent student keeps it absent.
	execute(t, book, "unmark 1")
	assert.False(t, s.IsPresent())

	execute(t, book, "mark 1")
	execute(t, book, "mark 2")
	execute(t, book, "unmarkall")
	for _, st := range book.Roster.Students() {
		assert.False(t, st.IsPresent())
	}
}

func TestTagCommand_MergesTagsAndKeepsAttendance(t *testing.T) {
	book := model.NewBook()
	execute(t, book, "add n/John Doe p/98765432 e/johnd@example.com a/311 Clementi Ave 2 t/beginner")
	execute(t, book, "mark 1")

	execute(t, book, "tag 1 t/oweFees t/beginner")

	s, err := book.Roster.Get(0)
	assert.NoError(t, err)
	assert.Equal(t, 2, s.Tags().Len())
	assert.True(t, s.Tags().Contains("oweFees"))
	assert.True(t, s.IsPresent(), "attendance carries over to the edited student")
}

func TestFindCommand(t *testing.T) {
	book := model.NewBook()
	execute(t, book, "add n/John Doe p/98765432 e/johnd@example.com a/311 Clementi Ave 2")
	execute(t, book, "add n/Jane Roe p/87654321 e/janer@example.com a/312 Clementi Ave 2")

	result := execute(t, book, "find doe")
	assert.Contains(t, result.Feedback, "1 students found")
	assert.Contains(t, result.Feedback, "John Doe")

	_, err := Parse("find")
	assert.EqualError(t, err, fmt.Sprintf(InvalidCommandFormat, FindUsage))
}

func TestLessonCommands(t *testing.T) {
	book := model.NewBook()

	result := execute(t, book, "addlesson d/Sec 4 Physics day/Monday from/1630 to/1800")
	assert.True(t, result.Mutated)
	assert.Equal(t, 1, book.Schedule.Len())

	// Duplicate description is rejected even on another day.
	cmd, err := Parse("addlesson d/Sec 4 Physics day/fri from/0900 to/1100")
	assert.NoError(t, err)
	_, err = cmd.Execute(book)
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)

	result = execute(t, book, "lessons")
	assert.Contains(t, result.Feedback, "Sec 4 Physics: Monday 1630-1800")

	result = execute(t, book, "deletelesson 1")
	assert.Contains(t, result.Feedback, "Deleted lesson")
	assert.Equal(t, 0, book.Schedule.Len())
}

func TestAddLessonCommand_SurfacesTimeErrors(t *testing.T) {
	_, err := Parse("addlesson d/Physics day/Monday from/1630 to/1630")
	assert.ErrorIs(t, err, shared.ErrInvalidRelation)

	_, err = Parse("addlesson d/Physics day/Monday from/25:00 to/1800")
	assert.ErrorIs(t, err, shared.ErrInvalidFormat)
}

func TestExitAndHelp(t *testing.T) {
	book := model.NewBook()

	result := execute(t, book, "exit")
	assert.True(t, result.Exit)
	assert.False(t, result.Mutated)

	result = execute(t, book, "help")
	assert.Contains(t, result.Feedback, "add: Adds a student")
}
