// Package command contains the text commands that operate on the record
// book. Each command pairs a parser, which turns raw argument text into a
// validated command via the parsing utility, with an Execute method that
// applies it to the book. Recoverable parse failures propagate unchanged so
// the caller can surface their messages to the user verbatim.
package command

import (
	"fmt"

	"github.com/edulog-app/edulog/internal/domain/student"
	"github.com/edulog-app/edulog/internal/model"
)

// UnknownCommandMessage is shown when the command word is not recognized.
const UnknownCommandMessage = "Unknown command"

// InvalidCommandFormat prefixes the usage string of the offending command.
const InvalidCommandFormat = "Invalid command format! \n%s"

// Result is what a command execution reports back to the user interface.
type Result struct {
	// Feedback is shown to the user verbatim.
	Feedback string

	// Exit signals the application loop to terminate.
	Exit bool

	// Mutated signals that the record book changed and should be persisted.
	Mutated bool
}

// Command is a single user action executed against the record book.
type Command interface {
	Execute(book *model.Book) (Result, error)
}

// formatStudent renders a student for user-facing feedback.
func formatStudent(s *student.Student) string {
	attendance := "absent"
	if s.IsPresent() {
		attendance = "present"
	}
	out := fmt.Sprintf("%s; Phone: %s; Email: %s; Address: %s; Attendance: %s",
		s.Name(), s.Phone(), s.Email(), s.Address(), attendance)
	if s.Tags().Len() > 0 {
		out += fmt.Sprintf("; Tags: %s", s.Tags())
	}
	return out
}
