package command

import (
	"strings"

	"github.com/edulog-app/edulog/internal/model"
)

// HelpCommand shows the usage of every command.
type HelpCommand struct{}

// Execute renders the command reference.
func (c *HelpCommand) Execute(book *model.Book) (Result, error) {
	usages := []string{
		AddUsage,
		DeleteUsage,
		"list: Shows every student in the record book.",
		FindUsage,
		TagUsage,
		MarkUsage,
		UnmarkUsage,
		"unmarkall: Marks every student as absent.",
		AddLessonUsage,
		DeleteLessonUsage,
		"lessons: Shows every lesson in the calendar.",
		"help: Shows this message.",
		"exit: Exits the application.",
	}
	return Result{Feedback: strings.Join(usages, "\n\n")}, nil
}

// ExitCommand terminates the application loop.
type ExitCommand struct{}

// Execute signals the loop to exit.
func (c *ExitCommand) Execute(book *model.Book) (Result, error) {
	return Result{Feedback: "Exiting EduLog. Goodbye!", Exit: true}, nil
}
