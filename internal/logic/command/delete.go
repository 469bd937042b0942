package command

import (
	"fmt"

	"github.com/edulog-app/edulog/internal/domain/shared"
	"github.com/edulog-app/edulog/internal/logic/parser"
	"github.com/edulog-app/edulog/internal/model"
)

// DeleteUsage documents the delete command.
const DeleteUsage = "delete: Deletes the student at the given index in the list.\n" +
	"Parameters: INDEX (must be a positive integer)\n" +
	"Example: delete 1"

// DeleteCommand removes the student at a display index.
type DeleteCommand struct {
	Index shared.Index
}

func parseDelete(args string) (Command, error) {
	index, err := parser.ParseIndex(args)
	if err != nil {
		return nil, parser.NewParseError(fmt.Sprintf(InvalidCommandFormat, DeleteUsage))
	}
	return &DeleteCommand{Index: index}, nil
}

// Execute removes the student at the index.
func (c *DeleteCommand) Execute(book *model.Book) (Result, error) {
	removed, err := book.Roster.Remove(c.Index)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Deleted student: %s", formatStudent(removed)),
		Mutated:  true,
	}, nil
}
