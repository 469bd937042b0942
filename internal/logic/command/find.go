package command

import (
	"fmt"
	"strings"

	"github.com/edulog-app/edulog/internal/logic/parser"
	"github.com/edulog-app/edulog/internal/model"
)

// FindUsage documents the find command.
const FindUsage = "find: Finds students whose names contain any of the given keywords.\n" +
	"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
	"Example: find alice bob"

// FindCommand searches the roster by name keywords.
type FindCommand struct {
	Keywords []string
}

func parseFind(args string) (Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, parser.NewParseError(fmt.Sprintf(InvalidCommandFormat, FindUsage))
	}
	return &FindCommand{Keywords: keywords}, nil
}

// Execute lists the students matching any keyword.
func (c *FindCommand) Execute(book *model.Book) (Result, error) {
	matched := book.Roster.Find(c.Keywords)

	var b strings.Builder
	fmt.Fprintf(&b, "%d students found", len(matched))
	for i, s := range matched {
		fmt.Fprintf(&b, "\n%d. %s", i+1, formatStudent(s))
	}
	return Result{Feedback: b.String()}, nil
}
