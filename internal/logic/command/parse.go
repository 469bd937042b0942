package command

import (
	"strings"

	"github.com/edulog-app/edulog/internal/logic/parser"
)

// Parse turns one line of user input into an executable command.
// The first word selects the command; the rest is handed to that command's
// own argument parser.
func Parse(input string) (Command, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, parser.NewParseError(UnknownCommandMessage)
	}

	word, args := trimmed, ""
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		word, args = trimmed[:i], trimmed[i:]
	}

	switch strings.ToLower(word) {
	case "add":
		return parseAdd(args)
	case "delete":
		return parseDelete(args)
	case "list":
		return &ListCommand{}, nil
	case "find":
		return parseFind(args)
	case "tag":
		return parseTag(args)
	case "mark":
		return parseMark(args)
	case "unmark":
		return parseUnmark(args)
	case "unmarkall":
		return &UnmarkAllCommand{}, nil
	case "addlesson":
		return parseAddLesson(args)
	case "deletelesson":
		return parseDeleteLesson(args)
	case "lessons":
		return &LessonsCommand{}, nil
	case "help":
		return &HelpCommand{}, nil
	case "exit":
		return &ExitCommand{}, nil
	default:
		return nil, parser.NewParseError(UnknownCommandMessage)
	}
}
