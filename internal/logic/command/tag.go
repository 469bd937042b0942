package command

import (
	"fmt"

	"github.com/edulog-app/edulog/internal/domain/shared"
	"github.com/edulog-app/edulog/internal/domain/student"
	"github.com/edulog-app/edulog/internal/logic/parser"
	"github.com/edulog-app/edulog/internal/model"
)

// TagUsage documents the tag command.
const TagUsage = "tag: Adds tags to the student at the given index.\n" +
	"Parameters: INDEX t/TAG [t/TAG]...\n" +
	"Example: tag 2 t/oweFees t/y2026"

// TagCommand adds tags to an existing student. Students are immutable, so
// the command builds a replacement with the merged tag set.
type TagCommand struct {
	Index shared.Index
	Tags  *student.TagSet
}

func parseTag(args string) (Command, error) {
	m := parser.Tokenize(args, parser.PrefixTag)

	index, err := parser.ParseIndex(m.Preamble())
	if err != nil || len(m.AllValues(parser.PrefixTag)) == 0 {
		return nil, parser.NewParseError(fmt.Sprintf(InvalidCommandFormat, TagUsage))
	}
	tags, err := parser.ParseTags(m.AllValues(parser.PrefixTag))
	if err != nil {
		return nil, err
	}
	return &TagCommand{Index: index, Tags: tags}, nil
}

// Execute replaces the student at the index with one carrying the union of
// the old and new tags. Attendance carries over.
func (c *TagCommand) Execute(book *model.Book) (Result, error) {
	existing, err := book.Roster.Get(c.Index)
	if err != nil {
		return Result{}, err
	}

	merged := existing.Tags().Copy()
	for _, t := range c.Tags.Slice() {
		if err := merged.Add(t); err != nil {
			return Result{}, err
		}
	}

	edited, err := student.NewStudent(student.NewStudentParams{
		Name:    existing.Name(),
		Phone:   existing.Phone(),
		Email:   existing.Email(),
		Address: existing.Address(),
		Tags:    merged,
	})
	if err != nil {
		return Result{}, err
	}
	if existing.IsPresent() {
		edited.Mark()
	}

	if err := book.Roster.Set(c.Index, edited); err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Updated tags for student: %s", formatStudent(edited)),
		Mutated:  true,
	}, nil
}
