package command

import (
	"fmt"

	"github.com/edulog-app/edulog/internal/domain/student"
	"github.com/edulog-app/edulog/internal/logic/parser"
	"github.com/edulog-app/edulog/internal/model"
)

// AddUsage documents the add command.
const AddUsage = "add: Adds a student to the record book.\n" +
	"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]...\n" +
	"Example: add n/John Doe p/98765432 e/johnd@example.com a/311 Clementi Ave 2 t/beginner"

// AddCommand adds a new student to the roster.
type AddCommand struct {
	Student *student.Student
}

// parseAdd builds an AddCommand from raw argument text.
func parseAdd(args string) (Command, error) {
	m := parser.Tokenize(args,
		parser.PrefixName, parser.PrefixPhone, parser.PrefixEmail,
		parser.PrefixAddress, parser.PrefixTag)

	rawName, okName := m.Value(parser.PrefixName)
	rawPhone, okPhone := m.Value(parser.PrefixPhone)
	rawEmail, okEmail := m.Value(parser.PrefixEmail)
	rawAddress, okAddress := m.Value(parser.PrefixAddress)
	if !okName || !okPhone || !okEmail || !okAddress || m.Preamble() != "" {
		return nil, parser.NewParseError(fmt.Sprintf(InvalidCommandFormat, AddUsage))
	}

	name, err := parser.ParseName(rawName)
	if err != nil {
		return nil, err
	}
	phone, err := parser.ParsePhone(rawPhone)
	if err != nil {
		return nil, err
	}
	email, err := parser.ParseEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	address, err := parser.ParseAddress(rawAddress)
	if err != nil {
		return nil, err
	}
	tags, err := parser.ParseTags(m.AllValues(parser.PrefixTag))
	if err != nil {
		return nil, err
	}

	s, err := student.NewStudent(student.NewStudentParams{
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
		Tags:    tags,
	})
	if err != nil {
		return nil, err
	}
	return &AddCommand{Student: s}, nil
}

// Execute adds the student, rejecting duplicates by name identity.
func (c *AddCommand) Execute(book *model.Book) (Result, error) {
	if err := book.Roster.Add(c.Student); err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("New student added: %s", formatStudent(c.Student)),
		Mutated:  true,
	}, nil
}
