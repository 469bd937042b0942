package model

// Book is the whole record book: every student and every scheduled lesson.
// It is the unit the storage layer saves and loads.
type Book struct {
	Roster   *Roster
	Schedule *Schedule
}

// NewBook creates an empty record book.
func NewBook() *Book {
	return &Book{
		Roster:   NewRoster(),
		Schedule: NewSchedule(),
	}
}
