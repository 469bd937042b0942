// Package sqlite provides a SQLite-backed store for the record book.
// The driver is pure Go, so the application stays a single self-contained
// binary with no external database service.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/edulog-app/edulog/internal/domain/calendar"
	"github.com/edulog-app/edulog/internal/domain/student"
	"github.com/edulog-app/edulog/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS students (
	id         TEXT PRIMARY KEY,
	position   INTEGER NOT NULL,
	name       TEXT NOT NULL UNIQUE,
	phone      TEXT NOT NULL,
	email      TEXT NOT NULL,
	address    TEXT NOT NULL,
	tags       TEXT NOT NULL DEFAULT '[]',
	is_present INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS lessons (
	id          TEXT PRIMARY KEY,
	position    INTEGER NOT NULL,
	description TEXT NOT NULL UNIQUE,
	day         TEXT NOT NULL,
	start_time  TEXT NOT NULL,
	end_time    TEXT NOT NULL
);
`

// Store persists the record book in a SQLite file.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the SQLite file at path and applies the
// schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveBook persists the whole record book, replacing the previous contents.
// A full rewrite in one transaction keeps save semantics trivial for a
// single-user desktop data set.
func (s *Store) SaveBook(ctx context.Context, book *model.Book) error {
	if book == nil {
		return fmt.Errorf("book is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM students`); err != nil {
		return fmt.Errorf("clear students: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM lessons`); err != nil {
		return fmt.Errorf("clear lessons: %w", err)
	}

	for pos, st := range book.Roster.Students() {
		tags := make([]string, 0, st.Tags().Len())
		for _, t := range st.Tags().Slice() {
			tags = append(tags, t.String())
		}
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return fmt.Errorf("marshal tags: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO students (id, position, name, phone, email, address, tags, is_present)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(),
			pos,
			st.Name().String(),
			st.Phone().String(),
			st.Email().String(),
			st.Address().String(),
			string(tagsJSON),
			boolToInt(st.IsPresent()),
		)
		if err != nil {
			return fmt.Errorf("insert student %q: %w", st.Name(), err)
		}
	}

	for pos, l := range book.Schedule.Lessons() {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO lessons (id, position, description, day, start_time, end_time)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.New().String(),
			pos,
			l.Description().String(),
			l.Day().String(),
			l.Time().Start(),
			l.Time().End(),
		)
		if err != nil {
			return fmt.Errorf("insert lesson %q: %w", l.Description(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// LoadBook reads the record book back. Stored values go through the same
// value object constructors as user input, so a corrupted file surfaces as
// an error instead of an invalid in-memory state.
func (s *Store) LoadBook(ctx context.Context) (*model.Book, error) {
	book := model.NewBook()

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT name, phone, email, address, tags, is_present
		 FROM students ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, phone, email, address, tagsJSON string
		var isPresent int
		if err := rows.Scan(&name, &phone, &email, &address, &tagsJSON, &isPresent); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		st, err := rebuildStudent(name, phone, email, address, tagsJSON, isPresent != 0)
		if err != nil {
			return nil, fmt.Errorf("corrupt student record %q: %w", name, err)
		}
		if err := book.Roster.Add(st); err != nil {
			return nil, fmt.Errorf("load student %q: %w", name, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}

	lessonRows, err := s.sqlDB.QueryContext(ctx,
		`SELECT description, day, start_time, end_time
		 FROM lessons ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query lessons: %w", err)
	}
	defer lessonRows.Close()

	for lessonRows.Next() {
		var description, day, start, end string
		if err := lessonRows.Scan(&description, &day, &start, &end); err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		lesson, err := rebuildLesson(description, day, start, end)
		if err != nil {
			return nil, fmt.Errorf("corrupt lesson record %q: %w", description, err)
		}
		if err := book.Schedule.Add(lesson); err != nil {
			return nil, fmt.Errorf("load lesson %q: %w", description, err)
		}
	}
	if err := lessonRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lessons: %w", err)
	}

	return book, nil
}

func rebuildStudent(name, phone, email, address, tagsJSON string, isPresent bool) (*student.Student, error) {
	parsedName, err := student.NewName(name)
	if err != nil {
		return nil, err
	}
	parsedPhone, err := student.NewPhone(phone)
	if err != nil {
		return nil, err
	}
	parsedEmail, err := student.NewEmail(email)
	if err != nil {
		return nil, err
	}
	parsedAddress, err := student.NewAddress(address)
	if err != nil {
		return nil, err
	}

	var rawTags []string
	if err := json.Unmarshal([]byte(tagsJSON), &rawTags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}
	tags := student.NewTagSet()
	for _, raw := range rawTags {
		tag, err := student.NewTag(raw)
		if err != nil {
			return nil, err
		}
		_ = tags.Add(tag)
	}

	st, err := student.NewStudent(student.NewStudentParams{
		Name:    parsedName,
		Phone:   parsedPhone,
		Email:   parsedEmail,
		Address: parsedAddress,
		Tags:    tags,
	})
	if err != nil {
		return nil, err
	}
	if isPresent {
		st.Mark()
	}
	return st, nil
}

func rebuildLesson(description, day, start, end string) (*calendar.Lesson, error) {
	parsedDescription, err := calendar.NewDescription(description)
	if err != nil {
		return nil, err
	}
	parsedDay, err := calendar.NewDay(day)
	if err != nil {
		return nil, err
	}
	parsedTime, err := calendar.NewLessonTime(start, end)
	if err != nil {
		return nil, err
	}
	return calendar.NewLesson(parsedDescription, parsedDay, parsedTime)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
