package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edulog-app/edulog/internal/domain/calendar"
)

func newTestLesson(t *testing.T, description string) *calendar.Lesson {
	t.Helper()
	d, err := calendar.NewDescription(description)
	assert.NoError(t, err)
	day, err := calendar.NewDay("mon")
	assert.NoError(t, err)
	lt, err := calendar.NewLessonTime("1630", "1800")
	assert.NoError(t, err)
	lesson, err := calendar.NewLesson(d, day, lt)
	assert.NoError(t, err)
	return lesson
}
