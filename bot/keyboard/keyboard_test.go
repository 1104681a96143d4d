package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskmentor/store"
)

func TestCourses(t *testing.T) {
	m := Courses([]store.Course{
		{ID: 1, Name: "Continuity disruption risk"},
		{ID: 2, Name: "Process criticality"},
	})

	require.Len(t, m.InlineKeyboard, 3) // two courses + back
	assert.Equal(t, "📘 Continuity disruption risk", m.InlineKeyboard[0][0].Text)
	assert.Contains(t, m.InlineKeyboard[0][0].Data, "1")
	assert.Equal(t, "🔙 Back", m.InlineKeyboard[2][0].Text)
}

func TestLessonsLockStates(t *testing.T) {
	states := []store.LessonState{
		{Lesson: store.Lesson{ID: 1, Title: "Basics"}, Completed: true, Available: true},
		{Lesson: store.Lesson{ID: 2, Title: "Threats"}, Available: true},
		{Lesson: store.Lesson{ID: 3, Title: "Ratings"}},
	}

	m := Lessons(states)
	require.Len(t, m.InlineKeyboard, 4)
	assert.Equal(t, "✅ Basics", m.InlineKeyboard[0][0].Text)
	assert.Equal(t, "🔓 Threats", m.InlineKeyboard[1][0].Text)
	assert.Equal(t, "🔒 Ratings", m.InlineKeyboard[2][0].Text)
	// locked lessons never carry a lesson id
	assert.NotContains(t, m.InlineKeyboard[2][0].Data, "|")
}

func TestQuestionOptions(t *testing.T) {
	q := store.Question{ID: 7, Options: []string{"one", "two", "three"}}

	m := QuestionOptions(q)
	require.Len(t, m.InlineKeyboard, 3)
	assert.Equal(t, "A. one", m.InlineKeyboard[0][0].Text)
	assert.Equal(t, "C. three", m.InlineKeyboard[2][0].Text)
	assert.Contains(t, m.InlineKeyboard[1][0].Data, "B")
	assert.Contains(t, m.InlineKeyboard[1][0].Data, "7")
}

func TestContinue(t *testing.T) {
	withNext := Continue(9)
	require.Len(t, withNext.InlineKeyboard, 3)
	assert.Equal(t, "▶️ Continue learning", withNext.InlineKeyboard[0][0].Text)

	last := Continue(0)
	require.Len(t, last.InlineKeyboard, 2)
	assert.Equal(t, "📊 My progress", last.InlineKeyboard[0][0].Text)
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "□□□□□□□□□□ 0.0%", ProgressBar(0))
	assert.Equal(t, "■■■■■□□□□□ 50.0%", ProgressBar(50))
	assert.Equal(t, "■■■■■■■■■■ 100.0%", ProgressBar(100))
	// clamped outside the range
	assert.Equal(t, "■■■■■■■■■■ 150.0%", ProgressBar(150))
}

func TestOptionLetter(t *testing.T) {
	assert.Equal(t, "A", OptionLetter(0))
	assert.Equal(t, "D", OptionLetter(3))
}
