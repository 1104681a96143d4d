package learning

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskmentor/store"
)

func TestContentIsWellFormed(t *testing.T) {
	require.NotEmpty(t, Courses)
	for _, c := range Courses {
		assert.NotEmpty(t, c.Name)
		require.NotEmpty(t, c.Lessons, "course %q has no lessons", c.Name)
		for _, l := range c.Lessons {
			assert.NotEmpty(t, l.Title)
			assert.NotEmpty(t, l.Content)
			require.NotEmpty(t, l.Questions, "lesson %q has no questions", l.Title)
			for _, q := range l.Questions {
				require.GreaterOrEqual(t, len(q.Options), 2, "question %q", q.Text)
				// correct letter must reference an existing option
				found := false
				for i := range q.Options {
					if OptionLetter(i) == q.Correct {
						found = true
					}
				}
				assert.True(t, found, "question %q correct answer %q out of range", q.Text, q.Correct)
			}
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, Seed(ctx, s))
	courses, err := s.Courses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, len(Courses))

	// second run must not duplicate anything
	require.NoError(t, Seed(ctx, s))
	courses, err = s.Courses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, len(Courses))

	lessons, err := s.LessonsByCourse(ctx, courses[0].ID)
	require.NoError(t, err)
	require.Len(t, lessons, len(Courses[0].Lessons))

	qs, err := s.QuestionsByLesson(ctx, lessons[0].ID)
	require.NoError(t, err)
	assert.Len(t, qs, len(Courses[0].Lessons[0].Questions))
}
