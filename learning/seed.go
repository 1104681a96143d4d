package learning

import (
	"context"
	"fmt"
	"log/slog"

	"riskmentor/store"
)

// Seed loads the built-in courses into the store. It is a no-op when
// courses already exist, so restarting the bot never duplicates content.
func Seed(ctx context.Context, s *store.Store) error {
	exists, err := s.HasCourses(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if exists {
		slog.Debug("courses already seeded")
		return nil
	}

	for ci, c := range Courses {
		courseID, err := s.CreateCourse(ctx, c.Name, c.Description, ci+1)
		if err != nil {
			return fmt.Errorf("seed course %q: %w", c.Name, err)
		}
		for li, l := range c.Lessons {
			lessonID, err := s.CreateLesson(ctx, courseID, l.Title, l.Content, li+1)
			if err != nil {
				return fmt.Errorf("seed lesson %q: %w", l.Title, err)
			}
			for _, q := range l.Questions {
				_, err := s.CreateQuestion(ctx, store.Question{
					LessonID:    lessonID,
					Text:        q.Text,
					Options:     q.Options,
					Correct:     q.Correct,
					Explanation: q.Explanation,
				})
				if err != nil {
					return fmt.Errorf("seed question: %w", err)
				}
			}
		}
	}
	slog.Info("seeded learning content", "courses", len(Courses))
	return nil
}

// OptionLetter maps an option index to its quiz letter.
func OptionLetter(i int) string {
	return string(rune('A' + i))
}
