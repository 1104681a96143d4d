package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("not found")

func (s *Store) GetOrCreateUser(ctx context.Context, telegramID int64, username, firstName string) (*User, error) {
	u := User{TelegramID: telegramID, Username: username, FirstName: firstName}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, first_name, registered_at FROM users WHERE telegram_id = ?`,
		telegramID,
	).Scan(&u.ID, &u.Username, &u.FirstName, &u.RegisteredAt)
	if err == nil {
		return &u, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("query user: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (telegram_id, username, first_name) VALUES (?, ?, ?)`,
		telegramID, username, firstName,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	u.ID, _ = res.LastInsertId()
	u.RegisteredAt = time.Now()
	return &u, nil
}

func (s *Store) CreateCourse(ctx context.Context, name, description string, position int) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO courses (name, description, position) VALUES (?, ?, ?)`,
		name, description, position,
	)
	if err != nil {
		return 0, fmt.Errorf("insert course: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) Courses(ctx context.Context) ([]Course, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, position FROM courses ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	var out []Course
	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Position); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) Course(ctx context.Context, id int64) (*Course, error) {
	var c Course
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, position FROM courses WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.Description, &c.Position)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) CreateLesson(ctx context.Context, courseID int64, title, content string, position int) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO lessons (course_id, title, content, position) VALUES (?, ?, ?, ?)`,
		courseID, title, content, position,
	)
	if err != nil {
		return 0, fmt.Errorf("insert lesson: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) LessonsByCourse(ctx context.Context, courseID int64) ([]Lesson, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, course_id, title, content, position FROM lessons WHERE course_id = ? ORDER BY position`,
		courseID)
	if err != nil {
		return nil, fmt.Errorf("query lessons: %w", err)
	}
	defer rows.Close()

	var out []Lesson
	for rows.Next() {
		var l Lesson
		if err := rows.Scan(&l.ID, &l.CourseID, &l.Title, &l.Content, &l.Position); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *Store) Lesson(ctx context.Context, id int64) (*Lesson, error) {
	var l Lesson
	err := s.db.QueryRowContext(ctx,
		`SELECT id, course_id, title, content, position FROM lessons WHERE id = ?`, id,
	).Scan(&l.ID, &l.CourseID, &l.Title, &l.Content, &l.Position)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// NextLesson returns the lesson following id within the same course, or
// ErrNotFound when id is the last one.
func (s *Store) NextLesson(ctx context.Context, id int64) (*Lesson, error) {
	cur, err := s.Lesson(ctx, id)
	if err != nil {
		return nil, err
	}

	var l Lesson
	err = s.db.QueryRowContext(ctx,
		`SELECT id, course_id, title, content, position FROM lessons
		 WHERE course_id = ? AND position > ? ORDER BY position LIMIT 1`,
		cur.CourseID, cur.Position,
	).Scan(&l.ID, &l.CourseID, &l.Title, &l.Content, &l.Position)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Store) CreateQuestion(ctx context.Context, q Question) (int64, error) {
	opts, err := json.Marshal(q.Options)
	if err != nil {
		return 0, fmt.Errorf("encode options: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO questions (lesson_id, text, options, correct_answer, explanation) VALUES (?, ?, ?, ?, ?)`,
		q.LessonID, q.Text, string(opts), q.Correct, q.Explanation,
	)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) QuestionsByLesson(ctx context.Context, lessonID int64) ([]Question, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, lesson_id, text, options, correct_answer, explanation FROM questions WHERE lesson_id = ? ORDER BY id`,
		lessonID)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var out []Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *q)
	}
	return out, rows.Err()
}

func (s *Store) Question(ctx context.Context, id int64) (*Question, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, lesson_id, text, options, correct_answer, explanation FROM questions WHERE id = ?`, id)
	q, err := scanQuestion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row scanner) (*Question, error) {
	var q Question
	var opts string
	var expl sql.NullString
	if err := row.Scan(&q.ID, &q.LessonID, &q.Text, &opts, &q.Correct, &expl); err != nil {
		return nil, err
	}
	q.Explanation = expl.String
	if err := json.Unmarshal([]byte(opts), &q.Options); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}
	return &q, nil
}

func (s *Store) GetOrCreateProgress(ctx context.Context, userID, lessonID int64) (*Progress, error) {
	p := Progress{UserID: userID, LessonID: lessonID}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, answered, correct, percent, completed FROM user_progress WHERE user_id = ? AND lesson_id = ?`,
		userID, lessonID,
	).Scan(&p.ID, &p.Answered, &p.Correct, &p.Percent, &p.Completed)
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("query progress: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO user_progress (user_id, lesson_id) VALUES (?, ?)`, userID, lessonID)
	if err != nil {
		return nil, fmt.Errorf("insert progress: %w", err)
	}
	p.ID, _ = res.LastInsertId()
	return &p, nil
}

// SaveAnswer records one answered question and bumps the progress
// counters for the lesson.
func (s *Store) SaveAnswer(ctx context.Context, userID int64, q *Question, answer string, correct bool) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO user_answers (user_id, question_id, answer, is_correct) VALUES (?, ?, ?, ?)`,
		userID, q.ID, answer, correct,
	); err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}

	inc := 0
	if correct {
		inc = 1
	}
	if _, err := s.db.ExecContext(ctx,
		`UPDATE user_progress SET answered = answered + 1, correct = correct + ? WHERE user_id = ? AND lesson_id = ?`,
		inc, userID, q.LessonID,
	); err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}

// FinishLesson stores the quiz outcome. A passing percent marks the
// lesson completed, which unlocks the next one.
func (s *Store) FinishLesson(ctx context.Context, userID, lessonID int64, percent float64, passed bool) error {
	var completedAt any
	if passed {
		completedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE user_progress SET percent = ?, completed = ?, completed_at = ? WHERE user_id = ? AND lesson_id = ?`,
		percent, passed, completedAt, userID, lessonID,
	)
	if err != nil {
		return fmt.Errorf("finish lesson: %w", err)
	}
	return nil
}

// ResetLesson clears the per-question counters so a failed quiz can be
// retaken from scratch.
func (s *Store) ResetLesson(ctx context.Context, userID, lessonID int64) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE user_progress SET answered = 0, correct = 0, percent = 0 WHERE user_id = ? AND lesson_id = ? AND completed = 0`,
		userID, lessonID,
	)
	if err != nil {
		return fmt.Errorf("reset lesson: %w", err)
	}
	return nil
}

// AvailableLessons lists every lesson in course and lesson order with its
// availability for the user.
func (s *Store) AvailableLessons(ctx context.Context, userID int64) ([]LessonState, error) {
	courses, err := s.Courses(ctx)
	if err != nil {
		return nil, err
	}

	var out []LessonState
	prevCompleted := true // first lesson overall is always open
	for _, c := range courses {
		lessons, err := s.LessonsByCourse(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		for _, l := range lessons {
			completed, err := s.lessonCompleted(ctx, userID, l.ID)
			if err != nil {
				return nil, err
			}
			out = append(out, LessonState{
				Lesson:    l,
				Course:    c,
				Available: prevCompleted || completed,
				Completed: completed,
			})
			prevCompleted = completed
		}
	}
	return out, nil
}

func (s *Store) lessonCompleted(ctx context.Context, userID, lessonID int64) (bool, error) {
	var completed bool
	err := s.db.QueryRowContext(ctx,
		`SELECT completed FROM user_progress WHERE user_id = ? AND lesson_id = ?`,
		userID, lessonID,
	).Scan(&completed)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return completed, err
}

// CourseProgress is the percentage of completed lessons in the course.
func (s *Store) CourseProgress(ctx context.Context, userID, courseID int64) (float64, error) {
	var total, done int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN p.completed = 1 THEN 1 ELSE 0 END), 0)
		 FROM lessons l
		 LEFT JOIN user_progress p ON p.lesson_id = l.id AND p.user_id = ?
		 WHERE l.course_id = ?`,
		userID, courseID,
	).Scan(&total, &done)
	if err != nil {
		return 0, fmt.Errorf("course progress: %w", err)
	}
	if total == 0 {
		return 0, nil
	}
	return float64(done) / float64(total) * 100, nil
}

func (s *Store) UserStats(ctx context.Context, userID int64) (*Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(completed), 0) FROM user_progress WHERE user_id = ?`,
		userID,
	).Scan(&st.LessonsStarted, &st.LessonsCompleted)
	if err != nil {
		return nil, fmt.Errorf("stats progress: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(is_correct), 0) FROM user_answers WHERE user_id = ?`,
		userID,
	).Scan(&st.AnswersTotal, &st.AnswersCorrect)
	if err != nil {
		return nil, fmt.Errorf("stats answers: %w", err)
	}
	return &st, nil
}

// HasCourses reports whether any course exists, used to keep seeding
// idempotent.
func (s *Store) HasCourses(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}
