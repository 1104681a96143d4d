package store

import "time"

type User struct {
	ID           int64
	TelegramID   int64
	Username     string
	FirstName    string
	RegisteredAt time.Time
}

type Course struct {
	ID          int64
	Name        string
	Description string
	Position    int
}

type Lesson struct {
	ID       int64
	CourseID int64
	Title    string
	Content  string
	Position int
}

type Question struct {
	ID          int64
	LessonID    int64
	Text        string
	Options     []string
	Correct     string
	Explanation string
}

type Progress struct {
	ID        int64
	UserID    int64
	LessonID  int64
	Answered  int
	Correct   int
	Percent   float64
	Completed bool
}

// LessonState is a lesson annotated with its availability for one user.
// Lessons unlock sequentially: the very first lesson is always available,
// every other one requires the previous lesson to be completed.
type LessonState struct {
	Lesson    Lesson
	Course    Course
	Available bool
	Completed bool
}

type Stats struct {
	LessonsCompleted int
	LessonsStarted   int
	AnswersTotal     int
	AnswersCorrect   int
}
