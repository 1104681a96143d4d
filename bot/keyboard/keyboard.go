// Package keyboard builds the reply and inline keyboards of the bot.
package keyboard

import (
	"fmt"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"

	"riskmentor/store"
)

// Main menu reply-button labels. The text handler routes on these.
const (
	LabelLearning = "📚 Learning"
	LabelProgress = "📊 My progress"
	LabelHelp     = "ℹ️ Help"
)

// Static callback buttons. Handlers register on the unique, the payload
// rides in the button data.
var (
	BtnCourse       = tele.Btn{Unique: "course"}
	BtnLesson       = tele.Btn{Unique: "lesson"}
	BtnLocked       = tele.Btn{Unique: "lesson_locked"}
	BtnStartQuiz    = tele.Btn{Unique: "start_quiz"}
	BtnAnswer       = tele.Btn{Unique: "answer"}
	BtnProgress     = tele.Btn{Unique: "progress"}
	BtnBackToMain   = tele.Btn{Unique: "back_main"}
	BtnBackToCourse = tele.Btn{Unique: "back_courses"}
)

// MainMenu is the persistent reply keyboard shown after /start.
func MainMenu() *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{ResizeKeyboard: true}
	m.Reply(
		m.Row(m.Text(LabelLearning)),
		m.Row(m.Text(LabelProgress), m.Text(LabelHelp)),
	)
	return m
}

// Courses lists every course as an inline button.
func Courses(courses []store.Course) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(courses)+1)
	for _, c := range courses {
		rows = append(rows, m.Row(
			m.Data("📘 "+c.Name, BtnCourse.Unique, strconv.FormatInt(c.ID, 10)),
		))
	}
	rows = append(rows, m.Row(m.Data("🔙 Back", BtnBackToMain.Unique)))
	m.Inline(rows...)
	return m
}

// Lessons lists the lessons of one course with a lock status. Locked
// lessons route to an advisory callback instead of the lesson itself.
func Lessons(states []store.LessonState) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(states)+1)
	for _, st := range states {
		var btn tele.Btn
		switch {
		case st.Completed:
			btn = m.Data("✅ "+st.Lesson.Title, BtnLesson.Unique, strconv.FormatInt(st.Lesson.ID, 10))
		case st.Available:
			btn = m.Data("🔓 "+st.Lesson.Title, BtnLesson.Unique, strconv.FormatInt(st.Lesson.ID, 10))
		default:
			btn = m.Data("🔒 "+st.Lesson.Title, BtnLocked.Unique)
		}
		rows = append(rows, m.Row(btn))
	}
	rows = append(rows, m.Row(m.Data("🔙 To courses", BtnBackToCourse.Unique)))
	m.Inline(rows...)
	return m
}

// StartQuiz is the single-button prompt shown after the lesson content.
func StartQuiz(lessonID int64) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(m.Row(
		m.Data("✅ Start quiz", BtnStartQuiz.Unique, strconv.FormatInt(lessonID, 10)),
	))
	return m
}

// QuestionOptions labels each option A, B, C... and carries the question
// id with the chosen letter.
func QuestionOptions(q store.Question) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(q.Options))
	for i, opt := range q.Options {
		letter := OptionLetter(i)
		rows = append(rows, m.Row(m.Data(
			fmt.Sprintf("%s. %s", letter, opt),
			BtnAnswer.Unique,
			strconv.FormatInt(q.ID, 10), letter,
		)))
	}
	m.Inline(rows...)
	return m
}

// Continue is shown after a quiz result. nextLessonID 0 means there is
// no follow-up lesson to offer.
func Continue(nextLessonID int64) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	var rows []tele.Row
	if nextLessonID != 0 {
		rows = append(rows, m.Row(
			m.Data("▶️ Continue learning", BtnLesson.Unique, strconv.FormatInt(nextLessonID, 10)),
		))
	}
	rows = append(rows,
		m.Row(m.Data("📊 My progress", BtnProgress.Unique)),
		m.Row(m.Data("🏠 Main menu", BtnBackToMain.Unique)),
	)
	m.Inline(rows...)
	return m
}

// Retry offers to retake a failed lesson quiz.
func Retry(lessonID int64) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(m.Data("🔁 Try again", BtnLesson.Unique, strconv.FormatInt(lessonID, 10))),
		m.Row(m.Data("🏠 Main menu", BtnBackToMain.Unique)),
	)
	return m
}

// ProgressBar renders a text bar like "■■■□□□□□□□ 30.0%".
func ProgressBar(percent float64) string {
	const width = 10
	filled := int(width * percent / 100)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return fmt.Sprintf("%s%s %.1f%%",
		strings.Repeat("■", filled),
		strings.Repeat("□", width-filled),
		percent,
	)
}

// OptionLetter maps an option index to its label, A for 0.
func OptionLetter(i int) string {
	return string(rune('A' + i))
}
