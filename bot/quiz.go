package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	tele "gopkg.in/telebot.v4"

	"riskmentor/bot/keyboard"
	"riskmentor/store"
)

// telegram rejects messages longer than this many characters.
const maxMessageLen = 4096

func (b *Bot) sendCourseList(c tele.Context) error {
	courses, err := b.store.Courses(context.Background())
	if err != nil {
		slog.Error("list courses", "error", err)
		return c.Send("service unavailable")
	}
	if len(courses) == 0 {
		return c.Send("No courses are loaded yet.")
	}
	return c.Send("Pick a course:", keyboard.Courses(courses))
}

func (b *Bot) sendProgress(c tele.Context) error {
	ctx := context.Background()
	u, err := b.user(ctx, c)
	if err != nil {
		return c.Send("service unavailable")
	}

	courses, err := b.store.Courses(ctx)
	if err != nil {
		return c.Send("service unavailable")
	}

	var sb strings.Builder
	sb.WriteString("📊 Your progress\n\n")
	for _, course := range courses {
		percent, err := b.store.CourseProgress(ctx, u.ID, course.ID)
		if err != nil {
			return c.Send("service unavailable")
		}
		fmt.Fprintf(&sb, "📘 %s\n%s\n\n", course.Name, keyboard.ProgressBar(percent))
	}

	st, err := b.store.UserStats(ctx, u.ID)
	if err != nil {
		return c.Send("service unavailable")
	}
	fmt.Fprintf(&sb, "Lessons completed: %d of %d started\n", st.LessonsCompleted, st.LessonsStarted)
	if st.AnswersTotal > 0 {
		fmt.Fprintf(&sb, "Answers: %d correct of %d", st.AnswersCorrect, st.AnswersTotal)
	}
	return c.Send(sb.String())
}

func (b *Bot) onCourse(c tele.Context) error {
	defer c.Respond()
	ctx := context.Background()

	courseID, err := callbackID(c, 0)
	if err != nil {
		return err
	}
	u, err := b.user(ctx, c)
	if err != nil {
		return c.Send("service unavailable")
	}

	course, err := b.store.Course(ctx, courseID)
	if err != nil {
		return c.Send("service unavailable")
	}

	states, err := b.store.AvailableLessons(ctx, u.ID)
	if err != nil {
		return c.Send("service unavailable")
	}
	var inCourse []store.LessonState
	for _, st := range states {
		if st.Course.ID == courseID {
			inCourse = append(inCourse, st)
		}
	}

	text := fmt.Sprintf("📘 %s\n\n%s\n\nPick a lesson:", course.Name, course.Description)
	return c.Edit(text, keyboard.Lessons(inCourse))
}

func (b *Bot) onLesson(c tele.Context) error {
	defer c.Respond()
	ctx := context.Background()

	lessonID, err := callbackID(c, 0)
	if err != nil {
		return err
	}
	lesson, err := b.store.Lesson(ctx, lessonID)
	if err != nil {
		return c.Send("service unavailable")
	}

	u, err := b.user(ctx, c)
	if err != nil {
		return c.Send("service unavailable")
	}
	if _, err := b.store.GetOrCreateProgress(ctx, u.ID, lessonID); err != nil {
		return c.Send("service unavailable")
	}

	if err := sendChunked(c, fmt.Sprintf("📖 %s\n\n%s", lesson.Title, lesson.Content)); err != nil {
		return err
	}
	return c.Send("Ready to check yourself?", keyboard.StartQuiz(lessonID))
}

func (b *Bot) onLocked(c tele.Context) error {
	return c.Respond(&tele.CallbackResponse{
		Text: "🔒 Complete the previous lesson to unlock this one.",
	})
}

func (b *Bot) onStartQuiz(c tele.Context) error {
	defer c.Respond()
	ctx := context.Background()

	lessonID, err := callbackID(c, 0)
	if err != nil {
		return err
	}
	u, err := b.user(ctx, c)
	if err != nil {
		return c.Send("service unavailable")
	}

	questions, err := b.store.QuestionsByLesson(ctx, lessonID)
	if err != nil {
		return c.Send("service unavailable")
	}
	if len(questions) == 0 {
		return c.Send("This lesson has no quiz, it counts as completed.")
	}
	if len(questions) > b.questions {
		questions = questions[:b.questions]
	}

	// retaking an unfinished quiz starts the counters over
	if err := b.store.ResetLesson(ctx, u.ID, lessonID); err != nil {
		return c.Send("service unavailable")
	}

	ids := make([]int64, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	sess := b.sessions.Get(c.Chat().ID)
	sess.Quiz = &Quiz{LessonID: lessonID, Questions: ids}

	return b.sendQuestion(c, sess, &questions[0])
}

func (b *Bot) sendQuestion(c tele.Context, sess *Session, q *store.Question) error {
	text := fmt.Sprintf("❓ Question %d of %d\n\n%s",
		sess.Quiz.Index+1, len(sess.Quiz.Questions), q.Text)
	return c.Send(text, keyboard.QuestionOptions(*q))
}

func (b *Bot) onAnswer(c tele.Context) error {
	defer c.Respond()
	ctx := context.Background()

	questionID, err := callbackID(c, 0)
	if err != nil {
		return err
	}
	args := c.Args()
	if len(args) < 2 {
		return errors.New("answer callback missing option letter")
	}
	letter := args[1]

	sess := b.sessions.Get(c.Chat().ID)
	if !sess.Quiz.Active() {
		return c.Send("No quiz is running. Pick a lesson from 📚 Learning.")
	}

	q, err := b.store.Question(ctx, questionID)
	if err != nil {
		return c.Send("service unavailable")
	}
	u, err := b.user(ctx, c)
	if err != nil {
		return c.Send("service unavailable")
	}

	correct := letter == q.Correct
	if err := b.store.SaveAnswer(ctx, u.ID, q, letter, correct); err != nil {
		return c.Send("service unavailable")
	}
	b.quizAnswers.Add(ctx, 1, metric.WithAttributes(attribute.Bool("correct", correct)))

	first := sess.Quiz.Index == 0
	if correct {
		sess.Quiz.Correct++
		_ = sendCorrectSticker(c, first)
	} else {
		_ = sendWrongSticker(c, first)
		if q.Explanation != "" {
			_ = c.Send("💡 " + q.Explanation)
		}
	}

	sess.Quiz.Index++
	if sess.Quiz.Active() {
		next, err := b.store.Question(ctx, sess.Quiz.Questions[sess.Quiz.Index])
		if err != nil {
			return c.Send("service unavailable")
		}
		return b.sendQuestion(c, sess, next)
	}
	return b.finishQuiz(c, sess, u.ID)
}

// finishQuiz grades the whole lesson against the pass threshold and
// stores the outcome, unlocking the next lesson on success.
func (b *Bot) finishQuiz(c tele.Context, sess *Session, userID int64) error {
	ctx := context.Background()
	quiz := sess.Quiz
	sess.Quiz = nil

	percent := float64(quiz.Correct) / float64(len(quiz.Questions)) * 100
	passed := percent >= b.threshold

	if err := b.store.FinishLesson(ctx, userID, quiz.LessonID, percent, passed); err != nil {
		return c.Send("service unavailable")
	}

	if !passed {
		_ = sendLessonFailSticker(c)
		text := fmt.Sprintf("Result: %d of %d (%.0f%%). You need %.0f%% to pass.",
			quiz.Correct, len(quiz.Questions), percent, b.threshold)
		return c.Send(text, keyboard.Retry(quiz.LessonID))
	}

	next, err := b.store.NextLesson(ctx, quiz.LessonID)
	switch {
	case err == nil:
		_ = sendLessonSuccessSticker(c)
		text := fmt.Sprintf("Result: %d of %d (%.0f%%). Lesson completed, the next one is unlocked!",
			quiz.Correct, len(quiz.Questions), percent)
		return c.Send(text, keyboard.Continue(next.ID))

	case errors.Is(err, store.ErrNotFound):
		// last lesson of the course
		_ = sendCourseSuccessSticker(c)
		text := fmt.Sprintf("Result: %d of %d (%.0f%%). You finished the course!",
			quiz.Correct, len(quiz.Questions), percent)
		return c.Send(text, keyboard.Continue(0))

	default:
		return c.Send("service unavailable")
	}
}

func (b *Bot) onProgressButton(c tele.Context) error {
	defer c.Respond()
	return b.sendProgress(c)
}

func (b *Bot) onBackToMain(c tele.Context) error {
	defer c.Respond()
	return c.Send("Main menu:", keyboard.MainMenu())
}

func (b *Bot) onBackToCourses(c tele.Context) error {
	defer c.Respond()
	return b.sendCourseList(c)
}

func (b *Bot) user(ctx context.Context, c tele.Context) (*store.User, error) {
	sender := c.Sender()
	u, err := b.store.GetOrCreateUser(ctx, sender.ID, sender.Username, sender.FirstName)
	if err != nil {
		slog.Error("load user", "error", err)
	}
	return u, err
}

func callbackID(c tele.Context, pos int) (int64, error) {
	args := c.Args()
	if len(args) <= pos {
		return 0, fmt.Errorf("callback data missing argument %d", pos)
	}
	return strconv.ParseInt(args[pos], 10, 64)
}

// sendChunked splits long lesson content on paragraph boundaries so each
// message stays under the telegram limit.
func sendChunked(c tele.Context, text string) error {
	for _, chunk := range splitMessage(text, maxMessageLen) {
		if err := c.Send(chunk); err != nil {
			return err
		}
	}
	return nil
}

func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var cur strings.Builder
	for _, para := range strings.Split(text, "\n\n") {
		// paragraph alone over the limit gets hard-split
		for len(para) > limit {
			if cur.Len() > 0 {
				chunks = append(chunks, cur.String())
				cur.Reset()
			}
			chunks = append(chunks, para[:limit])
			para = para[limit:]
		}
		if cur.Len()+len(para)+2 > limit {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteString("\n\n")
		}
		cur.WriteString(para)
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}
