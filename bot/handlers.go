package bot

import (
	"context"
	"fmt"
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"riskmentor/bot/keyboard"
	"riskmentor/config"
	"riskmentor/llm"
)

const systemPrompt = "You are an expert on business continuity risk in financial " +
	"organizations. Answer clearly and professionally. Use the reference material " +
	"when it is provided; otherwise answer from general knowledge of continuity risk."

const helpText = `I am a training bot for business continuity risk.

📚 Learning — pick a course and work through its lessons. Every lesson
ends with a short quiz; passing it unlocks the next lesson.

📊 My progress — completion per course and your answer statistics.

You can also just type a question about continuity risk and I will try
to answer it from the training material.

/clear resets the chat context.`

// RunBot wires the handlers and polls telegram until ctx is cancelled.
func RunBot(ctx context.Context, cfg *config.Config, deps Deps) error {
	b, err := New(cfg, deps)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		b.Start()
	}()
	slog.Info("bot started", "username", b.api.Me.Username)

	<-ctx.Done()
	b.Stop()
	<-done
	return nil
}

func (b *Bot) handleStart(c tele.Context) error {
	b.messagesTotal.Add(context.Background(), 1)

	sender := c.Sender()
	u, err := b.store.GetOrCreateUser(context.Background(), sender.ID, sender.Username, sender.FirstName)
	if err != nil {
		slog.Error("register user", "error", err)
		return c.Send("service unavailable")
	}
	slog.Debug("got /start", "user_id", u.ID)

	_ = sendWelcomeSticker(c)
	return c.Send(
		fmt.Sprintf("Hello, %s! Pick a section below to begin.", sender.FirstName),
		keyboard.MainMenu(),
	)
}

func (b *Bot) handleHelp(c tele.Context) error {
	b.messagesTotal.Add(context.Background(), 1)
	return c.Send(helpText, keyboard.MainMenu())
}

func (b *Bot) handleClear(c tele.Context) error {
	b.messagesTotal.Add(context.Background(), 1)
	b.sessions.Clear(c.Chat().ID)
	return c.Send("context cleared")
}

// handleText routes the main menu labels and treats everything else as a
// free-text question for the model.
func (b *Bot) handleText(c tele.Context) error {
	b.messagesTotal.Add(context.Background(), 1)

	switch c.Text() {
	case keyboard.LabelLearning:
		return b.sendCourseList(c)
	case keyboard.LabelProgress:
		return b.sendProgress(c)
	case keyboard.LabelHelp:
		return b.handleHelp(c)
	}

	sess := b.sessions.Get(c.Chat().ID)
	if sess.Quiz.Active() {
		return c.Send("Finish the current quiz first, or use /clear to abandon it.")
	}
	return b.answerQuestion(c, sess, c.Text())
}

// answerQuestion asks the model with the knowledge-grounded prompt,
// falling back to canned answers when the backend is unreachable.
func (b *Bot) answerQuestion(c tele.Context, sess *Session, question string) error {
	ctx := context.Background()

	if probe, ok := b.provider.(availabilityChecker); ok && !probe.Available(ctx) {
		b.aiRequests.Add(ctx, 1)
		slog.Debug("model backend unavailable, using fallback answer")
		return c.Send(fallbackAnswer(question))
	}

	if len(sess.Messages()) == 0 {
		sess.AddMessage(llm.NewTextMessage(llm.RoleSystem, systemPrompt))
	}
	sess.AddMessage(llm.NewTextMessage(llm.RoleUser, b.kb.BuildPrompt(question)))

	b.aiRequests.Add(ctx, 1)
	reply, err := b.provider.Chat(ctx, sess.Messages())
	if err != nil {
		slog.Error("chat request failed", "error", err)
		return c.Send(fallbackAnswer(question))
	}

	reply = llm.StripThink(reply)
	sess.AddMessage(llm.NewTextMessage(llm.RoleAssistant, reply))
	return sendChunked(c, reply)
}
