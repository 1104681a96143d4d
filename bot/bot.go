package bot

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	tele "gopkg.in/telebot.v4"

	"riskmentor/bot/keyboard"
	"riskmentor/config"
	"riskmentor/knowledge"
	"riskmentor/llm"
	"riskmentor/store"
)

// Deps are the backends the bot talks to.
type Deps struct {
	Store     *store.Store
	Provider  llm.Provider
	Knowledge *knowledge.Base
}

// availabilityChecker is implemented by providers that can be probed
// cheaply before sending a chat request.
type availabilityChecker interface {
	Available(ctx context.Context) bool
}

type Bot struct {
	api      *tele.Bot
	store    *store.Store
	provider llm.Provider
	kb       *knowledge.Base
	sessions *Sessions

	threshold float64
	questions int

	messagesTotal metric.Int64Counter
	quizAnswers   metric.Int64Counter
	aiRequests    metric.Int64Counter
}

func New(cfg *config.Config, deps Deps) (*Bot, error) {
	setting := tele.Settings{
		Token:  cfg.Telegram.Token,
		Poller: &tele.LongPoller{Timeout: cfg.Telegram.Timeout},
	}
	api, err := tele.NewBot(setting)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}

	b := &Bot{
		api:       api,
		store:     deps.Store,
		provider:  deps.Provider,
		kb:        deps.Knowledge,
		sessions:  NewSessions(),
		threshold: cfg.Learning.Threshold,
		questions: cfg.Learning.Questions,
	}
	if err := b.setupMetrics(); err != nil {
		return nil, err
	}
	b.register()
	return b, nil
}

func (b *Bot) setupMetrics() error {
	meter := otel.Meter("riskmentor_bot_meter")

	var err error
	if b.messagesTotal, err = meter.Int64Counter(
		"riskmentor_bot_messages_total",
		metric.WithDescription("Incoming telegram updates handled"),
	); err != nil {
		return err
	}
	if b.quizAnswers, err = meter.Int64Counter(
		"riskmentor_quiz_answers_total",
		metric.WithDescription("Quiz answers graded"),
	); err != nil {
		return err
	}
	if b.aiRequests, err = meter.Int64Counter(
		"riskmentor_ai_requests_total",
		metric.WithDescription("Free-text questions routed to the model"),
	); err != nil {
		return err
	}
	return nil
}

func (b *Bot) register() {
	b.api.Handle("/start", b.handleStart)
	b.api.Handle("/help", b.handleHelp)
	b.api.Handle("/clear", b.handleClear)
	b.api.Handle(tele.OnText, b.handleText)

	b.api.Handle(&keyboard.BtnCourse, b.onCourse)
	b.api.Handle(&keyboard.BtnLesson, b.onLesson)
	b.api.Handle(&keyboard.BtnLocked, b.onLocked)
	b.api.Handle(&keyboard.BtnStartQuiz, b.onStartQuiz)
	b.api.Handle(&keyboard.BtnAnswer, b.onAnswer)
	b.api.Handle(&keyboard.BtnProgress, b.onProgressButton)
	b.api.Handle(&keyboard.BtnBackToMain, b.onBackToMain)
	b.api.Handle(&keyboard.BtnBackToCourse, b.onBackToCourses)
}

// Start blocks polling updates until Stop is called.
func (b *Bot) Start() {
	b.api.Start()
}

func (b *Bot) Stop() {
	b.api.Stop()
}
