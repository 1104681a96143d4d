package bot

import (
	"sync"
	"time"

	"riskmentor/llm"
)

// Quiz tracks one running lesson quiz for a chat.
type Quiz struct {
	LessonID  int64
	Questions []int64
	Index     int
	Correct   int
}

// Active reports whether there are questions left to answer.
func (q *Quiz) Active() bool {
	return q != nil && q.Index < len(q.Questions)
}

// Session is the per-chat state: the running quiz, if any, and the chat
// history sent to the model on free-text questions.
type Session struct {
	ChatID  int64
	Quiz    *Quiz
	history []llm.Message
	updated time.Time
}

func (s *Session) AddMessage(msg llm.Message) {
	s.history = append(s.history, msg)
	s.updated = time.Now()
}

func (s *Session) Messages() []llm.Message {
	return s.history
}

func (s *Session) ClearHistory() {
	s.history = nil
}

// Sessions caches per-chat state in memory. Safe for concurrent use by
// the poller goroutines.
type Sessions struct {
	mu sync.Mutex
	m  map[int64]*Session
}

func NewSessions() *Sessions {
	return &Sessions{m: map[int64]*Session{}}
}

// Get returns the session for the chat, creating it if needed.
func (ss *Sessions) Get(chatID int64) *Session {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	s, ok := ss.m[chatID]
	if !ok {
		s = &Session{ChatID: chatID, updated: time.Now()}
		ss.m[chatID] = s
	}
	return s
}

func (ss *Sessions) Clear(chatID int64) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.m, chatID)
}

func (ss *Sessions) Len() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return len(ss.m)
}
