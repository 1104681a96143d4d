package bot

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskmentor/llm"
)

func TestSessionsGetAndClear(t *testing.T) {
	ss := NewSessions()

	s := ss.Get(42)
	require.NotNil(t, s)
	assert.Equal(t, int64(42), s.ChatID)

	s.AddMessage(llm.NewTextMessage(llm.RoleUser, "hello"))
	assert.Len(t, ss.Get(42).Messages(), 1)

	// same chat returns the same session
	assert.Same(t, s, ss.Get(42))
	assert.Equal(t, 1, ss.Len())

	ss.Clear(42)
	assert.Equal(t, 0, ss.Len())
	assert.Empty(t, ss.Get(42).Messages())
}

func TestSessionsConcurrent(t *testing.T) {
	ss := NewSessions()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s := ss.Get(id % 5)
			s.AddMessage(llm.NewTextMessage(llm.RoleUser, "x"))
		}(int64(i))
	}
	wg.Wait()

	assert.Equal(t, 5, ss.Len())
}

func TestQuizActive(t *testing.T) {
	var q *Quiz
	assert.False(t, q.Active())

	q = &Quiz{LessonID: 1, Questions: []int64{10, 11, 12}}
	assert.True(t, q.Active())

	q.Index = 3
	assert.False(t, q.Active())
}
