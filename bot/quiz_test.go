package bot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessage(t *testing.T) {
	t.Run("short text stays whole", func(t *testing.T) {
		chunks := splitMessage("hello", maxMessageLen)
		assert.Equal(t, []string{"hello"}, chunks)
	})

	t.Run("splits on paragraphs", func(t *testing.T) {
		a := strings.Repeat("a", 60)
		b := strings.Repeat("b", 60)
		chunks := splitMessage(a+"\n\n"+b, 100)
		require.Len(t, chunks, 2)
		assert.Equal(t, a, chunks[0])
		assert.Equal(t, b, chunks[1])
	})

	t.Run("hard splits an oversized paragraph", func(t *testing.T) {
		text := strings.Repeat("x", 250)
		chunks := splitMessage(text, 100)
		require.Len(t, chunks, 3)
		for _, c := range chunks {
			assert.LessOrEqual(t, len(c), 100)
		}
		assert.Equal(t, text, strings.Join(chunks, ""))
	})

	t.Run("nothing over the limit", func(t *testing.T) {
		paras := []string{
			strings.Repeat("a", 90),
			strings.Repeat("b", 40),
			strings.Repeat("c", 40),
			strings.Repeat("d", 90),
		}
		chunks := splitMessage(strings.Join(paras, "\n\n"), 100)
		for _, c := range chunks {
			assert.LessOrEqual(t, len(c), 100)
		}
	})
}
