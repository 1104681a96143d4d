package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)
	assert.Greater(t, b.Len(), 0)
}

func TestLoadFile(t *testing.T) {
	t.Run("valid jsonl", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kb.jsonl")
		content := `{"prompt": "p1", "completion": "c1"}` + "\n\n" + `{"prompt": "p2", "completion": "c2"}` + "\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		b, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 2, b.Len())
	})

	t.Run("bad line reports its number", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kb.jsonl")
		require.NoError(t, os.WriteFile(path, []byte("{\"prompt\": \"ok\"}\nnot-json\n"), 0o644))

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.jsonl"))
		require.Error(t, err)
	})
}

func TestRelevant(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	t.Run("rto question surfaces the rto entry", func(t *testing.T) {
		matched := b.Relevant("What does RTO mean for recovery?", 3)
		require.NotEmpty(t, matched)
		assert.Contains(t, matched[0].Completion, "Recovery Time Objective")
	})

	t.Run("unrelated question matches nothing", func(t *testing.T) {
		matched := b.Relevant("zzzz qqqq xxxx", 3)
		assert.Empty(t, matched)
	})

	t.Run("limit respected", func(t *testing.T) {
		matched := b.Relevant("What is the risk of a continuity threat disruption?", 2)
		assert.LessOrEqual(t, len(matched), 2)
	})
}

func TestBuildPrompt(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	t.Run("with matches", func(t *testing.T) {
		p := b.BuildPrompt("What is MTPD?")
		assert.Contains(t, p, "Reference material:")
		assert.Contains(t, p, "Maximum Tolerable Period")
		assert.Contains(t, p, "Question: What is MTPD?")
	})

	t.Run("without matches falls back to the bare question", func(t *testing.T) {
		p := b.BuildPrompt("zzzz qqqq")
		assert.Equal(t, "zzzz qqqq", p)
	})
}
