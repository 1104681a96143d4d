package driver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskmentor/llm"
	"riskmentor/llm/driver"
)

func TestLMStudioChat(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var gotReq struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		err := json.NewDecoder(r.Body).Decode(&gotReq)
		require.NoError(t, err)
		require.Len(t, gotReq.Messages, 2)
		assert.Equal(t, "system", gotReq.Messages[0].Role)
		assert.Equal(t, "user", gotReq.Messages[1].Role)
		assert.Equal(t, "what is rto", gotReq.Messages[1].Content)

		// ---- send mock response ----
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "recovery time objective"}},
			},
		})
	}))
	defer ts.Close()

	cli := driver.NewLMStudio(ts.URL, "test-key", "local-model")
	ctx := context.Background()

	text, err := cli.Chat(ctx, []llm.Message{
		llm.NewTextMessage(llm.RoleSystem, "you are a tutor"),
		llm.NewTextMessage(llm.RoleUser, "what is rto"),
	})
	require.NoError(t, err)
	assert.Equal(t, "recovery time objective", text)
}

func TestLMStudioChatError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	cli := driver.NewLMStudio(ts.URL, "", "")
	_, err := cli.Chat(context.Background(), []llm.Message{llm.NewTextMessage(llm.RoleUser, "hi")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestLMStudioAvailable(t *testing.T) {
	t.Run("server up", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/models", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{"data": []map[string]string{{"id": "qwen3"}}})
		}))
		defer ts.Close()

		cli := driver.NewLMStudio(ts.URL, "", "")
		assert.True(t, cli.Available(context.Background()))

		models, err := cli.Models(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"qwen3"}, models)
	})

	t.Run("server down", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		ts.Close()

		cli := driver.NewLMStudio(ts.URL, "", "")
		assert.False(t, cli.Available(context.Background()))
	})
}
