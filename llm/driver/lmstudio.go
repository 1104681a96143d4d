package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"riskmentor/llm"
)

// OpenAI compatible, the protocol LM Studio serves locally.

const (
	_lmstudio_endpoint = "http://localhost:1234/v1"
)

var _ llm.Provider = (*LMStudio)(nil)

type LMStudio struct {
	client   *http.Client
	endpoint string
	key      string
	model    string
}

func NewLMStudio(endpoint, key, model string) *LMStudio {
	if endpoint == "" {
		endpoint = _lmstudio_endpoint
	}
	return &LMStudio{
		client:   http.DefaultClient,
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		model:    model,
	}
}

type chatRequest struct {
	Model    string        `json:"model,omitempty"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Chat implements llm.Provider.
func (c *LMStudio) Chat(ctx context.Context, msgs []llm.Message) (string, error) {
	in := chatRequest{Model: c.model}
	for _, m := range msgs {
		in.Messages = append(in.Messages, chatMessage{Role: string(m.Role), Content: m.Text})
	}

	b, err := json.Marshal(in)
	if err != nil {
		return "", err
	}

	urlString := fmt.Sprintf("%s/chat/completions", c.endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, urlString, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("lmstudio failed create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.key != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.key))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("lmstudio error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("lmstudio returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}

// Available probes the models endpoint, used as a cheap availability
// check before falling back to canned answers.
func (c *LMStudio) Available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/models", nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Models lists the model ids the server has loaded.
func (c *LMStudio) Models(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/models", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lmstudio models: status %d", resp.StatusCode)
	}

	var out struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(out.Data))
	for _, m := range out.Data {
		ids = append(ids, m.ID)
	}
	return ids, nil
}
