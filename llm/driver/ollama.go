package driver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	ollama "github.com/ollama/ollama/api"

	"riskmentor/llm"
)

const (
	_ollama_domain = "http://127.0.0.1:11434"
)

var _ llm.Provider = (*OllamaAPI)(nil)

type OllamaAPI struct {
	model string
	c     *ollama.Client
}

func NewOllamaAdapter(endpoint, model string) (*OllamaAPI, error) {
	if model == "" {
		return nil, fmt.Errorf("ollama_adapter model cannot be empty")
	}
	if endpoint == "" {
		endpoint = _ollama_domain
	}
	oUrl, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	cli := ollama.NewClient(oUrl, http.DefaultClient)
	return &OllamaAPI{model: model, c: cli}, nil
}

// Chat implements llm.Provider.
func (oapi *OllamaAPI) Chat(ctx context.Context, msgs []llm.Message) (string, error) {
	oMsgs := []ollama.Message{}
	for _, msg := range msgs {
		oMsgs = append(oMsgs, ollama.Message{
			Role:    string(msg.Role),
			Content: msg.Text,
		})
	}

	stream := false
	oReq := &ollama.ChatRequest{
		Model:    oapi.model,
		Messages: oMsgs,
		Stream:   &stream,
	}

	var text string
	err := oapi.c.Chat(ctx, oReq, func(cr ollama.ChatResponse) error {
		text = cr.Message.Content
		return nil
	})
	if err != nil {
		return "", err
	}
	return text, nil
}
