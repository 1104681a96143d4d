package driver

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"riskmentor/llm"
)

var _ llm.Provider = (*GeminiAdapter)(nil)

type GeminiAdapter struct {
	model string
	cli   *genai.Client
}

func NewGeminiAdapter(ctx context.Context, model, key string) (*GeminiAdapter, error) {
	if model == "" {
		return nil, fmt.Errorf("gemini_adapter model cannot be empty")
	}

	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed start gemini_adapter: %s", err)
	}

	return &GeminiAdapter{model: model, cli: cli}, nil
}

// Chat implements llm.Provider.
func (g *GeminiAdapter) Chat(ctx context.Context, msgs []llm.Message) (string, error) {
	var sys *genai.Content
	contents := []*genai.Content{}

	for _, msg := range msgs {
		switch msg.Role {
		case llm.RoleSystem:
			sys = genai.NewContentFromText(msg.Text, genai.RoleUser)

		case llm.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(msg.Text, genai.RoleModel))

		case llm.RoleUser:
			contents = append(contents, genai.NewContentFromText(msg.Text, genai.RoleUser))

		default:
			return "", fmt.Errorf("gemini_adapter unknown message role: %v", msg.Role)
		}
	}

	if len(contents) == 0 {
		return "", fmt.Errorf("gemini_adapter content is empty")
	}

	config := genai.GenerateContentConfig{
		SystemInstruction: sys,
	}
	resp, err := g.cli.Models.GenerateContent(ctx, g.model, contents, &config)
	if err != nil {
		return "", fmt.Errorf("gemini_adapter failed generating content: %w", err)
	}

	return resp.Text(), nil
}
