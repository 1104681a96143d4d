// Package driver provides the llm.Provider adapters for the supported
// backends: LM Studio (openai compatible), Ollama and Gemini.
package driver

import (
	"context"
	"fmt"

	"riskmentor/config"
	"riskmentor/llm"
)

// New builds the provider selected by the configuration.
func New(ctx context.Context, cfg config.Provider) (llm.Provider, error) {
	switch cfg.Name {
	case "lmstudio":
		return NewLMStudio(cfg.Endpoint, cfg.ApiKey, cfg.Model), nil

	case "ollama":
		return NewOllamaAdapter(cfg.Endpoint, cfg.Model)

	case "genai":
		return NewGeminiAdapter(ctx, cfg.Model, cfg.ApiKey)

	default:
		return nil, fmt.Errorf("unknown provider specified in config: %s", cfg.Name)
	}
}
