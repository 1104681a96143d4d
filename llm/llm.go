// Package llm defines the provider boundary to the language model
// backend used for the Q&A feature.
package llm

import (
	"context"
	"strings"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role Role
	Text string
}

func NewTextMessage(role Role, text string) Message {
	return Message{Role: role, Text: text}
}

// Provider is an llm backend able to answer a chat exchange.
type Provider interface {
	Chat(ctx context.Context, msgs []Message) (string, error)
}

// StripThink removes the <think> preamble some local models emit before
// their actual answer.
func StripThink(msg string) string {
	const close = "</think>"
	idx := strings.Index(msg, close)
	if idx != -1 {
		return strings.TrimSpace(msg[idx+len(close):])
	}
	return msg
}
