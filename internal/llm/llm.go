package llm

import (
	"context"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is a stateless chat-completion collaborator. It receives a system
// instruction plus an ordered history and returns free text only; no tool
// execution happens inside the client.
type Client interface {
	Chat(ctx context.Context, systemMessage string, messages []Message) (string, error)
}
