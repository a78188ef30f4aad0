package llm

import (
	"context"
	"errors"
)

var ErrUnavailable = errors.New("llm unavailable")

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged entry in the conversation history.
type Message struct {
	Role    string
	Content string
}

// MessageInput carries everything a provider needs for one completion call.
// History holds prior turns in order; Text is the message being answered.
type MessageInput struct {
	Text         string
	SystemPrompt string
	History      []Message
}

type Responder interface {
	Reply(ctx context.Context, input MessageInput) (string, error)
}
