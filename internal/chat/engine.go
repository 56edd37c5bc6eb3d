package chat

import (
	"context"
	"strings"
)

// Engine produces the assistant's reply to a conversation.
type Engine interface {
	Reply(ctx context.Context, history []Message) (string, error)
	Name() string
}

// EngineOptions selects and configures an engine.
type EngineOptions struct {
	APIKey  string
	BaseURL string
	Model   string
}

// NewEngine returns an OpenAI-compatible engine when an API key is
// configured, otherwise the offline echo engine.
func NewEngine(opts EngineOptions) Engine {
	if opts.APIKey == "" {
		return EchoEngine{}
	}
	return NewOpenAIEngine(opts.APIKey, opts.BaseURL, opts.Model)
}

// EchoEngine answers by quoting the last user message. It needs no network
// and keeps the chat view usable without credentials.
type EchoEngine struct{}

func (EchoEngine) Name() string {
	return "echo"
}

func (EchoEngine) Reply(ctx context.Context, history []Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == RoleUser {
			return "> " + strings.ReplaceAll(history[i].Content, "\n", "\n> ") +
				"\n\n(no chat model configured; set CHATGATE_CHAT_API_KEY)", nil
		}
	}
	return "Say something and I will repeat it.", nil
}
