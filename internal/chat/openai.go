package chat

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/zhubert/chatgate/internal/errors"
	"github.com/zhubert/chatgate/internal/logger"
)

// DefaultMaxTokens caps reply length when the caller does not.
const DefaultMaxTokens = 2048

// OpenAIEngine talks to any OpenAI-compatible chat completions API.
type OpenAIEngine struct {
	client    *openai.Client
	model     string
	MaxTokens int
}

// NewOpenAIEngine creates an engine for model. An empty baseURL uses the
// OpenAI default.
func NewOpenAIEngine(apiKey, baseURL, model string) *OpenAIEngine {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIEngine{
		client:    openai.NewClientWithConfig(cfg),
		model:     model,
		MaxTokens: DefaultMaxTokens,
	}
}

func (e *OpenAIEngine) Name() string {
	return "openai:" + e.model
}

func (e *OpenAIEngine) Reply(ctx context.Context, history []Message) (string, error) {
	log := logger.WithComponent("chat")

	messages := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	log.Debug("requesting reply", "model", e.model, "messages", len(messages))
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     e.model,
		Messages:  messages,
		MaxTokens: e.MaxTokens,
	})
	if err != nil {
		log.Warn("reply failed", "model", e.model, "error", err)
		return "", errors.ChatReplyFailed(e.model, err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.ChatEmptyReply(e.model)
	}

	log.Debug("reply received", "model", resp.Model,
		"promptTokens", resp.Usage.PromptTokens,
		"completionTokens", resp.Usage.CompletionTokens)
	return resp.Choices[0].Message.Content, nil
}
