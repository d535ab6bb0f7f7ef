package south

import (
	"context"
	"fmt"

	"fossil-api/cmd/fossil-api-server/app/config"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is one synchronous completion. Task only labels the request in logs and fakes.
type ChatRequest struct {
	Task        string
	Messages    []ChatMessage
	Temperature float64
	MaxTokens   int
}

func NewUserChatRequest(task, prompt string, temperature float64, maxTokens int) *ChatRequest {
	return &ChatRequest{
		Task:        task,
		Messages:    []ChatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}

// IChatProvider sends a single request and returns the raw reply text, with no retry.
type IChatProvider interface {
	Name() string
	Chat(ctx context.Context, req *ChatRequest) (string, error)
}

// StatusError is returned when the upstream answered with a non 2xx code.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected http response code %d: %s", e.Code, e.Body)
}

func NewChatProvider(llmConfig *config.LLM) (IChatProvider, error) {
	switch llmConfig.Provider {
	case config.LLMProviderGateway, "":
		return NewGatewayChatProvider(llmConfig), nil
	case config.LLMProviderOpenAI:
		return NewOpenAIChatProvider(llmConfig), nil
	case config.LLMProviderAnthropic:
		return NewAnthropicChatProvider(llmConfig), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %s", llmConfig.Provider)
	}
}
