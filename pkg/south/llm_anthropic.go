package south

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fossil-api/cmd/fossil-api-server/app/config"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicMaxTokens = 1024

type AnthropicChatProvider struct {
	client *anthropic.Client
	model  string
}

func NewAnthropicChatProvider(llmConfig *config.LLM) *AnthropicChatProvider {
	opts := []option.RequestOption{
		option.WithMaxRetries(0),
	}
	if llmConfig.APIKey != "" {
		opts = append(opts, option.WithAPIKey(llmConfig.APIKey))
	}
	if llmConfig.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(llmConfig.Endpoint))
	}
	client := anthropic.NewClient(opts...)
	return &AnthropicChatProvider{
		client: &client,
		model:  llmConfig.Model,
	}
}

func (p *AnthropicChatProvider) Name() string {
	return string(config.LLMProviderAnthropic)
}

func (p *AnthropicChatProvider) Chat(ctx context.Context, req *ChatRequest) (string, error) {
	var system []anthropic.TextBlockParam
	messages := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case "system":
			system = append(system, anthropic.TextBlockParam{Text: m.Content})
		case "assistant":
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultAnthropicMaxTokens
	}

	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   int64(maxTokens),
		System:      system,
		Messages:    messages,
		Temperature: anthropic.Float(req.Temperature),
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", &StatusError{Code: apiErr.StatusCode, Body: apiErr.Error()}
		}
		return "", fmt.Errorf("anthropic chat: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return text.String(), nil
}
