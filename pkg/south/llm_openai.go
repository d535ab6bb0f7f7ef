package south

import (
	"context"
	"errors"
	"fmt"

	"fossil-api/cmd/fossil-api-server/app/config"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIChatProvider serves the openai provider and any openai compatible base url.
type OpenAIChatProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIChatProvider(llmConfig *config.LLM) *OpenAIChatProvider {
	opts := []option.RequestOption{
		option.WithMaxRetries(0),
	}
	if llmConfig.APIKey != "" {
		opts = append(opts, option.WithAPIKey(llmConfig.APIKey))
	}
	if llmConfig.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(llmConfig.Endpoint))
	}
	client := openai.NewClient(opts...)
	return &OpenAIChatProvider{
		client: &client,
		model:  llmConfig.Model,
	}
}

func (p *OpenAIChatProvider) Name() string {
	return string(config.LLMProviderOpenAI)
}

func (p *OpenAIChatProvider) Chat(ctx context.Context, req *ChatRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case "system":
			messages = append(messages, openai.SystemMessage(m.Content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(p.model),
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &StatusError{Code: apiErr.StatusCode, Body: apiErr.Error()}
		}
		return "", fmt.Errorf("openai chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
