package south

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"fossil-api/cmd/fossil-api-server/app/config"
	fossilApiLog "fossil-api/pkg/logger"
	"fossil-api/pkg/util/common"
	httpHelper "fossil-api/pkg/util/http"
)

type GatewayChatPost struct {
	Model       string          `json:"model"`
	Messages    []ChatMessage   `json:"messages"`
	Stream      bool            `json:"stream"`
	Temperature float64         `json:"temperature"`
	Options     *GatewayOptions `json:"options,omitempty"`
}

// GatewayOptions mirrors the ollama style options block, older gateways read the sampling knobs from here.
type GatewayOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type GatewayChatReply struct {
	Message ChatMessage `json:"message"`
}

// GatewayChatProvider talks to an ollama compatible /api/chat endpoint.
type GatewayChatProvider struct {
	endpoint     string
	apiKey       string
	model        string
	skipTlsCheck bool
}

func NewGatewayChatProvider(llmConfig *config.LLM) *GatewayChatProvider {
	return &GatewayChatProvider{
		endpoint:     llmConfig.Endpoint,
		apiKey:       llmConfig.APIKey,
		model:        llmConfig.Model,
		skipTlsCheck: llmConfig.SkipTlsCheck,
	}
}

func (p *GatewayChatProvider) Name() string {
	return string(config.LLMProviderGateway)
}

func (p *GatewayChatProvider) Chat(ctx context.Context, req *ChatRequest) (string, error) {
	postBody, err := json.Marshal(&GatewayChatPost{
		Model:       p.model,
		Messages:    req.Messages,
		Stream:      false,
		Temperature: req.Temperature,
		Options: &GatewayOptions{
			Temperature: req.Temperature,
			NumPredict:  req.MaxTokens,
		},
	})
	if err != nil {
		return "", err
	}

	header := map[string][]string{}
	if p.apiKey != "" {
		header["Authorization"] = []string{"Bearer " + p.apiKey}
	}

	// the deadline is carried by ctx
	body, _, code, err := common.CommonRequest(ctx, p.endpoint, http.MethodPost, postBody, httpHelper.GetCommonHttpHeader(header), p.skipTlsCheck, 0)
	if err != nil {
		return "", fmt.Errorf("gateway request: %w", err)
	}
	if code != http.StatusOK {
		return "", &StatusError{Code: code, Body: string(body)}
	}

	reply := &GatewayChatReply{}
	if err := json.Unmarshal(body, reply); err != nil {
		return "", fmt.Errorf("gateway reply: %w", err)
	}
	fossilApiLog.Logger.Debug("gateway replied", "task", req.Task, "len", len(reply.Message.Content))
	return reply.Message.Content, nil
}
