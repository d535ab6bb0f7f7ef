package south

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fossil-api/cmd/fossil-api-server/app/config"
	fossilApiLog "fossil-api/pkg/logger"
)

const (
	errorMarkerPrefix      = "Error:"
	connectionMarkerPrefix = "Connection Error:"
)

// Answer is one completion. A failed answer carries the error marker as Text.
type Answer struct {
	Text   string
	Failed bool
}

// LLMGateway is the only path from the rest of the service to a chat provider.
// It never returns an error, failures come back as a failed Answer instead.
type LLMGateway struct {
	provider IChatProvider
	config   *config.LLM
}

func NewLLMGateway(provider IChatProvider, llmConfig *config.LLM) *LLMGateway {
	return &LLMGateway{
		provider: provider,
		config:   llmConfig,
	}
}

// Ask sends prompt with the default sampling settings.
func (g *LLMGateway) Ask(ctx context.Context, task, prompt string) Answer {
	return g.send(ctx, NewUserChatRequest(task, prompt, g.config.Temperature, g.config.MaxTokens), g.config.Timeout)
}

// Classify sends prompt with the colder and shorter intent settings.
// On failure it returns the marker, which matches no intent label.
func (g *LLMGateway) Classify(ctx context.Context, prompt string) string {
	timeout := g.config.IntentTimeout
	if timeout <= 0 {
		timeout = g.config.Timeout
	}
	return g.send(ctx, NewUserChatRequest("intent", prompt, g.config.IntentTemperature, g.config.IntentMaxTokens), timeout).Text
}

func (g *LLMGateway) send(ctx context.Context, req *ChatRequest, timeout time.Duration) Answer {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	started := time.Now()
	reply, err := g.provider.Chat(ctx, req)
	if err != nil {
		fossilApiLog.Logger.Error("llm request failed", "provider", g.provider.Name(), "task", req.Task, "elapsed", time.Since(started), "error", err)
		return Answer{Text: ErrorMarker(err), Failed: true}
	}
	fossilApiLog.Logger.Debug("llm request done", "provider", g.provider.Name(), "task", req.Task, "elapsed", time.Since(started))
	return Answer{Text: reply}
}

// ErrorMarker renders err as the text the callers expect in place of a reply.
func ErrorMarker(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("%s %d - %s", errorMarkerPrefix, statusErr.Code, statusErr.Body)
	}
	return fmt.Sprintf("%s %v", connectionMarkerPrefix, err)
}
