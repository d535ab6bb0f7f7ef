package fossil

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fossil-api/cmd/fossil-api-server/app/config"
	fossilApiLog "fossil-api/pkg/logger"
	conversationV1 "fossil-api/pkg/north/api/conversation/core/v1"
	"fossil-api/pkg/south"
)

// ILLMClient is satisfied by south.LLMGateway. Failures come back as a failed answer or, from Classify, a marker.
type ILLMClient interface {
	Ask(ctx context.Context, task, prompt string) south.Answer
	Classify(ctx context.Context, prompt string) string
}

type Image struct {
	Url string
	Alt string
}

// Reply is the outcome of one user message.
type Reply struct {
	Intent Intent
	Text   string
	Images []Image
}

// ImageUrl picks the image reported back to the client, the first one produced wins.
func (r *Reply) ImageUrl() *string {
	if len(r.Images) == 0 {
		return nil
	}
	imageUrl := r.Images[0].Url
	return &imageUrl
}

// StoredContent is the assistant message persisted in the conversation, text plus image markup.
func (r *Reply) StoredContent() string {
	var content strings.Builder
	content.WriteString(r.Text)
	for _, image := range r.Images {
		content.WriteString(fmt.Sprintf("\n\n<img src=\"%s\" alt=\"%s\">", image.Url, image.Alt))
	}
	return content.String()
}

type Assistant struct {
	llm              ILLMClient
	router           *IntentRouter
	images           south.IImageFinder
	renderer         south.IGraphRenderer
	autoGraph        bool
	contextThreshold int
}

func NewAssistant(llm ILLMClient, images south.IImageFinder, renderer south.IGraphRenderer, fossilConfig *config.Fossil) *Assistant {
	assistant := &Assistant{
		llm:              llm,
		router:           NewIntentRouter(llm),
		images:           images,
		renderer:         renderer,
		contextThreshold: DefaultContextThreshold,
	}
	if fossilConfig != nil {
		assistant.autoGraph = fossilConfig.AutoGraph
		if fossilConfig.ContextThreshold > 0 {
			assistant.contextThreshold = fossilConfig.ContextThreshold
		}
	}
	return assistant
}

// Reply classifies userText and runs the matching branch against the conversation history.
func (a *Assistant) Reply(ctx context.Context, history []conversationV1.Message, userText string) *Reply {
	intent := a.router.Classify(ctx, userText)
	var reply *Reply
	switch intent {
	case IntentIrrelevant:
		reply = &Reply{Text: msgIrrelevant}
	case IntentGraph:
		reply = a.graph(ctx, LastContext(history, a.contextThreshold))
	case IntentExplain:
		reply = a.explain(ctx, LastContext(history, a.contextThreshold), userText)
	default:
		reply = a.Identify(ctx, userText)
	}
	reply.Intent = intent
	fossilApiLog.Logger.Info("chat replied", "intent", intent.String(), "images", len(reply.Images))
	return reply
}

func (a *Assistant) Identify(ctx context.Context, description string) *Reply {
	answer := a.llm.Ask(ctx, "identify", IdentifyPrompt(description))
	if answer.Failed {
		return &Reply{Intent: IntentIdentify, Text: msgLLMUnavailable}
	}
	raw := answer.Text

	reply := &Reply{Intent: IntentIdentify, Text: CleanResponse(raw)}
	if keyword := ExtractKeyword(raw); keyword != "" && a.images != nil {
		if imageUrl := a.images.FindImage(ctx, keyword); imageUrl != "" {
			reply.Images = append(reply.Images, Image{Url: imageUrl, Alt: altFossilImage})
		}
	}

	if a.autoGraph {
		if imageUrl, err := a.renderGraph(ctx, reply.Text); err != nil {
			fossilApiLog.Logger.Warn("auto graph skipped", "error", err)
		} else {
			reply.Images = append(reply.Images, Image{Url: imageUrl, Alt: altEvolutionGraph})
		}
	}
	return reply
}

func (a *Assistant) graph(ctx context.Context, lastContext string) *Reply {
	if lastContext == "" {
		return &Reply{Text: msgNeedContextGraph}
	}
	imageUrl, err := a.renderGraph(ctx, lastContext)
	switch {
	case err == nil:
		return &Reply{Text: msgGraphDone, Images: []Image{{Url: imageUrl, Alt: altEvolutionGraph}}}
	case errors.Is(err, errLLMUnavailable):
		return &Reply{Text: msgLLMUnavailable}
	case errors.Is(err, errMalformedDot):
		return &Reply{Text: msgGraphMalformed}
	default:
		fossilApiLog.Logger.Error("graph render failed", "error", err)
		return &Reply{Text: msgGraphFailed}
	}
}

// GraphSource asks for the cladogram of analysis and returns cleaned DOT source.
func (a *Assistant) GraphSource(ctx context.Context, analysis string) (string, error) {
	answer := a.llm.Ask(ctx, "graph", GraphPrompt(analysis))
	if answer.Failed {
		return "", errLLMUnavailable
	}
	source := CleanDot(answer.Text)
	if !ValidateDot(source) {
		return "", errMalformedDot
	}
	return source, nil
}

func (a *Assistant) renderGraph(ctx context.Context, analysis string) (string, error) {
	if a.renderer == nil {
		return "", errNoRenderer
	}
	source, err := a.GraphSource(ctx, analysis)
	if err != nil {
		return "", err
	}
	return a.renderer.Render(ctx, source)
}

func (a *Assistant) explain(ctx context.Context, lastContext, question string) *Reply {
	if lastContext == "" {
		return &Reply{Text: msgNeedContextAsk}
	}
	answer := a.llm.Ask(ctx, "explain", ExplainPrompt(lastContext, question))
	if answer.Failed {
		return &Reply{Text: msgLLMUnavailable}
	}
	return &Reply{Text: answer.Text}
}
