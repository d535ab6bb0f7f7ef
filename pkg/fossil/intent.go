package fossil

import (
	"context"
	"strings"

	fossilApiLog "fossil-api/pkg/logger"
)

type Intent int

const (
	IntentIdentify Intent = iota
	IntentGraph
	IntentExplain
	IntentIrrelevant
)

func (i Intent) String() string {
	switch i {
	case IntentGraph:
		return "GRAPH"
	case IntentExplain:
		return "EXPLAIN"
	case IntentIrrelevant:
		return "IRRELEVANT"
	default:
		return "IDENTIFY"
	}
}

// checked in this order, the first label contained in the reply wins
var intentPriority = []Intent{IntentGraph, IntentExplain, IntentIrrelevant}

// ParseIntent maps a free text classifier reply to an intent. Anything that does not
// contain one of the specific labels, error markers included, is IDENTIFY.
func ParseIntent(reply string) Intent {
	normalized := strings.ToUpper(strings.TrimSpace(reply))
	for _, intent := range intentPriority {
		if strings.Contains(normalized, intent.String()) {
			return intent
		}
	}
	return IntentIdentify
}

type IntentRouter struct {
	llm ILLMClient
}

func NewIntentRouter(llm ILLMClient) *IntentRouter {
	return &IntentRouter{llm: llm}
}

func (r *IntentRouter) Classify(ctx context.Context, userText string) Intent {
	reply := r.llm.Classify(ctx, IntentPrompt(userText))
	intent := ParseIntent(reply)
	fossilApiLog.Logger.Debug("intent classified", "intent", intent.String(), "reply", reply)
	return intent
}
