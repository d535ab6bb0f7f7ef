package fossil

import (
	conversationV1 "fossil-api/pkg/north/api/conversation/core/v1"
	"fossil-api/pkg/util/common"
)

const DefaultContextThreshold = 20

// LastContext returns the newest assistant message longer than threshold runes, or "".
func LastContext(messages []conversationV1.Message, threshold int) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role != conversationV1.RoleAssistant {
			continue
		}
		if common.RuneLen(messages[i].Content) > threshold {
			return messages[i].Content
		}
	}
	return ""
}
