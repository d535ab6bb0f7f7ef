package route

import (
	"fossil-api/cmd/fossil-api-server/app/config"
	"fossil-api/pkg/fossil"
	"fossil-api/pkg/store"
)

type DefaultRouteRegister struct {
	config        *config.Config
	assistant     *fossil.Assistant
	conversations *store.ConversationManager
}

func NewDefaultRouteRegister(config *config.Config, assistant *fossil.Assistant, conversations *store.ConversationManager) IRouteRegister {
	return &DefaultRouteRegister{
		config:        config,
		assistant:     assistant,
		conversations: conversations,
	}
}

// here where we register the route
func (r *DefaultRouteRegister) RegisterRoute(provider IRouteProvider) {
	provider.RegisterRoute(conversationFullPathPrefix, GetConversationRoute(r.conversations))
	provider.RegisterRoute(chatFullPath, GetChatRoute(r.assistant, r.conversations))
	provider.RegisterRoute(mapFullPathPrefix, GetMapRoute(r.assistant))
	provider.RegisterRoute(versionFullPath, GetVersionRoute(r.config))
}
