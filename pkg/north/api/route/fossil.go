package route

import (
	"net/http"

	"fossil-api/cmd/fossil-api-server/app/config"
	"fossil-api/pkg/fossil"
	"fossil-api/pkg/store"
)

const (
	conversationFullPathPrefix = "/api/chats"
	chatFullPath               = "/chat_api"
	mapFullPathPrefix          = "/api/map"
	versionFullPath            = "/api/version"
)

func GetConversationRoute(conversations *store.ConversationManager) *ChiRouteBuilder {
	return &ChiRouteBuilder{
		PathPrefix: conversationFullPathPrefix,
		MethodHandlers: []ChiSubRouteBuilder{
			{
				Method:  http.MethodGet,
				Pattern: "/",
				Handler: CreateListConversationsHandler(conversations),
			},
			{
				Method:  http.MethodPost,
				Pattern: "/",
				Handler: CreateCreateConversationHandler(conversations),
			},
			{
				Method:  http.MethodDelete,
				Pattern: "/{chatId}",
				Handler: CreateDeleteConversationHandler(conversations),
			},
			{
				Method:  http.MethodGet,
				Pattern: "/{chatId}/messages",
				Handler: CreateGetMessagesHandler(conversations),
			},
		},
	}
}

func GetChatRoute(assistant *fossil.Assistant, conversations *store.ConversationManager) *ChiRouteBuilder {
	return &ChiRouteBuilder{
		PathPrefix: chatFullPath,
		MethodHandlers: []ChiSubRouteBuilder{
			{
				Method:  http.MethodPost,
				Pattern: "/",
				Handler: CreateChatHandler(assistant, conversations),
			},
		},
	}
}

func GetMapRoute(assistant *fossil.Assistant) *ChiRouteBuilder {
	return &ChiRouteBuilder{
		PathPrefix: mapFullPathPrefix,
		MethodHandlers: []ChiSubRouteBuilder{
			{
				Method:  http.MethodPost,
				Pattern: "/bury",
				Handler: CreateBuryHandler(assistant),
			},
			{
				Method:  http.MethodPost,
				Pattern: "/examine",
				Handler: CreateExamineHandler(assistant),
			},
		},
	}
}

func GetVersionRoute(config *config.Config) *ChiRouteBuilder {
	return &ChiRouteBuilder{
		PathPrefix: versionFullPath,
		MethodHandlers: []ChiSubRouteBuilder{
			{
				Method:      http.MethodGet,
				Pattern:     "/",
				Handler:     CreateGetVersionHandler(config),
				RouteAccess: RouteAccess{Anonymous: true},
			},
		},
	}
}
