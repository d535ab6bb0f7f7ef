package route

import (
	"net/http"

	"fossil-api/cmd/fossil-api-server/app/config"
	"fossil-api/pkg/fossil"
	fossilApiLog "fossil-api/pkg/logger"
	chatV1 "fossil-api/pkg/north/api/chat/core/v1"
	conversationV1 "fossil-api/pkg/north/api/conversation/core/v1"
	fossilV1 "fossil-api/pkg/north/api/fossil/core/v1"
	versionV1 "fossil-api/pkg/north/api/version/core/v1"
	"fossil-api/pkg/store"
	customErr "fossil-api/pkg/util/error"
	httpHelper "fossil-api/pkg/util/http"

	"github.com/go-chi/chi/v5"
)

/*
note we have to put all handler here
due to swag init command cannot merge annotation from multiple files
*/

// GET conversation list
// @tags conversation
// @Summary list conversations
// @Description list conversations, most recently active first
// @Produce  json
// @Success 200 {array} conversationV1.ConversationSummary
// @Router /api/chats [get]
func CreateListConversationsHandler(conversations *store.ConversationManager) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		httpHelper.WriteResponseEntity(w, conversations.List())
	}
}

// POST conversation create
// @tags conversation
// @Summary create conversation
// @Description create an empty conversation with the default title
// @Produce  json
// @Success 200 {object} conversationV1.CreatedConversation
// @Failure 500 {object} httpHelper.CustomError
// @Router /api/chats [post]
func CreateCreateConversationHandler(conversations *store.ConversationManager) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		created, err := conversations.Create()
		if err != nil {
			httpHelper.WriteCustomErrorAndLog(w, "Failed to save conversation", http.StatusInternalServerError, "", err)
			return
		}
		httpHelper.WriteResponseEntity(w, created)
	}
}

// DELETE conversation
// @tags conversation
// @Summary delete conversation
// @Description delete conversation
// @Produce  json
// @Param chatId path string true "conversation id"
// @Success 200 {object} conversationV1.DeleteResult
// @Failure 404 {object} httpHelper.CustomError
// @Failure 500 {object} httpHelper.CustomError
// @Router /api/chats/{chatId} [delete]
func CreateDeleteConversationHandler(conversations *store.ConversationManager) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		chatId := chi.URLParam(r, "chatId")
		err := conversations.Delete(chatId)
		if err != nil {
			if customErr.IsNotFound(err) {
				httpHelper.WriteCustomErrorAndLog(w, "Chat not found", http.StatusNotFound, "", err)
				return
			}
			httpHelper.WriteCustomErrorAndLog(w, "Failed to delete conversation", http.StatusInternalServerError, "", err)
			return
		}
		httpHelper.WriteResponseEntity(w, conversationV1.DeleteResult{Success: true})
	}
}

// GET conversation messages
// @tags conversation
// @Summary get messages
// @Description get messages of a conversation, an unknown id answers an empty list with 404
// @Produce  json
// @Param chatId path string true "conversation id"
// @Success 200 {array} conversationV1.Message
// @Failure 404 {array} conversationV1.Message
// @Router /api/chats/{chatId}/messages [get]
func CreateGetMessagesHandler(conversations *store.ConversationManager) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		chatId := chi.URLParam(r, "chatId")
		messages, err := conversations.Messages(chatId)
		if err != nil {
			fossilApiLog.Logger.Warn("messages of unknown conversation requested", "id", chatId)
			httpHelper.WriteResponseEntityWithCode(w, http.StatusNotFound, messages)
			return
		}
		httpHelper.WriteResponseEntity(w, messages)
	}
}

// POST chat message
// @tags chat
// @Summary send message
// @Description classify the message, answer it and append both to the conversation
// @Accept  json
// @Produce  json
// @Param request body chatV1.ChatPost true "chat post"
// @Success 200 {object} chatV1.ChatResponse
// @Failure 400 {object} httpHelper.CustomError
// @Failure 500 {object} httpHelper.CustomError
// @Router /chat_api [post]
func CreateChatHandler(assistant *fossil.Assistant, conversations *store.ConversationManager) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		chatPost := &chatV1.ChatPost{}
		err := httpHelper.ParseJsonBody(r, chatPost)
		if err != nil {
			httpHelper.WriteCustomErrorAndLog(w, "Failed to unmarshal request body", http.StatusBadRequest, "", err)
			return
		}

		if chatPost.Message == "" || chatPost.ChatId == "" {
			httpHelper.WriteCustomErrorAndLog(w, "No input or chat_id", http.StatusBadRequest, "", nil)
			return
		}

		set, conversation := conversations.Begin(chatPost.ChatId)
		reply := assistant.Reply(r.Context(), conversation.Messages, chatPost.Message)
		conversations.AppendExchange(conversation, chatPost.Message, reply.StoredContent())

		err = conversations.Commit(set)
		if err != nil {
			httpHelper.WriteCustomErrorAndLog(w, "Failed to save conversation", http.StatusInternalServerError, "", err)
			return
		}

		httpHelper.WriteResponseEntity(w, chatV1.ChatResponse{
			Response: reply.Text,
			ImageUrl: reply.ImageUrl(),
			NewTitle: conversation.Title,
		})
	}
}

// POST map bury
// @tags map
// @Summary dig at a map location
// @Description ask what fossil could be found at the given coordinates
// @Accept  json
// @Produce  json
// @Param request body fossilV1.BuryPost true "location"
// @Success 200 {object} fossilV1.FossilRecord
// @Failure 400 {object} httpHelper.CustomError
// @Router /api/map/bury [post]
func CreateBuryHandler(assistant *fossil.Assistant) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		buryPost := &fossilV1.BuryPost{}
		err := httpHelper.ParseJsonBody(r, buryPost)
		if err != nil {
			httpHelper.WriteCustomErrorAndLog(w, "Failed to unmarshal request body", http.StatusBadRequest, "", err)
			return
		}

		err = fossil.ValidateBuryPost(buryPost)
		if err != nil {
			if customErr.IsBadRequest(err) {
				httpHelper.WriteCustomErrorAndLog(w, "Coordinates out of range", http.StatusBadRequest, "", err)
				return
			}
			httpHelper.WriteCustomErrorAndLog(w, "Failed to validate location", http.StatusInternalServerError, "", err)
			return
		}

		httpHelper.WriteResponseEntity(w, assistant.Bury(r.Context(), buryPost))
	}
}

// POST map examine
// @tags map
// @Summary examine a dug fossil
// @Description explain a fossil record returned by bury as html
// @Accept  json
// @Produce  json
// @Param request body fossilV1.FossilRecord true "fossil record"
// @Success 200 {object} fossilV1.ExamineResponse
// @Failure 400 {object} httpHelper.CustomError
// @Router /api/map/examine [post]
func CreateExamineHandler(assistant *fossil.Assistant) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		record := &fossilV1.FossilRecord{}
		err := httpHelper.ParseJsonBody(r, record)
		if err != nil {
			httpHelper.WriteCustomErrorAndLog(w, "Failed to unmarshal request body", http.StatusBadRequest, "", err)
			return
		}

		httpHelper.WriteResponseEntity(w, fossilV1.ExamineResponse{Html: assistant.Examine(r.Context(), record)})
	}
}

// GET version
// @tags version
// @Summary show version
// @Description show version of the running server
// @Produce  json
// @Success 200 {object} versionV1.VersionInfo
// @Router /api/version [get]
func CreateGetVersionHandler(config *config.Config) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		versionInfo := versionV1.VersionInfo{
			ReleaseVersion: config.FossilApiConfig.ReleaseVersion,
			GitVersion:     config.FossilApiConfig.GitVersion,
			LLMProvider:    string(config.LLM.Provider),
			LLMModel:       config.LLM.Model,
			StoreBackend:   string(config.Store.Backend),
		}
		httpHelper.WriteResponseEntity(w, versionInfo)
	}
}
