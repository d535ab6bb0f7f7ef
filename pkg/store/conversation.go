package store

import (
	"net/http"
	"sort"
	"time"

	"fossil-api/cmd/fossil-api-server/app/config"
	fossilApiLog "fossil-api/pkg/logger"
	conversationV1 "fossil-api/pkg/north/api/conversation/core/v1"
	"fossil-api/pkg/util/common"
	customErr "fossil-api/pkg/util/error"

	"github.com/google/uuid"
)

const titleEllipsis = "..."

// ConversationManager implements the conversation operations on top of a whole-document store.
// Each call is an independent load, mutate, save cycle.
type ConversationManager struct {
	store        IConversationStore
	defaultTitle string
	titleRunes   int
	now          func() time.Time
}

func NewConversationManager(store IConversationStore, fossilConfig *config.Fossil) *ConversationManager {
	defaults := config.DefaultConfig().Fossil
	defaultTitle := defaults.DefaultTitle
	titleRunes := defaults.TitleRunes
	if fossilConfig != nil {
		defaultTitle = common.GetStringValueOrDefault(fossilConfig.DefaultTitle, defaultTitle)
		if fossilConfig.TitleRunes > 0 {
			titleRunes = fossilConfig.TitleRunes
		}
	}
	return &ConversationManager{
		store:        store,
		defaultTitle: defaultTitle,
		titleRunes:   titleRunes,
		now:          time.Now,
	}
}

// SetClock replaces time.Now, for tests.
func (m *ConversationManager) SetClock(now func() time.Time) {
	m.now = now
}

func (m *ConversationManager) Store() IConversationStore {
	return m.store
}

func (m *ConversationManager) List() []conversationV1.ConversationSummary {
	return ListSummaries(m.store.Load())
}

func (m *ConversationManager) Create() (*conversationV1.CreatedConversation, error) {
	conversations := m.store.Load()
	id := uuid.NewString()
	conversations[id] = m.newConversation()
	if err := m.store.Save(conversations); err != nil {
		return nil, err
	}
	fossilApiLog.Logger.Debug("created conversation", "id", id)
	return &conversationV1.CreatedConversation{ID: id, Title: m.defaultTitle}, nil
}

func (m *ConversationManager) Delete(id string) error {
	conversations := m.store.Load()
	if _, found := conversations[id]; !found {
		return customErr.NewNotFound(http.StatusNotFound, "Chat not found")
	}
	delete(conversations, id)
	return m.store.Save(conversations)
}

func (m *ConversationManager) Messages(id string) ([]conversationV1.Message, error) {
	conversations := m.store.Load()
	conversation, found := conversations[id]
	if !found {
		return []conversationV1.Message{}, customErr.NewNotFound(http.StatusNotFound, "Chat not found")
	}
	return conversation.Messages, nil
}

// Begin loads the store and returns the conversation for id, creating it when unknown.
// The caller appends to it and hands the set back to Commit.
func (m *ConversationManager) Begin(id string) (conversationV1.ConversationSet, *conversationV1.Conversation) {
	conversations := m.store.Load()
	conversation, found := conversations[id]
	if !found {
		fossilApiLog.Logger.Debug("conversation not found, creating it", "id", id)
		conversation = m.newConversation()
		conversations[id] = conversation
	}
	return conversations, conversation
}

// AppendExchange records one user message and the assistant reply. The title is derived once,
// from the first user message, and the timestamp follows the latest append.
func (m *ConversationManager) AppendExchange(conversation *conversationV1.Conversation, userText, assistantContent string) {
	if len(conversation.Messages) == 0 {
		conversation.Title = DeriveTitle(userText, m.titleRunes)
	}
	conversation.Timestamp = Timestamp(m.now())
	conversation.Messages = append(conversation.Messages,
		conversationV1.Message{Role: conversationV1.RoleUser, Content: userText},
		conversationV1.Message{Role: conversationV1.RoleAssistant, Content: assistantContent},
	)
}

func (m *ConversationManager) Commit(conversations conversationV1.ConversationSet) error {
	return m.store.Save(conversations)
}

func (m *ConversationManager) newConversation() *conversationV1.Conversation {
	return &conversationV1.Conversation{
		Title:     m.defaultTitle,
		Timestamp: Timestamp(m.now()),
		Messages:  []conversationV1.Message{},
	}
}

func DeriveTitle(userText string, titleRunes int) string {
	return common.TruncateRunes(userText, titleRunes) + titleEllipsis
}

func Timestamp(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// ListSummaries returns the most recently active conversation first.
func ListSummaries(conversations conversationV1.ConversationSet) []conversationV1.ConversationSummary {
	result := make([]conversationV1.ConversationSummary, 0, len(conversations))
	for id, conversation := range conversations {
		result = append(result, conversationV1.ConversationSummary{
			ID:        id,
			Title:     conversation.Title,
			Timestamp: conversation.Timestamp,
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Timestamp == result[j].Timestamp {
			return result[i].ID < result[j].ID
		}
		return result[i].Timestamp > result[j].Timestamp
	})
	return result
}
