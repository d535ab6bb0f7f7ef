package v1

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is immutable once appended to a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Conversation is the persisted form, keyed by id in ConversationSet.
// Timestamp is float seconds since the unix epoch and only drives list ordering.
type Conversation struct {
	Title     string    `json:"title"`
	Timestamp float64   `json:"timestamp"`
	Messages  []Message `json:"messages"`
}

// ConversationSet is the whole store document.
type ConversationSet map[string]*Conversation

type ConversationSummary struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Timestamp float64 `json:"timestamp"`
}

type CreatedConversation struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type DeleteResult struct {
	Success bool `json:"success"`
}
