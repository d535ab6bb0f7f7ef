package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	fossilApiLog "fossil-api/pkg/logger"
	conversationV1 "fossil-api/pkg/north/api/conversation/core/v1"
)

// FileStore keeps every conversation in one indented json document, the same layout as chats.json.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() conversationV1.ConversationSet {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fossilApiLog.Logger.Warn("Failed to read conversation store, treating it as empty", "path", s.path, "error", err)
		}
		return conversationV1.ConversationSet{}
	}

	result := conversationV1.ConversationSet{}
	if err := json.Unmarshal(data, &result); err != nil {
		fossilApiLog.Logger.Warn("Conversation store is not valid json, treating it as empty", "path", s.path, "error", err)
		return conversationV1.ConversationSet{}
	}
	return normalize(result)
}

func (s *FileStore) Save(conversations conversationV1.ConversationSet) error {
	if conversations == nil {
		conversations = conversationV1.ConversationSet{}
	}
	data, err := json.MarshalIndent(conversations, "", "    ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}

// normalize drops null entries and gives every conversation a non nil message list.
func normalize(conversations conversationV1.ConversationSet) conversationV1.ConversationSet {
	for id, conversation := range conversations {
		if conversation == nil {
			delete(conversations, id)
			continue
		}
		if conversation.Messages == nil {
			conversation.Messages = []conversationV1.Message{}
		}
	}
	return conversations
}
