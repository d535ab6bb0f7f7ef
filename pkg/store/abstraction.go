package store

import (
	"fmt"

	"fossil-api/cmd/fossil-api-server/app/config"
	conversationV1 "fossil-api/pkg/north/api/conversation/core/v1"
)

// IConversationStore persists the whole conversation document at once.
// Load never fails: a missing or unreadable backing store reads as empty.
// There is no locking, concurrent load-mutate-save cycles may lose updates.
type IConversationStore interface {
	Load() conversationV1.ConversationSet
	Save(conversations conversationV1.ConversationSet) error
}

func NewConversationStore(storeConfig *config.Store) (IConversationStore, error) {
	switch storeConfig.Backend {
	case config.StoreBackendFile, "":
		return NewFileStore(storeConfig.Path), nil
	case config.StoreBackendBolt:
		return NewBoltStore(storeConfig.Path), nil
	case config.StoreBackendSqlite:
		return NewSqliteStore(storeConfig.Path)
	default:
		return nil, fmt.Errorf("unknown store backend %s", storeConfig.Backend)
	}
}
