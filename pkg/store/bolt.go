package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	fossilApiLog "fossil-api/pkg/logger"
	conversationV1 "fossil-api/pkg/north/api/conversation/core/v1"

	bolt "go.etcd.io/bbolt"
)

var conversationBucket = []byte("conversations")

// BoltStore keeps one key per conversation in a single bucket.
// The database is opened per call so that no file handle outlives a request.
type BoltStore struct {
	path string
}

func NewBoltStore(path string) *BoltStore {
	return &BoltStore{path: path}
}

func (s *BoltStore) Load() conversationV1.ConversationSet {
	result := conversationV1.ConversationSet{}
	if _, err := os.Stat(s.path); err != nil {
		return result
	}

	db, err := bolt.Open(s.path, 0o600, &bolt.Options{Timeout: time.Second, ReadOnly: true})
	if err != nil {
		fossilApiLog.Logger.Warn("Failed to open bolt store, treating it as empty", "path", s.path, "error", err)
		return result
	}
	defer func() { _ = db.Close() }()

	err = db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(conversationBucket)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			conversation := &conversationV1.Conversation{}
			if e := json.Unmarshal(v, conversation); e != nil {
				fossilApiLog.Logger.Warn("Skip malformed conversation in bolt store", "id", string(k), "error", e)
				return nil
			}
			result[string(k)] = conversation
			return nil
		})
	})
	if err != nil {
		fossilApiLog.Logger.Warn("Failed to read bolt store, treating it as empty", "path", s.path, "error", err)
		return conversationV1.ConversationSet{}
	}
	return normalize(result)
}

// Save replaces the bucket with exactly the given snapshot.
func (s *BoltStore) Save(conversations conversationV1.ConversationSet) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	db, err := bolt.Open(s.path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	return db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(conversationBucket) != nil {
			if err := tx.DeleteBucket(conversationBucket); err != nil {
				return err
			}
		}
		b, err := tx.CreateBucket(conversationBucket)
		if err != nil {
			return err
		}
		for id, conversation := range conversations {
			if conversation == nil {
				continue
			}
			data, err := json.Marshal(conversation)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(id), data); err != nil {
				return err
			}
		}
		return nil
	})
}
