package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	fossilApiLog "fossil-api/pkg/logger"
	conversationV1 "fossil-api/pkg/north/api/conversation/core/v1"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// database/sql name of the modernc.org/sqlite driver, the dialector opens connections through it rather than mattn sqlite3
const sqliteDriverName = "sqlite"

// ConversationRow is one conversation with its messages kept as a json column.
type ConversationRow struct {
	ID        string `gorm:"primaryKey"`
	Title     string
	Timestamp float64
	Messages  string
}

func (ConversationRow) TableName() string {
	return "conversations"
}

type SqliteStore struct {
	db *gorm.DB
}

func NewSqliteStore(path string) (*SqliteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: sqliteDriverName, DSN: path}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&ConversationRow{}); err != nil {
		return nil, err
	}
	return &SqliteStore{db: db}, nil
}

func (s *SqliteStore) Load() conversationV1.ConversationSet {
	result := conversationV1.ConversationSet{}
	var rows []ConversationRow
	if err := s.db.Find(&rows).Error; err != nil {
		fossilApiLog.Logger.Warn("Failed to read sqlite store, treating it as empty", "error", err)
		return result
	}
	for _, row := range rows {
		messages := []conversationV1.Message{}
		if row.Messages != "" {
			if err := json.Unmarshal([]byte(row.Messages), &messages); err != nil {
				fossilApiLog.Logger.Warn("Skip malformed conversation in sqlite store", "id", row.ID, "error", err)
				continue
			}
		}
		result[row.ID] = &conversationV1.Conversation{
			Title:     row.Title,
			Timestamp: row.Timestamp,
			Messages:  messages,
		}
	}
	return normalize(result)
}

// Save rewrites the table inside one transaction.
func (s *SqliteStore) Save(conversations conversationV1.ConversationSet) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&ConversationRow{}).Error; err != nil {
			return err
		}
		for id, conversation := range conversations {
			if conversation == nil {
				continue
			}
			messages, err := json.Marshal(conversation.Messages)
			if err != nil {
				return err
			}
			row := &ConversationRow{
				ID:        id,
				Title:     conversation.Title,
				Timestamp: conversation.Timestamp,
				Messages:  string(messages),
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
