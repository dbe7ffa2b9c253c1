package dbmysql

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a direct message between two users about one event. Only IsRead
// changes after creation.
type Message struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	SenderID   string    `gorm:"not null;index;size:36" json:"sender_id"`
	ReceiverID string    `gorm:"not null;index:idx_messages_receiver_read,priority:1;size:36" json:"receiver_id"`
	EventID    string    `gorm:"not null;index;size:36" json:"event_id"`
	Content    string    `gorm:"not null;type:text" json:"content"`
	IsRead     bool      `gorm:"not null;default:false;index:idx_messages_receiver_read,priority:2" json:"is_read"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
