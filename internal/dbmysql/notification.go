package dbmysql

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Notification struct {
	ID        string            `gorm:"primaryKey;size:36" json:"id"`
	UserID    string            `gorm:"not null;index:idx_notifications_user_read,priority:1;size:36" json:"user_id"`
	Title     string            `gorm:"not null;size:255" json:"title"`
	Content   string            `gorm:"not null;type:text" json:"content"`
	Type      string            `gorm:"not null;size:50" json:"type"`
	RelatedID *string           `gorm:"size:36;index" json:"related_id,omitempty"`
	Data      datatypes.JSONMap `gorm:"type:json" json:"data,omitempty"`
	IsRead    bool              `gorm:"not null;default:false;index:idx_notifications_user_read,priority:2" json:"is_read"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
