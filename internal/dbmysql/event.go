package dbmysql

import "time"

// Event is owned by the events service; this service only reads titles and
// organizers from it.
type Event struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	UserID      string     `gorm:"not null;index;size:36" json:"user_id"`
	Title       string     `gorm:"not null;size:255" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	EventDate   *time.Time `json:"event_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}
