package dbmysql

import "time"

// Profile is keyed by the auth provider's user id.
type Profile struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Email          string    `gorm:"size:255" json:"email"`
	Username       string    `gorm:"size:50;index" json:"username"`
	VRChatUsername string    `gorm:"column:vrchat_username;size:100" json:"vrchat_username"`
	AvatarURL      string    `gorm:"size:512" json:"avatar_url"`
	Bio            string    `gorm:"type:text" json:"bio"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
