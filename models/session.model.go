package models

import "time"

// Session is a server-issued proof of login. The token doubles as the
// bearer credential. A session is valid only while expires_at is in the
// future; expired rows are treated as absent and never refreshed.
type Session struct {
	Token     string    `gorm:"type:uuid;primaryKey" json:"token"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

func (Session) TableName() string {
	return "sessions"
}
