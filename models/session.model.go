package models

import (
	"time"
)

// Session binds an opaque cookie token to an authenticated identity.
// The row is authoritative: the cookie is only a lookup key, deleting
// the row logs the user out everywhere immediately.
type Session struct {
	Token     string    `json:"-" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Role      string    `json:"role" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index"`
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
