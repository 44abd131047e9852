// internal/models/session.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	BaseModel
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
	Token     string    `json:"-" gorm:"uniqueIndex;size:128;not null"`
	IPAddress string    `json:"ip_address,omitempty" gorm:"size:64"`
	UserAgent string    `json:"user_agent,omitempty" gorm:"type:text"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
}

// IsExpired reports whether the session can no longer be trusted at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
