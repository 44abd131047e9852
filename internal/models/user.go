// internal/models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Name          string  `json:"name" gorm:"not null"`
	Email         string  `json:"email" gorm:"uniqueIndex;size:255;not null"`
	EmailVerified bool    `json:"email_verified" gorm:"default:false"`
	Image         *string `json:"image,omitempty"`

	// Relationships
	Sessions []Session `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Accounts []Account `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Orders   []Order   `json:"orders,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Account links a user to an identity provider. A user may hold one account
// per provider; the credential provider stores a bcrypt hash in Password.
type Account struct {
	BaseModel
	AccountID             string     `json:"account_id" gorm:"not null"`
	ProviderID            string     `json:"provider_id" gorm:"not null;index"`
	UserID                uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	AccessToken           *string    `json:"-"`
	RefreshToken          *string    `json:"-"`
	IDToken               *string    `json:"-"`
	AccessTokenExpiresAt  *time.Time `json:"access_token_expires_at,omitempty"`
	RefreshTokenExpiresAt *time.Time `json:"refresh_token_expires_at,omitempty"`
	Scope                 *string    `json:"scope,omitempty"`
	Password              *string    `json:"-"`
}

func (a *Account) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hash := string(hashedPassword)
	a.Password = &hash
	return nil
}

func (a *Account) CheckPassword(password string) error {
	if a.Password == nil {
		return bcrypt.ErrMismatchedHashAndPassword
	}
	return bcrypt.CompareHashAndPassword([]byte(*a.Password), []byte(password))
}

// Verification holds short-lived out-of-band tokens such as email
// confirmation codes. It is keyed by identifier, not by user.
type Verification struct {
	BaseModel
	Identifier string    `json:"identifier" gorm:"not null;index"`
	Value      string    `json:"-" gorm:"not null"`
	ExpiresAt  time.Time `json:"expires_at" gorm:"not null"`
}

func (v *Verification) IsExpired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}
