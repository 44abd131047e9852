// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields. IDs are generated in Go so the same
// models migrate on PostgreSQL and SQLite.
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Enums
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type ResourceType string

const (
	ResourceTypeFile     ResourceType = "file"
	ResourceTypeLink     ResourceType = "link"
	ResourceTypeDocument ResourceType = "document"
)

// Downloadable reports whether the resource points at stored content rather
// than an external page.
func (t ResourceType) Downloadable() bool {
	return t == ResourceTypeFile || t == ResourceTypeDocument
}
