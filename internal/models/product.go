// internal/models/product.go
package models

import (
	"github.com/google/uuid"
)

// Product is a purchasable service. Only active products appear in public
// listings. Active carries no column default so that an explicit false is
// written by gorm instead of being replaced by the default.
type Product struct {
	BaseModel
	CategoryID       uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index"`
	Name             string    `json:"name" gorm:"not null"`
	Slug             string    `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	ShortDescription string    `json:"short_description" gorm:"type:text"`
	FullDescription  string    `json:"full_description" gorm:"type:text"`
	Price            Money     `json:"price" gorm:"type:decimal(10,2);not null"`
	ImageURL         *string   `json:"image_url,omitempty"`
	Featured         bool      `json:"featured" gorm:"not null;default:false"`
	Active           bool      `json:"active" gorm:"not null"`
	DisplayOrder     int       `json:"display_order" gorm:"not null;default:0"`

	// Relationships
	Resources []ProductResource `json:"resources,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// ProductResource is a file, link or document unlocked once the product has
// been purchased.
type ProductResource struct {
	BaseModel
	ProductID    uuid.UUID    `json:"product_id" gorm:"type:uuid;not null;index"`
	Name         string       `json:"name" gorm:"not null"`
	Description  string       `json:"description" gorm:"type:text"`
	FileURL      string       `json:"file_url" gorm:"type:text"`
	ResourceType ResourceType `json:"resource_type" gorm:"type:varchar(20);not null"`
}
