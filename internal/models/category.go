// internal/models/category.go
package models

// Category groups products for display. Categories are created by the seed
// routine and read-only afterwards.
type Category struct {
	BaseModel
	Name         string `json:"name" gorm:"not null"`
	Slug         string `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Description  string `json:"description" gorm:"type:text"`
	DisplayOrder int    `json:"display_order" gorm:"not null;default:0"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}
