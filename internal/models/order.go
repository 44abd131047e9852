// internal/models/order.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	BaseModel
	UserID      uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;index"`
	TotalAmount Money       `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`

	// Relationships
	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem keeps a snapshot of the product name and unit price taken when the
// order was placed. Display code must read these fields and never the live
// product row; ProductID is a weak reference that is cleared when the product
// is deleted.
type OrderItem struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID   *uuid.UUID `json:"product_id" gorm:"type:uuid;index"`
	ProductName string     `json:"product_name" gorm:"not null"`
	Price       Money      `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity    int        `json:"quantity" gorm:"not null;default:1"`
	CreatedAt   time.Time  `json:"created_at"`

	Product *Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Quantity == 0 {
		i.Quantity = 1
	}
	return nil
}

// Subtotal is the snapshot price times quantity. Orders do not guarantee that
// the subtotals of their items add up to TotalAmount.
func (i *OrderItem) Subtotal() Money {
	return i.Price.Times(i.Quantity)
}
