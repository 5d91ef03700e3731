package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is a priced line captured when the order was placed.
// Name and unit price are snapshots; later catalog edits do not change them.
type OrderItem struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	OrderID      uint           `gorm:"index;not null" json:"order_id"`
	SnackID      uint           `gorm:"index;not null" json:"snack_id"`
	Name         LocalizedText  `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	UnitPrice    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`
	Quantity     int            `gorm:"not null" json:"quantity"`
	QuantityUnit string         `gorm:"type:varchar(20);not null" json:"quantity_unit"`
	TotalPrice   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
