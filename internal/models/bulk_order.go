package models

import (
	"time"

	"gorm.io/gorm"
)

// BulkOrder is a wholesale quantity request for a single catalog item.
type BulkOrder struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(200);not null" json:"name"`
	Phone     string         `gorm:"type:varchar(30);not null" json:"phone"`
	Email     string         `gorm:"type:varchar(200)" json:"email"`
	SnackID   *uint          `gorm:"index" json:"snack_id,omitempty"`
	ItemName  string         `gorm:"type:varchar(200)" json:"item_name"`
	Quantity  string         `gorm:"type:varchar(100);not null" json:"quantity"` // free-form, e.g. "25 kgs"
	Notes     string         `gorm:"type:text" json:"notes"`
	Status    string         `gorm:"index;not null;default:'new'" json:"status"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (BulkOrder) TableName() string {
	return "bulk_orders"
}
