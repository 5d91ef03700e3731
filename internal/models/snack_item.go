package models

import (
	"time"

	"gorm.io/gorm"
)

// SnackItem is a catalog entry.
type SnackItem struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Name         LocalizedText  `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Description  LocalizedText  `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	Price        Money          `gorm:"type:decimal(20,2);not null" json:"price"`
	Image        string         `gorm:"type:varchar(500)" json:"image"`
	Category     string         `gorm:"index;not null" json:"category"`            // podi / pickle / snacks / sweets
	QuantityUnit string         `gorm:"type:varchar(20);not null" json:"quantity_unit"` // pieces / grams / kgs / litre
	Stock        int            `gorm:"not null;default:0" json:"stock"`
	IsEnabled    bool           `gorm:"not null;default:true;index" json:"is_enabled"`
	SortOrder    int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (SnackItem) TableName() string {
	return "snack_items"
}
