package models

import (
	"time"

	"gorm.io/gorm"
)

// CateringOrder is a catering request for an event.
type CateringOrder struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	Name       string         `gorm:"type:varchar(200);not null" json:"name"`
	Phone      string         `gorm:"type:varchar(30);not null" json:"phone"`
	Email      string         `gorm:"type:varchar(200)" json:"email"`
	EventDate  time.Time      `gorm:"index;not null" json:"event_date"`
	GuestCount int            `gorm:"not null" json:"guest_count"`
	Items      string         `gorm:"type:text" json:"items"` // free-form menu wishes
	Notes      string         `gorm:"type:text" json:"notes"`
	Status     string         `gorm:"index;not null;default:'new'" json:"status"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (CateringOrder) TableName() string {
	return "catering_orders"
}
