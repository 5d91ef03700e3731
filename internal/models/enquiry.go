package models

import (
	"time"

	"gorm.io/gorm"
)

// Enquiry is a contact message from the storefront.
type Enquiry struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(200);not null" json:"name"`
	Phone     string         `gorm:"type:varchar(30);not null" json:"phone"`
	Email     string         `gorm:"type:varchar(200)" json:"email"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	Status    string         `gorm:"index;not null;default:'new'" json:"status"` // new / contacted / closed
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Enquiry) TableName() string {
	return "enquiries"
}
