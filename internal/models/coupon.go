package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon is a discount code. Codes are stored uppercase.
type Coupon struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Code          string         `gorm:"uniqueIndex;not null" json:"code"`
	Name          LocalizedText  `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Description   LocalizedText  `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	Type          string         `gorm:"not null" json:"type"` // percentage / fixed
	Value         Money          `gorm:"type:decimal(20,2);not null" json:"value"`
	MaxDiscount   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"max_discount"`     // percentage cap, 0 = uncapped
	MinOrderValue Money          `gorm:"type:decimal(20,2);not null;default:0" json:"min_order_value"`
	MaxUsage      int            `gorm:"not null;default:0" json:"max_usage"` // 0 = unlimited
	UsedCount     int            `gorm:"not null;default:0" json:"used_count"`
	IsActive      bool           `gorm:"not null;default:true" json:"is_active"`
	ExpiresAt     *time.Time     `gorm:"index" json:"expires_at,omitempty"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Coupon) TableName() string {
	return "coupons"
}
