package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a customer order with a snapshot of everything priced at checkout.
type Order struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	OrderNo           string         `gorm:"uniqueIndex;not null" json:"order_no"`
	CustomerName      string         `gorm:"type:varchar(200);not null" json:"customer_name"`
	CustomerEmail     string         `gorm:"type:varchar(200);index;not null" json:"customer_email"`
	CustomerPhone     string         `gorm:"type:varchar(30);not null" json:"customer_phone"`
	Address           string         `gorm:"type:text;not null" json:"address"`
	City              string         `gorm:"type:varchar(120)" json:"city"`
	ZipCode           string         `gorm:"type:varchar(20)" json:"zip_code"`
	Locale            string         `gorm:"type:varchar(10)" json:"locale,omitempty"`
	Currency          string         `gorm:"type:varchar(10);not null" json:"currency"`
	Subtotal          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`
	DiscountAmount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_amount"`
	ShippingFee       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_fee"`
	TotalAmount       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`
	CouponID          *uint          `gorm:"index" json:"coupon_id,omitempty"`
	CouponCode        string         `gorm:"type:varchar(60)" json:"coupon_code,omitempty"`
	PaymentStatus     string         `gorm:"index;not null" json:"payment_status"`
	FulfillmentStatus string         `gorm:"index;not null" json:"fulfillment_status"`
	Notes             string         `gorm:"type:text" json:"notes,omitempty"`
	GatewayIntentID   string         `gorm:"type:varchar(120);index" json:"gateway_intent_id,omitempty"`
	GatewayPaymentID  string         `gorm:"type:varchar(120)" json:"gateway_payment_id,omitempty"`
	ExpiresAt         *time.Time     `gorm:"index" json:"expires_at,omitempty"`
	PaidAt            *time.Time     `gorm:"index" json:"paid_at,omitempty"`
	CancelledAt       *time.Time     `gorm:"index" json:"cancelled_at,omitempty"`
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
