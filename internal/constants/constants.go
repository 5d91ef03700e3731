package constants

// Payment status constants
const (
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusFailed    = "failed"
	PaymentStatusCancelled = "cancelled"
)

// Fulfillment status constants
const (
	FulfillmentStatusNew        = "new"
	FulfillmentStatusConfirmed  = "confirmed"
	FulfillmentStatusProcessing = "processing"
	FulfillmentStatusShipped    = "shipped"
	FulfillmentStatusDelivered  = "delivered"
	FulfillmentStatusCancelled  = "cancelled"
)

// Coupon type constants
const (
	CouponTypePercentage = "percentage"
	CouponTypeFixed      = "fixed"
)

// Snack category constants
const (
	SnackCategoryPodi   = "podi"
	SnackCategoryPickle = "pickle"
	SnackCategorySnacks = "snacks"
	SnackCategorySweets = "sweets"
)

// SnackCategories lists the valid catalog categories.
var SnackCategories = []string{
	SnackCategoryPodi,
	SnackCategoryPickle,
	SnackCategorySnacks,
	SnackCategorySweets,
}

// Quantity unit constants
const (
	QuantityUnitPieces = "pieces"
	QuantityUnitGrams  = "grams"
	QuantityUnitKgs    = "kgs"
	QuantityUnitLitre  = "litre"
)

// QuantityUnits lists the valid item quantity units.
var QuantityUnits = []string{
	QuantityUnitPieces,
	QuantityUnitGrams,
	QuantityUnitKgs,
	QuantityUnitLitre,
}

// Enquiry status constants (shared by enquiries, catering and bulk orders)
const (
	EnquiryStatusNew       = "new"
	EnquiryStatusContacted = "contacted"
	EnquiryStatusClosed    = "closed"
)

// Media kind constants
const (
	MediaKindMenu = "menu"
	MediaKindReel = "reel"
)

// Queue constants
const (
	QueueDefault           = "default"
	TaskOrderStatusEmail   = "order:status_email"
	TaskEnquiryAlertEmail  = "enquiry:alert_email"
	TaskOrderTimeoutCancel = "order:timeout_cancel"
)

// Cache defaults
const (
	RedisPrefixDefault = "suvai"
)

// Setting key constants
const (
	SettingKeyShippingConfig = "shipping_config"
)

// Currency constants
const (
	SiteCurrencyDefault = "INR"
)

// Site locale constants
const (
	LocaleTA = "ta"
	LocaleEN = "en"
)

// SupportedLocales lists locales in fallback order.
var SupportedLocales = []string{LocaleEN, LocaleTA}
