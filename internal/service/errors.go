package service

import "errors"

// Sentinel errors shared by the service layer. Handlers map these to
// response codes in their error mapping tables.
var (
	ErrNotFound = errors.New("record not found")

	ErrCouponNotFound   = errors.New("coupon not found")
	ErrCouponInactive   = errors.New("coupon inactive")
	ErrCouponExpired    = errors.New("coupon expired")
	ErrCouponUsageLimit = errors.New("coupon usage limit reached")
	ErrCouponMinOrder   = errors.New("minimum order value not met")
	ErrCouponInvalid    = errors.New("coupon invalid")
	ErrCouponCodeExists = errors.New("coupon code already exists")

	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderNotPending     = errors.New("order is not pending payment")
	ErrOrderIntentMismatch = errors.New("payment intent does not match order")
	ErrOrderEmpty          = errors.New("order has no items")
	ErrCheckoutInvalid     = errors.New("checkout request invalid")
	ErrStatusInvalid       = errors.New("status transition not allowed")

	ErrSignatureInvalid   = errors.New("payment signature invalid")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrGatewayDisabled    = errors.New("payment gateway not configured")

	ErrSnackNotFound   = errors.New("snack item not found")
	ErrSnackInvalid    = errors.New("snack item invalid")
	ErrSnackDisabled   = errors.New("snack item not available")
	ErrSnackOutOfStock = errors.New("snack item out of stock")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountLocked      = errors.New("too many failed attempts")
	ErrTokenInvalid       = errors.New("token invalid or expired")
	ErrPasswordTooWeak    = errors.New("password must be at least 8 characters")

	ErrShippingInvalid = errors.New("shipping config invalid")

	ErrEnquiryInvalid = errors.New("enquiry invalid")
	ErrMediaInvalid   = errors.New("media entry invalid")

	ErrEmailServiceDisabled = errors.New("email sending disabled")
	ErrEmailNotConfigured   = errors.New("email service not configured")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrEmailSendFailed      = errors.New("email send failed")
)
