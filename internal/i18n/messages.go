package i18n

var messages = map[string]map[string]string{
	LocaleEN: {
		"error.bad_request":           "Invalid request",
		"error.not_found":             "Resource not found",
		"error.internal":              "Internal server error",
		"error.unauthorized":          "Unauthorized",
		"error.forbidden":             "Forbidden",
		"error.auth_header_missing":   "Authorization header missing",
		"error.auth_header_invalid":   "Authorization header invalid",
		"error.token_invalid":         "Invalid token",
		"error.token_revoked":         "Token revoked",
		"error.jwt_secret_missing":    "JWT secret not configured",
		"error.login_failed":          "Invalid username or password",
		"error.login_rate_limited":     "Too many login attempts, try again in %d seconds",
		"error.rate_limited":           "Too many requests, try again in %d seconds",
		"error.rate_limit_unavailable": "Rate limiter unavailable",
		"error.coupon_not_found":      "Coupon code not found",
		"error.coupon_inactive":       "Coupon is not active",
		"error.coupon_expired":        "Coupon has expired",
		"error.coupon_usage_limit":    "Coupon usage limit reached",
		"error.coupon_min_order":      "Order amount is below the coupon minimum",
		"error.order_not_found":       "Order not found",
		"error.order_not_pending":     "Order is not awaiting payment",
		"error.order_intent_mismatch": "Payment does not belong to this order",
		"error.signature_invalid":     "Payment signature verification failed",
		"error.gateway_unavailable":   "Payment gateway unavailable, try again later",
		"error.order_items_empty":     "Order must contain at least one item",
		"error.snack_not_found":       "Item not found",
		"error.snack_disabled":        "Item is currently unavailable",
		"error.snack_out_of_stock":    "Item is out of stock",
		"error.category_invalid":      "Invalid category",
		"error.quantity_unit_invalid": "Invalid quantity unit",
		"error.shipping_invalid":      "Invalid shipping configuration",
		"error.status_invalid":        "Invalid status transition",
		"error.enquiry_not_found":     "Enquiry not found",
		"error.media_not_found":       "Media entry not found",
		"error.email_disabled":        "Email sending is disabled",
		"error.email_invalid":         "Invalid email address",
		"error.email_not_configured":  "SMTP is not configured",
		"error.email_send_failed":     "Failed to send email",
		"error.coupon_invalid":        "Invalid coupon fields",
		"error.coupon_code_exists":    "Coupon code already exists",
		"error.snack_invalid":         "Invalid catalog item fields",
		"error.media_invalid":         "Invalid media entry fields",
		"error.enquiry_invalid":       "Invalid enquiry fields",
		"error.password_old_invalid":  "Current password is incorrect",
		"error.password_weak":         "New password is too weak",

		"order.status.pending":   "Awaiting payment",
		"order.status.paid":      "Paid",
		"order.status.failed":    "Payment failed",
		"order.status.cancelled": "Cancelled",

		"fulfillment.status.new":        "Received",
		"fulfillment.status.confirmed":  "Confirmed",
		"fulfillment.status.processing": "Being prepared",
		"fulfillment.status.shipped":    "Shipped",
		"fulfillment.status.delivered":  "Delivered",
		"fulfillment.status.cancelled":  "Cancelled",

		"email.order_status.subject":        "Your order %s is %s",
		"email.order_status.body_paid":      "Order %s has been paid.\nAmount: %s %s\n\nWe will confirm it shortly.",
		"email.order_status.body_shipped":   "Order %s has been shipped.\nAmount: %s %s",
		"email.order_status.body_delivered": "Order %s has been delivered.\nAmount: %s %s\n\nThank you for shopping with us.",
		"email.order_status.body_cancelled": "Order %s has been cancelled.\nAmount: %s %s",
		"email.order_status.body":           "Order %s is now: %s\nAmount: %s %s",

		"email.enquiry_alert.subject": "New %s from %s",
		"email.enquiry_alert.body":    "Name: %s\nPhone: %s\nEmail: %s\n\n%s",

		"enquiry.kind.enquiry":  "enquiry",
		"enquiry.kind.catering": "catering order",
		"enquiry.kind.bulk":     "bulk order",
	},
	LocaleTA: {
		"error.coupon_not_found":      "கூப்பன் குறியீடு கிடைக்கவில்லை",
		"error.coupon_inactive":       "கூப்பன் செயலில் இல்லை",
		"error.coupon_expired":        "கூப்பன் காலாவதியாகிவிட்டது",
		"error.coupon_usage_limit":    "கூப்பன் பயன்பாட்டு வரம்பு முடிந்தது",
		"error.coupon_min_order":      "ஆர்டர் தொகை கூப்பன் குறைந்தபட்சத்தை விட குறைவு",
		"error.order_not_found":       "ஆர்டர் கிடைக்கவில்லை",
		"error.order_not_pending":     "இந்த ஆர்டர் கட்டணத்திற்காக காத்திருக்கவில்லை",
		"error.signature_invalid":     "கட்டண சரிபார்ப்பு தோல்வியடைந்தது",
		"error.gateway_unavailable":   "கட்டண சேவை தற்போது கிடைக்கவில்லை",
		"error.snack_not_found":       "பொருள் கிடைக்கவில்லை",
		"error.snack_out_of_stock":    "பொருள் கையிருப்பில் இல்லை",
		"error.bad_request":           "தவறான கோரிக்கை",
		"error.not_found":             "தகவல் கிடைக்கவில்லை",
		"error.internal":              "சேவையக பிழை",

		"order.status.pending":   "கட்டணத்திற்காக காத்திருக்கிறது",
		"order.status.paid":      "கட்டணம் செலுத்தப்பட்டது",
		"order.status.failed":    "கட்டணம் தோல்வியடைந்தது",
		"order.status.cancelled": "ரத்து செய்யப்பட்டது",

		"fulfillment.status.new":        "பெறப்பட்டது",
		"fulfillment.status.confirmed":  "உறுதி செய்யப்பட்டது",
		"fulfillment.status.processing": "தயாராகிறது",
		"fulfillment.status.shipped":    "அனுப்பப்பட்டது",
		"fulfillment.status.delivered":  "வழங்கப்பட்டது",
		"fulfillment.status.cancelled":  "ரத்து செய்யப்பட்டது",

		"email.order_status.subject":        "உங்கள் ஆர்டர் %s: %s",
		"email.order_status.body_paid":      "ஆர்டர் %s கட்டணம் செலுத்தப்பட்டது.\nதொகை: %s %s\n\nவிரைவில் உறுதி செய்கிறோம்.",
		"email.order_status.body_shipped":   "ஆர்டர் %s அனுப்பப்பட்டது.\nதொகை: %s %s",
		"email.order_status.body_delivered": "ஆர்டர் %s வழங்கப்பட்டது.\nதொகை: %s %s\n\nநன்றி.",
		"email.order_status.body_cancelled": "ஆர்டர் %s ரத்து செய்யப்பட்டது.\nதொகை: %s %s",
		"email.order_status.body":           "ஆர்டர் %s நிலை: %s\nதொகை: %s %s",
	},
}
