package public

import (
	"errors"

	"github.com/suvai-store/internal/http/response"
	"github.com/suvai-store/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError binds a service sentinel to a response code and
// localization key.
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var couponErrorRules = []mappedHandlerError{
	{target: service.ErrCouponNotFound, code: response.CodeNotFound, key: "error.coupon_not_found"},
	{target: service.ErrCouponInactive, code: response.CodeBadRequest, key: "error.coupon_inactive"},
	{target: service.ErrCouponExpired, code: response.CodeBadRequest, key: "error.coupon_expired"},
	{target: service.ErrCouponUsageLimit, code: response.CodeBadRequest, key: "error.coupon_usage_limit"},
	{target: service.ErrCouponMinOrder, code: response.CodeBadRequest, key: "error.coupon_min_order"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrOrderEmpty, code: response.CodeBadRequest, key: "error.order_items_empty"},
	{target: service.ErrCheckoutInvalid, code: response.CodeBadRequest, key: "error.bad_request"},
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrSnackNotFound, code: response.CodeBadRequest, key: "error.snack_not_found"},
	{target: service.ErrSnackDisabled, code: response.CodeBadRequest, key: "error.snack_disabled"},
	{target: service.ErrSnackOutOfStock, code: response.CodeBadRequest, key: "error.snack_out_of_stock"},
	{target: service.ErrGatewayDisabled, code: response.CodeInternal, key: "error.gateway_unavailable"},
	{target: service.ErrGatewayUnavailable, code: response.CodeBadGateway, key: "error.gateway_unavailable"},
}

var confirmPaymentErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrOrderNotPending, code: response.CodeBadRequest, key: "error.order_not_pending"},
	{target: service.ErrOrderIntentMismatch, code: response.CodeBadRequest, key: "error.order_intent_mismatch"},
	{target: service.ErrSignatureInvalid, code: response.CodeBadRequest, key: "error.signature_invalid"},
	{target: service.ErrGatewayDisabled, code: response.CodeInternal, key: "error.gateway_unavailable"},
}

var enquiryErrorRules = []mappedHandlerError{
	{target: service.ErrEnquiryInvalid, code: response.CodeBadRequest, key: "error.bad_request"},
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrSnackNotFound, code: response.CodeBadRequest, key: "error.snack_not_found"},
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(checkoutErrorRules, couponErrorRules), response.CodeInternal, "error.internal")
}

func respondConfirmPaymentError(c *gin.Context, err error) {
	respondWithMappedError(c, err, confirmPaymentErrorRules, response.CodeInternal, "error.internal")
}

func respondCouponError(c *gin.Context, err error) {
	respondWithMappedError(c, err, couponErrorRules, response.CodeInternal, "error.internal")
}

func respondEnquiryError(c *gin.Context, err error) {
	respondWithMappedError(c, err, enquiryErrorRules, response.CodeInternal, "error.internal")
}
