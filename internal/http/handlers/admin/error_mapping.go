package admin

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

var couponAdminErrorRules = []mappedHandlerError{
	{target: service.ErrCouponNotFound, code: response.CodeNotFound, key: "error.coupon_not_found"},
	{target: service.ErrCouponCodeExists, code: response.CodeConflict, key: "error.coupon_code_exists"},
	{target: service.ErrCouponInvalid, code: response.CodeBadRequest, key: "error.coupon_invalid"},
}

var snackAdminErrorRules = []mappedHandlerError{
	{target: service.ErrSnackNotFound, code: response.CodeNotFound, key: "error.snack_not_found"},
	{target: service.ErrSnackInvalid, code: response.CodeBadRequest, key: "error.snack_invalid"},
}

var mediaAdminErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.media_not_found"},
	{target: service.ErrMediaInvalid, code: response.CodeBadRequest, key: "error.media_invalid"},
}

var enquiryAdminErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.enquiry_not_found"},
	{target: service.ErrStatusInvalid, code: response.CodeBadRequest, key: "error.status_invalid"},
	{target: service.ErrEnquiryInvalid, code: response.CodeBadRequest, key: "error.enquiry_invalid"},
}

var orderAdminErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrStatusInvalid, code: response.CodeBadRequest, key: "error.status_invalid"},
}

var smtpTestErrorRules = []mappedHandlerError{
	{target: service.ErrEmailServiceDisabled, code: response.CodeBadRequest, key: "error.email_disabled"},
	{target: service.ErrEmailNotConfigured, code: response.CodeBadRequest, key: "error.email_not_configured"},
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrEmailSendFailed, code: response.CodeBadGateway, key: "error.email_send_failed"},
}

func respondCouponAdminError(c *gin.Context, err error) {
	respondWithMappedError(c, err, couponAdminErrorRules, response.CodeInternal, "error.internal")
}

func respondSnackAdminError(c *gin.Context, err error) {
	respondWithMappedError(c, err, snackAdminErrorRules, response.CodeInternal, "error.internal")
}

func respondMediaAdminError(c *gin.Context, err error) {
	respondWithMappedError(c, err, mediaAdminErrorRules, response.CodeInternal, "error.internal")
}

func respondEnquiryAdminError(c *gin.Context, err error) {
	respondWithMappedError(c, err, enquiryAdminErrorRules, response.CodeInternal, "error.internal")
}

func respondOrderAdminError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderAdminErrorRules, response.CodeInternal, "error.internal")
}

func respondSMTPTestError(c *gin.Context, err error) {
	respondWithMappedError(c, err, smtpTestErrorRules, response.CodeInternal, "error.internal")
}
