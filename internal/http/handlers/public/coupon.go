package public

import (
	"github.com/suvai-store/internal/http/response"
	"github.com/suvai-store/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CheckCoupon returns a usable coupon by code. With a subtotal query the
// discount is computed and the minimum order value enforced; without one
// the coupon is returned as-is so the cart can show it before totalling.
func (h *Handler) CheckCoupon(c *gin.Context) {
	code := c.Param("code")
	subtotalRaw := c.DefaultQuery("subtotal", "")
	if subtotalRaw == "" {
		coupon, err := h.CouponService.Lookup(code)
		if err != nil {
			respondCouponError(c, err)
			return
		}
		response.Success(c, gin.H{
			"code":            coupon.Code,
			"name":            coupon.Name,
			"description":     coupon.Description,
			"type":            coupon.Type,
			"value":           coupon.Value,
			"min_order_value": coupon.MinOrderValue,
		})
		return
	}

	subtotal, err := decimal.NewFromString(subtotalRaw)
	if err != nil || subtotal.IsNegative() {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	result, err := h.CouponService.Evaluate(code, models.NewMoneyFromDecimal(subtotal))
	if err != nil {
		respondCouponError(c, err)
		return
	}

	response.Success(c, gin.H{
		"code":            result.Coupon.Code,
		"name":            result.Coupon.Name,
		"description":     result.Coupon.Description,
		"type":            result.Coupon.Type,
		"discount_amount": result.DiscountAmount,
	})
}
