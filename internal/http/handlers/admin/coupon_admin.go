package admin

import (
	"strconv"
	"strings"
	"time"

	"github.com/suvai-store/internal/http/response"
	"github.com/suvai-store/internal/models"
	"github.com/suvai-store/internal/repository"
	"github.com/suvai-store/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CouponRequest carries coupon fields for create and update.
type CouponRequest struct {
	Code          string               `json:"code" binding:"required"`
	Name          models.LocalizedText `json:"name"`
	Description   models.LocalizedText `json:"description"`
	Type          string               `json:"type" binding:"required"`
	Value         float64              `json:"value" binding:"required"`
	MaxDiscount   float64              `json:"max_discount"`
	MinOrderValue float64              `json:"min_order_value"`
	MaxUsage      int                  `json:"max_usage"`
	ExpiresAt     *time.Time           `json:"expires_at"`
	IsActive      *bool                `json:"is_active"`
}

func (r CouponRequest) toInput() service.CouponInput {
	return service.CouponInput{
		Code:          r.Code,
		Name:          r.Name,
		Description:   r.Description,
		Type:          r.Type,
		Value:         models.NewMoneyFromDecimal(decimal.NewFromFloat(r.Value)),
		MaxDiscount:   models.NewMoneyFromDecimal(decimal.NewFromFloat(r.MaxDiscount)),
		MinOrderValue: models.NewMoneyFromDecimal(decimal.NewFromFloat(r.MinOrderValue)),
		MaxUsage:      r.MaxUsage,
		ExpiresAt:     r.ExpiresAt,
		IsActive:      r.IsActive,
	}
}

// ListCoupons pages through coupons.
func (h *Handler) ListCoupons(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.CouponListFilter{
		Page:     page,
		PageSize: pageSize,
		Code:     strings.TrimSpace(c.Query("code")),
	}
	if raw := c.Query("is_active"); raw != "" {
		active := raw == "true" || raw == "1"
		filter.IsActive = &active
	}

	coupons, total, err := h.CouponAdminService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, coupons, response.BuildPagination(page, pageSize, total))
}

// GetCoupon returns one coupon.
func (h *Handler) GetCoupon(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	coupon, err := h.CouponAdminService.GetByID(uint(id))
	if err != nil {
		respondCouponAdminError(c, err)
		return
	}
	response.Success(c, coupon)
}

// CreateCoupon adds a coupon.
func (h *Handler) CreateCoupon(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	coupon, err := h.CouponAdminService.Create(req.toInput())
	if err != nil {
		respondCouponAdminError(c, err)
		return
	}
	response.Success(c, coupon)
}

// UpdateCoupon replaces a coupon's fields. The usage counter is not
// writable from here.
func (h *Handler) UpdateCoupon(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	coupon, err := h.CouponAdminService.Update(uint(id), req.toInput())
	if err != nil {
		respondCouponAdminError(c, err)
		return
	}
	response.Success(c, coupon)
}

// DeleteCoupon removes a coupon.
func (h *Handler) DeleteCoupon(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.CouponAdminService.Delete(uint(id)); err != nil {
		respondCouponAdminError(c, err)
		return
	}
	response.Success(c, nil)
}
