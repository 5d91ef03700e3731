package admin

import (
	"errors"

	"github.com/suvai-store/internal/http/response"
	"github.com/suvai-store/internal/models"
	"github.com/suvai-store/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetShippingConfig returns the stored delivery fee policy.
func (h *Handler) GetShippingConfig(c *gin.Context) {
	cfg, err := h.ShippingService.GetConfig()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, cfg)
}

// UpdateShippingRequest is a partial update. Omitted fields keep their
// stored value.
type UpdateShippingRequest struct {
	Charge                *float64              `json:"charge"`
	FreeShippingThreshold *float64              `json:"free_shipping_threshold"`
	Banner                *models.LocalizedText `json:"banner"`
	BannerVisible         *bool                 `json:"banner_visible"`
}

// UpdateShippingConfig merges the request into the stored policy.
func (h *Handler) UpdateShippingConfig(c *gin.Context) {
	var req UpdateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	cfg, err := h.ShippingService.GetConfig()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	if req.Charge != nil {
		cfg.Charge = models.NewMoneyFromDecimal(decimal.NewFromFloat(*req.Charge))
	}
	if req.FreeShippingThreshold != nil {
		cfg.FreeShippingThreshold = models.NewMoneyFromDecimal(decimal.NewFromFloat(*req.FreeShippingThreshold))
	}
	if req.Banner != nil {
		cfg.Banner = *req.Banner
	}
	if req.BannerVisible != nil {
		cfg.BannerVisible = *req.BannerVisible
	}

	updated, err := h.ShippingService.UpdateConfig(cfg)
	if err != nil {
		if errors.Is(err, service.ErrShippingInvalid) {
			respondError(c, response.CodeBadRequest, "error.shipping_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, updated)
}
