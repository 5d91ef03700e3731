package public

import (
	"github.com/suvai-store/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetShipping returns the delivery fee policy for the cart UI.
func (h *Handler) GetShipping(c *gin.Context) {
	cfg, err := h.ShippingService.GetConfig()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, cfg)
}
