package admin

import (
	"github.com/suvai-store/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the back-office landing page counters.
func (h *Handler) GetDashboard(c *gin.Context) {
	stats, err := h.DashboardService.Stats()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, stats)
}
