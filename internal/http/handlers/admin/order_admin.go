package admin

import (
	"strconv"
	"strings"
	"time"

	"github.com/suvai-store/internal/http/response"
	"github.com/suvai-store/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListOrders pages through orders with optional status and search filters.
func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.OrderListFilter{
		Page:              page,
		PageSize:          pageSize,
		PaymentStatus:     strings.TrimSpace(c.Query("payment_status")),
		FulfillmentStatus: strings.TrimSpace(c.Query("fulfillment_status")),
		OrderNo:           strings.TrimSpace(c.Query("order_no")),
		CustomerEmail:     strings.TrimSpace(c.Query("email")),
	}
	if from, err := time.Parse("2006-01-02", c.Query("created_from")); err == nil {
		filter.CreatedFrom = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("created_to")); err == nil {
		end := to.AddDate(0, 0, 1)
		filter.CreatedTo = &end
	}

	orders, total, err := h.OrderService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, orders, response.BuildPagination(page, pageSize, total))
}

// GetOrder returns one order with its items.
func (h *Handler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.GetByID(uint(id))
	if err != nil {
		respondOrderAdminError(c, err)
		return
	}
	response.Success(c, order)
}

// UpdateFulfillmentRequest moves an order to a new fulfillment status,
// optionally recording back-office notes on the order.
type UpdateFulfillmentRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// UpdateOrderFulfillment applies a fulfillment transition to an order.
func (h *Handler) UpdateOrderFulfillment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req UpdateFulfillmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.OrderService.UpdateFulfillmentStatus(uint(id), req.Status, req.Notes)
	if err != nil {
		respondOrderAdminError(c, err)
		return
	}
	response.Success(c, order)
}
