package admin

import (
	"strconv"
	"strings"

	"github.com/suvai-store/internal/http/response"
	"github.com/suvai-store/internal/models"
	"github.com/suvai-store/internal/repository"
	"github.com/suvai-store/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SnackRequest carries catalog fields for create and update.
type SnackRequest struct {
	Name         models.LocalizedText `json:"name" binding:"required"`
	Description  models.LocalizedText `json:"description"`
	Price        float64              `json:"price" binding:"required"`
	Image        string               `json:"image"`
	Category     string               `json:"category" binding:"required"`
	QuantityUnit string               `json:"quantity_unit" binding:"required"`
	Stock        int                  `json:"stock"`
	IsEnabled    *bool                `json:"is_enabled"`
	SortOrder    int                  `json:"sort_order"`
}

func (r SnackRequest) toInput() service.SnackInput {
	return service.SnackInput{
		Name:         r.Name,
		Description:  r.Description,
		Price:        models.NewMoneyFromDecimal(decimal.NewFromFloat(r.Price)),
		Image:        r.Image,
		Category:     r.Category,
		QuantityUnit: r.QuantityUnit,
		Stock:        r.Stock,
		IsEnabled:    r.IsEnabled,
		SortOrder:    r.SortOrder,
	}
}

// ListSnacks pages through the catalog, including disabled items.
func (h *Handler) ListSnacks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	items, total, err := h.SnackService.List(repository.SnackListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: strings.TrimSpace(c.Query("category")),
		Search:   strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// GetSnack returns one catalog item.
func (h *Handler) GetSnack(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	item, err := h.SnackService.GetByID(uint(id))
	if err != nil {
		respondSnackAdminError(c, err)
		return
	}
	response.Success(c, item)
}

// CreateSnack adds a catalog item.
func (h *Handler) CreateSnack(c *gin.Context) {
	var req SnackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	item, err := h.SnackService.Create(req.toInput())
	if err != nil {
		respondSnackAdminError(c, err)
		return
	}
	response.Success(c, item)
}

// UpdateSnack replaces a catalog item's fields.
func (h *Handler) UpdateSnack(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req SnackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	item, err := h.SnackService.Update(uint(id), req.toInput())
	if err != nil {
		respondSnackAdminError(c, err)
		return
	}
	response.Success(c, item)
}

// SetSnackEnabledRequest flips storefront visibility.
type SetSnackEnabledRequest struct {
	IsEnabled *bool `json:"is_enabled" binding:"required"`
}

// SetSnackEnabled shows or hides a catalog item on the storefront.
func (h *Handler) SetSnackEnabled(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req SetSnackEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	item, err := h.SnackService.SetEnabled(uint(id), *req.IsEnabled)
	if err != nil {
		respondSnackAdminError(c, err)
		return
	}
	response.Success(c, item)
}

// UpdateSnackStockRequest sets the absolute stock count.
type UpdateSnackStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

// UpdateSnackStock replaces the stock count of a catalog item.
func (h *Handler) UpdateSnackStock(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req UpdateSnackStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	item, err := h.SnackService.UpdateStock(uint(id), *req.Stock)
	if err != nil {
		respondSnackAdminError(c, err)
		return
	}
	response.Success(c, item)
}

// DeleteSnack removes a catalog item.
func (h *Handler) DeleteSnack(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.SnackService.Delete(uint(id)); err != nil {
		respondSnackAdminError(c, err)
		return
	}
	response.Success(c, nil)
}
