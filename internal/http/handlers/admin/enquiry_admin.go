package admin

import (
	"strconv"
	"strings"

	"github.com/suvai-store/internal/http/response"
	"github.com/suvai-store/internal/repository"
	"github.com/suvai-store/internal/service"

	"github.com/gin-gonic/gin"
)

func enquiryListFilter(c *gin.Context) repository.EnquiryListFilter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	return repository.EnquiryListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
	}
}

// ListEnquiries pages through contact messages.
func (h *Handler) ListEnquiries(c *gin.Context) {
	filter := enquiryListFilter(c)
	enquiries, total, err := h.EnquiryService.ListEnquiries(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, enquiries, response.BuildPagination(filter.Page, filter.PageSize, total))
}

// ListCateringOrders pages through catering requests.
func (h *Handler) ListCateringOrders(c *gin.Context) {
	filter := enquiryListFilter(c)
	orders, total, err := h.EnquiryService.ListCatering(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, orders, response.BuildPagination(filter.Page, filter.PageSize, total))
}

// ListBulkOrders pages through wholesale requests.
func (h *Handler) ListBulkOrders(c *gin.Context) {
	filter := enquiryListFilter(c)
	orders, total, err := h.EnquiryService.ListBulkOrders(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, orders, response.BuildPagination(filter.Page, filter.PageSize, total))
}

// UpdateEnquiryStatusRequest moves a record between new, contacted and
// closed.
type UpdateEnquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) updateEnquiryKindStatus(c *gin.Context, kind string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req UpdateEnquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.EnquiryService.UpdateStatus(kind, uint(id), req.Status); err != nil {
		respondEnquiryAdminError(c, err)
		return
	}
	response.Success(c, nil)
}

// UpdateEnquiryStatus updates a contact message's follow-up status.
func (h *Handler) UpdateEnquiryStatus(c *gin.Context) {
	h.updateEnquiryKindStatus(c, service.EnquiryKindGeneral)
}

// UpdateCateringStatus updates a catering request's follow-up status.
func (h *Handler) UpdateCateringStatus(c *gin.Context) {
	h.updateEnquiryKindStatus(c, service.EnquiryKindCatering)
}

// UpdateBulkOrderStatus updates a wholesale request's follow-up status.
func (h *Handler) UpdateBulkOrderStatus(c *gin.Context) {
	h.updateEnquiryKindStatus(c, service.EnquiryKindBulk)
}
