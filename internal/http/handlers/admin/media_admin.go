package admin

import (
	"strconv"
	"strings"

	"github.com/suvai-store/internal/http/response"
	"github.com/suvai-store/internal/models"
	"github.com/suvai-store/internal/repository"
	"github.com/suvai-store/internal/service"

	"github.com/gin-gonic/gin"
)

// MediaRequest carries media fields for create and update.
type MediaRequest struct {
	Kind      string               `json:"kind" binding:"required"`
	URL       string               `json:"url" binding:"required"`
	Caption   models.LocalizedText `json:"caption"`
	SortOrder int                  `json:"sort_order"`
	IsActive  *bool                `json:"is_active"`
}

func (r MediaRequest) toInput() service.MediaInput {
	return service.MediaInput{
		Kind:      r.Kind,
		URL:       r.URL,
		Caption:   r.Caption,
		SortOrder: r.SortOrder,
		IsActive:  r.IsActive,
	}
}

// ListMedia pages through media entries, including inactive ones.
func (h *Handler) ListMedia(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	entries, total, err := h.MediaService.List(repository.MediaListFilter{
		Page:     page,
		PageSize: pageSize,
		Kind:     strings.TrimSpace(c.Query("kind")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, entries, response.BuildPagination(page, pageSize, total))
}

// CreateMedia adds a media entry.
func (h *Handler) CreateMedia(c *gin.Context) {
	var req MediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	entry, err := h.MediaService.Create(req.toInput())
	if err != nil {
		respondMediaAdminError(c, err)
		return
	}
	response.Success(c, entry)
}

// UpdateMedia replaces a media entry's fields.
func (h *Handler) UpdateMedia(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req MediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	entry, err := h.MediaService.Update(uint(id), req.toInput())
	if err != nil {
		respondMediaAdminError(c, err)
		return
	}
	response.Success(c, entry)
}

// DeleteMedia removes a media entry.
func (h *Handler) DeleteMedia(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.MediaService.Delete(uint(id)); err != nil {
		respondMediaAdminError(c, err)
		return
	}
	response.Success(c, nil)
}
