package public

import (
	"strconv"
	"strings"

	"github.com/suvai-store/internal/http/response"
	"github.com/suvai-store/internal/repository"
	"github.com/suvai-store/internal/service"

	"github.com/gin-gonic/gin"
)

// ListSnacks returns the enabled catalog, optionally filtered by category
// or search text.
func (h *Handler) ListSnacks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	items, total, err := h.SnackService.ListPublic(repository.SnackListFilter{
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

// GetSnack returns one enabled catalog item.
func (h *Handler) GetSnack(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	item, err := h.SnackService.GetPublic(uint(id))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrSnackNotFound, code: response.CodeNotFound, key: "error.snack_not_found"},
		}, response.CodeInternal, "error.internal")
		return
	}

	response.Success(c, item)
}
