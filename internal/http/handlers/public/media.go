package public

import (
	"strconv"

	"github.com/suvai-store/internal/constants"
	"github.com/suvai-store/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListMenuImages returns the active menu image feed.
func (h *Handler) ListMenuImages(c *gin.Context) {
	h.listMedia(c, constants.MediaKindMenu)
}

// ListReels returns the active reel feed.
func (h *Handler) ListReels(c *gin.Context) {
	h.listMedia(c, constants.MediaKindReel)
}

func (h *Handler) listMedia(c *gin.Context, kind string) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	page, pageSize = normalizePagination(page, pageSize)

	entries, total, err := h.MediaService.ListPublic(kind, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, entries, response.BuildPagination(page, pageSize, total))
}
