package public

import (
	"time"

	"github.com/suvai-store/internal/http/response"
	"github.com/suvai-store/internal/service"

	"github.com/gin-gonic/gin"
)

// EnquiryRequest is a contact form submission.
type EnquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Message string `json:"message" binding:"required"`
}

// CateringRequest is a catering form submission.
type CateringRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Email      string `json:"email"`
	EventDate  string `json:"event_date" binding:"required"` // YYYY-MM-DD
	GuestCount int    `json:"guest_count" binding:"required,min=1"`
	Items      string `json:"items"`
	Notes      string `json:"notes"`
}

// BulkOrderRequest is a wholesale form submission.
type BulkOrderRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email"`
	SnackID  *uint  `json:"snack_id"`
	ItemName string `json:"item_name"`
	Quantity string `json:"quantity" binding:"required"`
	Notes    string `json:"notes"`
}

// CreateEnquiry stores a contact message.
func (h *Handler) CreateEnquiry(c *gin.Context) {
	var req EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	enquiry, err := h.EnquiryService.CreateEnquiry(service.EnquiryInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		respondEnquiryError(c, err)
		return
	}
	response.Success(c, enquiry)
}

// CreateCateringOrder stores a catering request.
func (h *Handler) CreateCateringOrder(c *gin.Context) {
	var req CateringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.EnquiryService.CreateCatering(service.CateringInput{
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		EventDate:  eventDate,
		GuestCount: req.GuestCount,
		Items:      req.Items,
		Notes:      req.Notes,
	})
	if err != nil {
		respondEnquiryError(c, err)
		return
	}
	response.Success(c, order)
}

// CreateBulkOrder stores a wholesale request.
func (h *Handler) CreateBulkOrder(c *gin.Context) {
	var req BulkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.EnquiryService.CreateBulkOrder(service.BulkOrderInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		SnackID:  req.SnackID,
		ItemName: req.ItemName,
		Quantity: req.Quantity,
		Notes:    req.Notes,
	})
	if err != nil {
		respondEnquiryError(c, err)
		return
	}
	response.Success(c, order)
}
