package admin

import (
	"github.com/suvai-store/internal/http/response"

	"github.com/gin-gonic/gin"
)

// SMTPTestRequest sends a probe email to verify the SMTP settings.
type SMTPTestRequest struct {
	To      string `json:"to" binding:"required"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// TestSMTP sends a test email through the configured SMTP server.
func (h *Handler) TestSMTP(c *gin.Context) {
	var req SMTPTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.EmailService.SendCustomEmail(req.To, req.Subject, req.Body); err != nil {
		respondSMTPTestError(c, err)
		return
	}
	response.Success(c, nil)
}
