package public

import (
	"strconv"

	"github.com/suvai-store/internal/http/response"
	"github.com/suvai-store/internal/i18n"
	"github.com/suvai-store/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutItemRequest is one cart line.
type CheckoutItemRequest struct {
	SnackID  uint `json:"snack_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// CheckoutRequest initiates a checkout.
type CheckoutRequest struct {
	CustomerName  string                `json:"customer_name" binding:"required"`
	CustomerEmail string                `json:"customer_email"`
	CustomerPhone string                `json:"customer_phone" binding:"required"`
	Address       string                `json:"address" binding:"required"`
	City          string                `json:"city"`
	ZipCode       string                `json:"zip_code"`
	CouponCode    string                `json:"coupon_code"`
	Items         []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
}

// VerifyPaymentRequest is the gateway callback relayed by the storefront.
type VerifyPaymentRequest struct {
	OrderID   uint   `json:"order_id" binding:"required"`
	IntentID  string `json:"intent_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// CreateOrder starts a checkout and returns the payment widget parameters.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	items := make([]service.CheckoutItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CheckoutItemInput{
			SnackID:  item.SnackID,
			Quantity: item.Quantity,
		})
	}

	result, err := h.CheckoutService.InitiateCheckout(c.Request.Context(), service.InitiateCheckoutInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
		City:          req.City,
		ZipCode:       req.ZipCode,
		Locale:        i18n.ResolveLocale(c),
		CouponCode:    req.CouponCode,
		Items:         items,
	})
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	response.Success(c, gin.H{
		"order_id":     result.Order.ID,
		"order_no":     result.Order.OrderNo,
		"intent_id":    result.IntentID,
		"key_id":       result.GatewayKey,
		"total_amount": result.TotalAmount,
		"currency":     result.Currency,
	})
}

// VerifyPayment confirms a payment after the hosted widget returns.
func (h *Handler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.CheckoutService.ConfirmPayment(service.ConfirmPaymentInput{
		OrderID:   req.OrderID,
		IntentID:  req.IntentID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		respondConfirmPaymentError(c, err)
		return
	}

	response.Success(c, order)
}

// GetOrder returns an order by id or by its public order number.
func (h *Handler) GetOrder(c *gin.Context) {
	param := c.Param("id")
	if id, err := strconv.ParseUint(param, 10, 64); err == nil {
		order, err := h.OrderService.GetByID(uint(id))
		if err != nil {
			respondWithMappedError(c, err, []mappedHandlerError{
				{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
			}, response.CodeInternal, "error.internal")
			return
		}
		response.Success(c, order)
		return
	}

	order, err := h.OrderService.GetByOrderNo(param)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
		}, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, order)
}
