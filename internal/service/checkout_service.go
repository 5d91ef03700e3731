package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/suvai-store/internal/constants"
	"github.com/suvai-store/internal/logger"
	"github.com/suvai-store/internal/models"
	"github.com/suvai-store/internal/payment/razorpay"
	"github.com/suvai-store/internal/queue"
	"github.com/suvai-store/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentGateway is what the orchestrator needs from the payment provider.
// The concrete client is injected so tests can swap in a fake.
type PaymentGateway interface {
	KeyID() string
	CreateIntent(ctx context.Context, input razorpay.CreateIntentInput) (*razorpay.Intent, error)
	VerifySignature(intentID, paymentID, signature string) error
}

// CheckoutService orchestrates cart pricing, order creation and payment
// confirmation.
type CheckoutService struct {
	db              *gorm.DB
	orderRepo       repository.OrderRepository
	snackRepo       repository.SnackRepository
	couponRepo      repository.CouponRepository
	couponService   *CouponService
	shippingService *ShippingService
	gateway         PaymentGateway
	queueClient     *queue.Client
	expireMinutes   int
}

// NewCheckoutService creates a checkout service. gateway may be nil when the
// store runs without payment credentials.
func NewCheckoutService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	snackRepo repository.SnackRepository,
	couponRepo repository.CouponRepository,
	couponService *CouponService,
	shippingService *ShippingService,
	gateway PaymentGateway,
	queueClient *queue.Client,
	expireMinutes int,
) *CheckoutService {
	if expireMinutes <= 0 {
		expireMinutes = 30
	}
	return &CheckoutService{
		db:              db,
		orderRepo:       orderRepo,
		snackRepo:       snackRepo,
		couponRepo:      couponRepo,
		couponService:   couponService,
		shippingService: shippingService,
		gateway:         gateway,
		queueClient:     queueClient,
		expireMinutes:   expireMinutes,
	}
}

// CheckoutItemInput is one cart line.
type CheckoutItemInput struct {
	SnackID  uint
	Quantity int
}

// InitiateCheckoutInput is the typed checkout request.
type InitiateCheckoutInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Address       string
	City          string
	ZipCode       string
	Locale        string
	CouponCode    string
	Items         []CheckoutItemInput
}

// CheckoutResult is handed back to the storefront to launch the hosted
// payment widget.
type CheckoutResult struct {
	Order       *models.Order
	IntentID    string
	GatewayKey  string
	TotalAmount models.Money
	Currency    string
}

// ConfirmPaymentInput is the payment callback from the storefront.
type ConfirmPaymentInput struct {
	OrderID   uint
	IntentID  string
	PaymentID string
	Signature string
}

// InitiateCheckout prices the cart server-side, persists a pending order and
// registers a payment intent with the gateway. A gateway failure leaves the
// pending order in place so the customer can retry.
func (s *CheckoutService) InitiateCheckout(ctx context.Context, input InitiateCheckoutInput) (*CheckoutResult, error) {
	if err := validateCheckoutInput(&input); err != nil {
		return nil, err
	}
	if s.gateway == nil {
		return nil, ErrGatewayDisabled
	}

	items, subtotal, err := s.priceItems(input.Items)
	if err != nil {
		return nil, err
	}

	discount := models.NewMoneyFromInt(0)
	var coupon *models.Coupon
	if strings.TrimSpace(input.CouponCode) != "" {
		result, err := s.couponService.Evaluate(input.CouponCode, subtotal)
		if err != nil {
			return nil, err
		}
		discount = result.DiscountAmount
		coupon = result.Coupon
	}

	shippingFee, err := s.shippingService.Quote(subtotal)
	if err != nil {
		return nil, err
	}

	total := subtotal.Add(shippingFee.Decimal).Sub(discount.Decimal)
	if total.IsNegative() {
		total = decimal.Zero
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(s.expireMinutes) * time.Minute)
	order := &models.Order{
		OrderNo:           generateOrderNo(),
		CustomerName:      input.CustomerName,
		CustomerEmail:     input.CustomerEmail,
		CustomerPhone:     input.CustomerPhone,
		Address:           input.Address,
		City:              input.City,
		ZipCode:           input.ZipCode,
		Locale:            input.Locale,
		Currency:          constants.SiteCurrencyDefault,
		Subtotal:          subtotal,
		DiscountAmount:    discount,
		ShippingFee:       shippingFee,
		TotalAmount:       models.NewMoneyFromDecimal(total),
		PaymentStatus:     constants.PaymentStatusPending,
		FulfillmentStatus: constants.FulfillmentStatusNew,
		ExpiresAt:         &expiresAt,
	}
	if coupon != nil {
		order.CouponID = &coupon.ID
		order.CouponCode = coupon.Code
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.WithTx(tx).Create(order, items)
	})
	if err != nil {
		return nil, err
	}

	intent, err := s.gateway.CreateIntent(ctx, razorpay.CreateIntentInput{
		Amount:   order.TotalAmount,
		Currency: order.Currency,
		Receipt:  order.OrderNo,
		Notes: map[string]string{
			"customer_name":  order.CustomerName,
			"customer_email": order.CustomerEmail,
		},
	})
	if err != nil {
		logger.Warnw("checkout_intent_create_failed",
			"order_no", order.OrderNo,
			"error", err,
		)
		return nil, ErrGatewayUnavailable
	}

	if err := s.orderRepo.UpdateFields(order.ID, map[string]interface{}{
		"gateway_intent_id": intent.ID,
	}); err != nil {
		return nil, err
	}
	order.GatewayIntentID = intent.ID

	if err := s.queueClient.EnqueueOrderTimeoutCancel(queue.OrderTimeoutCancelPayload{
		OrderID: order.ID,
	}, time.Until(expiresAt)); err != nil {
		logger.Warnw("order_timeout_cancel_enqueue_failed",
			"order_id", order.ID,
			"error", err,
		)
	}

	logger.Infow("checkout_initiated",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"intent_id", intent.ID,
		"total", order.TotalAmount.String(),
	)

	return &CheckoutResult{
		Order:       order,
		IntentID:    intent.ID,
		GatewayKey:  s.gateway.KeyID(),
		TotalAmount: order.TotalAmount,
		Currency:    order.Currency,
	}, nil
}

// ConfirmPayment verifies the gateway callback signature and settles the
// order. A repeated confirm of an already paid order succeeds without
// side effects.
func (s *CheckoutService) ConfirmPayment(input ConfirmPaymentInput) (*models.Order, error) {
	if s.gateway == nil {
		return nil, ErrGatewayDisabled
	}
	order, err := s.orderRepo.GetByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	intentID := strings.TrimSpace(input.IntentID)
	if order.GatewayIntentID == "" || order.GatewayIntentID != intentID {
		return nil, ErrOrderIntentMismatch
	}

	if order.PaymentStatus == constants.PaymentStatusPaid {
		return order, nil
	}
	if order.PaymentStatus != constants.PaymentStatusPending {
		return nil, ErrOrderNotPending
	}

	if err := s.gateway.VerifySignature(intentID, input.PaymentID, input.Signature); err != nil {
		if _, markErr := s.orderRepo.UpdatePaymentStatusIf(
			order.ID,
			constants.PaymentStatusPending,
			constants.PaymentStatusFailed,
			map[string]interface{}{
				"gateway_payment_id": strings.TrimSpace(input.PaymentID),
			},
		); markErr != nil {
			logger.Errorw("order_mark_failed_error",
				"order_id", order.ID,
				"error", markErr,
			)
		}
		logger.Warnw("payment_signature_invalid",
			"order_id", order.ID,
			"intent_id", intentID,
		)
		return nil, ErrSignatureInvalid
	}

	now := time.Now()
	var settled bool
	err = s.db.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		updated, err := orderRepo.UpdatePaymentStatusIf(
			order.ID,
			constants.PaymentStatusPending,
			constants.PaymentStatusPaid,
			map[string]interface{}{
				"gateway_payment_id": strings.TrimSpace(input.PaymentID),
				"paid_at":            now,
				"fulfillment_status": constants.FulfillmentStatusConfirmed,
			},
		)
		if err != nil {
			return err
		}
		if !updated {
			// Lost the race to a concurrent confirm.
			return nil
		}
		settled = true

		snackRepo := s.snackRepo.WithTx(tx)
		for _, item := range order.Items {
			ok, err := snackRepo.DecrementStock(item.SnackID, item.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				logger.Warnw("stock_decrement_skipped",
					"order_id", order.ID,
					"snack_id", item.SnackID,
					"quantity", item.Quantity,
				)
			}
		}

		if order.CouponID != nil {
			ok, err := s.couponRepo.WithTx(tx).IncrementUsedCount(*order.CouponID, 1)
			if err != nil {
				return err
			}
			if !ok {
				logger.Warnw("coupon_usage_increment_skipped",
					"order_id", order.ID,
					"coupon_id", *order.CouponID,
				)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fresh, err := s.orderRepo.GetByID(order.ID)
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		return nil, ErrOrderNotFound
	}
	if !settled {
		if fresh.PaymentStatus == constants.PaymentStatusPaid {
			return fresh, nil
		}
		return nil, ErrOrderNotPending
	}

	logger.Infow("order_paid",
		"order_id", fresh.ID,
		"order_no", fresh.OrderNo,
		"payment_id", fresh.GatewayPaymentID,
	)

	if strings.TrimSpace(fresh.CustomerEmail) != "" {
		if err := s.queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
			OrderID: fresh.ID,
			Status:  constants.PaymentStatusPaid,
		}); err != nil {
			logger.Warnw("order_status_email_enqueue_failed",
				"order_id", fresh.ID,
				"error", err,
			)
		}
	}
	return fresh, nil
}

// priceItems loads the catalog rows and snapshots them into order items.
func (s *CheckoutService) priceItems(inputs []CheckoutItemInput) ([]models.OrderItem, models.Money, error) {
	ids := make([]uint, 0, len(inputs))
	for _, item := range inputs {
		ids = append(ids, item.SnackID)
	}
	snacks, err := s.snackRepo.ListByIDs(ids)
	if err != nil {
		return nil, models.Money{}, err
	}
	byID := make(map[uint]models.SnackItem, len(snacks))
	for _, snack := range snacks {
		byID[snack.ID] = snack
	}

	items := make([]models.OrderItem, 0, len(inputs))
	subtotal := decimal.Zero
	for _, input := range inputs {
		snack, ok := byID[input.SnackID]
		if !ok {
			return nil, models.Money{}, ErrSnackNotFound
		}
		if !snack.IsEnabled {
			return nil, models.Money{}, ErrSnackDisabled
		}
		if snack.Stock < input.Quantity {
			return nil, models.Money{}, ErrSnackOutOfStock
		}
		lineTotal := snack.Price.Mul(decimal.NewFromInt(int64(input.Quantity)))
		items = append(items, models.OrderItem{
			SnackID:      snack.ID,
			Name:         snack.Name,
			UnitPrice:    snack.Price,
			Quantity:     input.Quantity,
			QuantityUnit: snack.QuantityUnit,
			TotalPrice:   models.NewMoneyFromDecimal(lineTotal),
		})
		subtotal = subtotal.Add(lineTotal)
	}
	return items, models.NewMoneyFromDecimal(subtotal), nil
}

func validateCheckoutInput(input *InitiateCheckoutInput) error {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.CustomerEmail = strings.TrimSpace(input.CustomerEmail)
	input.CustomerPhone = strings.TrimSpace(input.CustomerPhone)
	input.Address = strings.TrimSpace(input.Address)

	if len(input.Items) == 0 {
		return ErrOrderEmpty
	}
	for _, item := range input.Items {
		if item.SnackID == 0 || item.Quantity < 1 {
			return ErrOrderEmpty
		}
	}
	if input.CustomerName == "" || input.CustomerPhone == "" || input.Address == "" {
		return ErrCheckoutInvalid
	}
	if input.CustomerEmail != "" {
		if _, err := mail.ParseAddress(input.CustomerEmail); err != nil {
			return ErrInvalidEmail
		}
	}
	if input.Locale != constants.LocaleTA {
		input.Locale = constants.LocaleEN
	}
	return nil
}
