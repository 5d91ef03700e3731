package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/suvai-store/internal/constants"
	"github.com/suvai-store/internal/models"
	"github.com/suvai-store/internal/payment/razorpay"
	"github.com/suvai-store/internal/queue"
	"github.com/suvai-store/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type fakeGateway struct {
	failCreate bool
	rejectSig  bool
	intents    int
}

func (g *fakeGateway) KeyID() string { return "rzp_test_fake" }

func (g *fakeGateway) CreateIntent(_ context.Context, input razorpay.CreateIntentInput) (*razorpay.Intent, error) {
	if g.failCreate {
		return nil, errors.New("gateway down")
	}
	g.intents++
	return &razorpay.Intent{
		ID:       fmt.Sprintf("intent_%d", g.intents),
		Amount:   input.Amount.Paise(),
		Currency: input.Currency,
		Receipt:  input.Receipt,
		Status:   "created",
	}, nil
}

func (g *fakeGateway) VerifySignature(intentID, paymentID, signature string) error {
	if g.rejectSig {
		return errors.New("signature mismatch")
	}
	return nil
}

func setupCheckoutServiceTest(t *testing.T, gateway PaymentGateway) (*CheckoutService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:checkout_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.SnackItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Coupon{},
		&models.Setting{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	orderRepo := repository.NewOrderRepository(db)
	snackRepo := repository.NewSnackRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}

	svc := NewCheckoutService(
		db,
		orderRepo,
		snackRepo,
		couponRepo,
		NewCouponService(couponRepo),
		NewShippingService(settingRepo),
		gateway,
		queueClient,
		30,
	)
	return svc, db
}

func seedSnack(t *testing.T, db *gorm.DB, name, price string, stock int, enabled bool) *models.SnackItem {
	t.Helper()
	snack := models.SnackItem{
		Name:         models.LocalizedText{TA: name, EN: name},
		Price:        money(t, price),
		Category:     constants.SnackCategorySnacks,
		QuantityUnit: constants.QuantityUnitGrams,
		Stock:        stock,
		IsEnabled:    enabled,
	}
	if err := db.Create(&snack).Error; err != nil {
		t.Fatalf("create snack failed: %v", err)
	}
	return &snack
}

func checkoutInput(items ...CheckoutItemInput) InitiateCheckoutInput {
	return InitiateCheckoutInput{
		CustomerName:  "Kumar",
		CustomerEmail: "kumar@example.com",
		CustomerPhone: "9876543210",
		Address:       "5 Bazaar Street, Chennai",
		City:          "Chennai",
		ZipCode:       "600001",
		Items:         items,
	}
}

func TestInitiateCheckoutPricesCartServerSide(t *testing.T) {
	gateway := &fakeGateway{}
	svc, db := setupCheckoutServiceTest(t, gateway)
	snack := seedSnack(t, db, "Murukku", "120", 10, true)

	coupon := models.Coupon{
		Code:     "WELCOME10",
		Type:     constants.CouponTypePercentage,
		Value:    money(t, "10"),
		IsActive: true,
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	input := checkoutInput(CheckoutItemInput{SnackID: snack.ID, Quantity: 2})
	input.CouponCode = "welcome10"
	result, err := svc.InitiateCheckout(context.Background(), input)
	if err != nil {
		t.Fatalf("initiate checkout failed: %v", err)
	}

	// Subtotal 240, default shipping 50, 10% coupon takes off 24.
	order := result.Order
	if got := order.Subtotal.String(); got != "240.00" {
		t.Fatalf("subtotal = %s, want 240.00", got)
	}
	if got := order.ShippingFee.String(); got != "50.00" {
		t.Fatalf("shipping fee = %s, want 50.00", got)
	}
	if got := order.DiscountAmount.String(); got != "24.00" {
		t.Fatalf("discount = %s, want 24.00", got)
	}
	if got := order.TotalAmount.String(); got != "266.00" {
		t.Fatalf("total = %s, want 266.00", got)
	}
	if order.PaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("payment status = %s, want pending", order.PaymentStatus)
	}
	if order.FulfillmentStatus != constants.FulfillmentStatusNew {
		t.Fatalf("fulfillment status = %s, want new", order.FulfillmentStatus)
	}
	if order.CouponCode != "WELCOME10" {
		t.Fatalf("coupon code = %s, want WELCOME10", order.CouponCode)
	}
	if result.IntentID == "" || order.GatewayIntentID != result.IntentID {
		t.Fatalf("intent id not attached: result=%q order=%q", result.IntentID, order.GatewayIntentID)
	}
	if result.GatewayKey != "rzp_test_fake" {
		t.Fatalf("gateway key = %s", result.GatewayKey)
	}
	if result.Currency != constants.SiteCurrencyDefault {
		t.Fatalf("currency = %s, want INR", result.Currency)
	}

	// Stock is only reserved after payment.
	var stored models.SnackItem
	if err := db.First(&stored, snack.ID).Error; err != nil {
		t.Fatalf("load snack failed: %v", err)
	}
	if stored.Stock != 10 {
		t.Fatalf("stock = %d, want 10 before payment", stored.Stock)
	}
}

func TestInitiateCheckoutFreeShippingAtThreshold(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t, &fakeGateway{})
	snack := seedSnack(t, db, "Adhirasam", "250", 10, true)

	result, err := svc.InitiateCheckout(context.Background(), checkoutInput(
		CheckoutItemInput{SnackID: snack.ID, Quantity: 2},
	))
	if err != nil {
		t.Fatalf("initiate checkout failed: %v", err)
	}
	if got := result.Order.ShippingFee.String(); got != "0.00" {
		t.Fatalf("shipping fee = %s, want 0.00 at threshold", got)
	}
	if got := result.Order.TotalAmount.String(); got != "500.00" {
		t.Fatalf("total = %s, want 500.00", got)
	}
}

func TestInitiateCheckoutValidation(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t, &fakeGateway{})
	inStock := seedSnack(t, db, "Murukku", "90", 3, true)
	disabled := seedSnack(t, db, "Seasonal", "90", 3, false)

	if _, err := svc.InitiateCheckout(context.Background(), checkoutInput()); !errors.Is(err, ErrOrderEmpty) {
		t.Fatalf("empty cart err = %v, want ErrOrderEmpty", err)
	}

	input := checkoutInput(CheckoutItemInput{SnackID: inStock.ID, Quantity: 1})
	input.CustomerPhone = "  "
	if _, err := svc.InitiateCheckout(context.Background(), input); !errors.Is(err, ErrCheckoutInvalid) {
		t.Fatalf("missing phone err = %v, want ErrCheckoutInvalid", err)
	}

	input = checkoutInput(CheckoutItemInput{SnackID: inStock.ID, Quantity: 1})
	input.CustomerEmail = "not-an-email"
	if _, err := svc.InitiateCheckout(context.Background(), input); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("bad email err = %v, want ErrInvalidEmail", err)
	}

	if _, err := svc.InitiateCheckout(context.Background(), checkoutInput(
		CheckoutItemInput{SnackID: inStock.ID, Quantity: 4},
	)); !errors.Is(err, ErrSnackOutOfStock) {
		t.Fatalf("over stock err = %v, want ErrSnackOutOfStock", err)
	}

	if _, err := svc.InitiateCheckout(context.Background(), checkoutInput(
		CheckoutItemInput{SnackID: disabled.ID, Quantity: 1},
	)); !errors.Is(err, ErrSnackDisabled) {
		t.Fatalf("disabled snack err = %v, want ErrSnackDisabled", err)
	}

	if _, err := svc.InitiateCheckout(context.Background(), checkoutInput(
		CheckoutItemInput{SnackID: 99999, Quantity: 1},
	)); !errors.Is(err, ErrSnackNotFound) {
		t.Fatalf("missing snack err = %v, want ErrSnackNotFound", err)
	}
}

func TestInitiateCheckoutWithoutGateway(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t, nil)
	snack := seedSnack(t, db, "Murukku", "90", 3, true)

	_, err := svc.InitiateCheckout(context.Background(), checkoutInput(
		CheckoutItemInput{SnackID: snack.ID, Quantity: 1},
	))
	if !errors.Is(err, ErrGatewayDisabled) {
		t.Fatalf("err = %v, want ErrGatewayDisabled", err)
	}
}

func TestInitiateCheckoutGatewayFailureKeepsPendingOrder(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t, &fakeGateway{failCreate: true})
	snack := seedSnack(t, db, "Murukku", "90", 3, true)

	_, err := svc.InitiateCheckout(context.Background(), checkoutInput(
		CheckoutItemInput{SnackID: snack.ID, Quantity: 1},
	))
	if !errors.Is(err, ErrGatewayUnavailable) {
		t.Fatalf("err = %v, want ErrGatewayUnavailable", err)
	}

	// The pending order survives so the customer can retry payment.
	var count int64
	if err := db.Model(&models.Order{}).Where("payment_status = ?", constants.PaymentStatusPending).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("pending orders = %d, want 1", count)
	}
}

func TestConfirmPaymentSettlesOnce(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t, &fakeGateway{})
	snack := seedSnack(t, db, "Murukku", "120", 10, true)

	coupon := models.Coupon{
		Code:     "FLAT20",
		Type:     constants.CouponTypeFixed,
		Value:    money(t, "20"),
		IsActive: true,
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	input := checkoutInput(CheckoutItemInput{SnackID: snack.ID, Quantity: 3})
	input.CouponCode = "FLAT20"
	result, err := svc.InitiateCheckout(context.Background(), input)
	if err != nil {
		t.Fatalf("initiate checkout failed: %v", err)
	}

	confirm := ConfirmPaymentInput{
		OrderID:   result.Order.ID,
		IntentID:  result.IntentID,
		PaymentID: "pay_123",
		Signature: "sig",
	}
	paid, err := svc.ConfirmPayment(confirm)
	if err != nil {
		t.Fatalf("confirm payment failed: %v", err)
	}
	if paid.PaymentStatus != constants.PaymentStatusPaid {
		t.Fatalf("payment status = %s, want paid", paid.PaymentStatus)
	}
	if paid.FulfillmentStatus != constants.FulfillmentStatusConfirmed {
		t.Fatalf("fulfillment status = %s, want confirmed", paid.FulfillmentStatus)
	}
	if paid.GatewayPaymentID != "pay_123" {
		t.Fatalf("payment id = %s, want pay_123", paid.GatewayPaymentID)
	}
	if paid.PaidAt == nil {
		t.Fatalf("paid_at not set")
	}

	var stored models.SnackItem
	if err := db.First(&stored, snack.ID).Error; err != nil {
		t.Fatalf("load snack failed: %v", err)
	}
	if stored.Stock != 7 {
		t.Fatalf("stock = %d, want 7 after payment", stored.Stock)
	}
	var storedCoupon models.Coupon
	if err := db.First(&storedCoupon, coupon.ID).Error; err != nil {
		t.Fatalf("load coupon failed: %v", err)
	}
	if storedCoupon.UsedCount != 1 {
		t.Fatalf("coupon used_count = %d, want 1", storedCoupon.UsedCount)
	}

	// A second confirm is accepted but has no further side effects.
	again, err := svc.ConfirmPayment(confirm)
	if err != nil {
		t.Fatalf("repeat confirm failed: %v", err)
	}
	if again.PaymentStatus != constants.PaymentStatusPaid {
		t.Fatalf("repeat payment status = %s, want paid", again.PaymentStatus)
	}
	if err := db.First(&stored, snack.ID).Error; err != nil {
		t.Fatalf("load snack failed: %v", err)
	}
	if stored.Stock != 7 {
		t.Fatalf("stock = %d after repeat confirm, want 7", stored.Stock)
	}
	if err := db.First(&storedCoupon, coupon.ID).Error; err != nil {
		t.Fatalf("load coupon failed: %v", err)
	}
	if storedCoupon.UsedCount != 1 {
		t.Fatalf("coupon used_count = %d after repeat confirm, want 1", storedCoupon.UsedCount)
	}
}

func TestConfirmPaymentInvalidSignatureMarksFailed(t *testing.T) {
	gateway := &fakeGateway{}
	svc, db := setupCheckoutServiceTest(t, gateway)
	snack := seedSnack(t, db, "Murukku", "120", 10, true)

	result, err := svc.InitiateCheckout(context.Background(), checkoutInput(
		CheckoutItemInput{SnackID: snack.ID, Quantity: 1},
	))
	if err != nil {
		t.Fatalf("initiate checkout failed: %v", err)
	}

	gateway.rejectSig = true
	_, err = svc.ConfirmPayment(ConfirmPaymentInput{
		OrderID:   result.Order.ID,
		IntentID:  result.IntentID,
		PaymentID: "pay_bad",
		Signature: "tampered",
	})
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("err = %v, want ErrSignatureInvalid", err)
	}

	var stored models.Order
	if err := db.First(&stored, result.Order.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if stored.PaymentStatus != constants.PaymentStatusFailed {
		t.Fatalf("payment status = %s, want failed", stored.PaymentStatus)
	}

	var snackRow models.SnackItem
	if err := db.First(&snackRow, snack.ID).Error; err != nil {
		t.Fatalf("load snack failed: %v", err)
	}
	if snackRow.Stock != 10 {
		t.Fatalf("stock = %d, want untouched 10", snackRow.Stock)
	}
}

func TestConfirmPaymentIntentMismatch(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t, &fakeGateway{})
	snack := seedSnack(t, db, "Murukku", "120", 10, true)

	result, err := svc.InitiateCheckout(context.Background(), checkoutInput(
		CheckoutItemInput{SnackID: snack.ID, Quantity: 1},
	))
	if err != nil {
		t.Fatalf("initiate checkout failed: %v", err)
	}

	_, err = svc.ConfirmPayment(ConfirmPaymentInput{
		OrderID:   result.Order.ID,
		IntentID:  "intent_other",
		PaymentID: "pay_123",
		Signature: "sig",
	})
	if !errors.Is(err, ErrOrderIntentMismatch) {
		t.Fatalf("err = %v, want ErrOrderIntentMismatch", err)
	}

	if _, err := svc.ConfirmPayment(ConfirmPaymentInput{OrderID: 99999, IntentID: "x"}); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("missing order err = %v, want ErrOrderNotFound", err)
	}
}
