package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/suvai-store/internal/constants"
	"github.com/suvai-store/internal/models"
	"github.com/suvai-store/internal/queue"
	"github.com/suvai-store/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}
	return NewOrderService(repository.NewOrderRepository(db), queueClient), db
}

func seedOrder(t *testing.T, db *gorm.DB, paymentStatus, fulfillmentStatus string) *models.Order {
	t.Helper()
	order := models.Order{
		OrderNo:           fmt.Sprintf("ORD%d", time.Now().UnixNano()),
		CustomerName:      "Meena",
		CustomerEmail:     "meena@example.com",
		CustomerPhone:     "9876543210",
		Address:           "12 Temple Street, Madurai",
		Currency:          constants.SiteCurrencyDefault,
		TotalAmount:       money(t, "250"),
		PaymentStatus:     paymentStatus,
		FulfillmentStatus: fulfillmentStatus,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return &order
}

func TestUpdateFulfillmentStatusHappyPath(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order := seedOrder(t, db, constants.PaymentStatusPaid, constants.FulfillmentStatusConfirmed)

	updated, err := svc.UpdateFulfillmentStatus(order.ID, constants.FulfillmentStatusProcessing, "")
	if err != nil {
		t.Fatalf("update fulfillment failed: %v", err)
	}
	if updated.FulfillmentStatus != constants.FulfillmentStatusProcessing {
		t.Fatalf("status = %s, want processing", updated.FulfillmentStatus)
	}

	var stored models.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if stored.FulfillmentStatus != constants.FulfillmentStatusProcessing {
		t.Fatalf("stored status = %s, want processing", stored.FulfillmentStatus)
	}
}

func TestUpdateFulfillmentStatusPersistsNotes(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order := seedOrder(t, db, constants.PaymentStatusPaid, constants.FulfillmentStatusConfirmed)

	updated, err := svc.UpdateFulfillmentStatus(order.ID, constants.FulfillmentStatusProcessing, "packed in two boxes")
	if err != nil {
		t.Fatalf("update fulfillment failed: %v", err)
	}
	if updated.Notes != "packed in two boxes" {
		t.Fatalf("notes = %q, want packed in two boxes", updated.Notes)
	}

	var stored models.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if stored.Notes != "packed in two boxes" {
		t.Fatalf("stored notes = %q, want packed in two boxes", stored.Notes)
	}

	// Notes can be updated without a status change.
	if _, err := svc.UpdateFulfillmentStatus(order.ID, constants.FulfillmentStatusProcessing, "courier booked"); err != nil {
		t.Fatalf("same-status notes update failed: %v", err)
	}
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if stored.Notes != "courier booked" {
		t.Fatalf("stored notes = %q, want courier booked", stored.Notes)
	}
	if stored.FulfillmentStatus != constants.FulfillmentStatusProcessing {
		t.Fatalf("status = %s, want processing", stored.FulfillmentStatus)
	}

	// A later transition without notes leaves the stored notes alone.
	if _, err := svc.UpdateFulfillmentStatus(order.ID, constants.FulfillmentStatusShipped, ""); err != nil {
		t.Fatalf("update fulfillment failed: %v", err)
	}
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if stored.Notes != "courier booked" {
		t.Fatalf("stored notes = %q, want courier booked kept", stored.Notes)
	}
}

func TestUpdateFulfillmentStatusSameStatusIsNoOp(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order := seedOrder(t, db, constants.PaymentStatusPending, constants.FulfillmentStatusNew)

	updated, err := svc.UpdateFulfillmentStatus(order.ID, constants.FulfillmentStatusNew, "")
	if err != nil {
		t.Fatalf("same-status update failed: %v", err)
	}
	if updated.FulfillmentStatus != constants.FulfillmentStatusNew {
		t.Fatalf("status = %s, want new", updated.FulfillmentStatus)
	}
}

func TestUpdateFulfillmentStatusRejections(t *testing.T) {
	svc, db := setupOrderServiceTest(t)

	unpaid := seedOrder(t, db, constants.PaymentStatusPending, constants.FulfillmentStatusNew)
	delivered := seedOrder(t, db, constants.PaymentStatusPaid, constants.FulfillmentStatusDelivered)
	shipped := seedOrder(t, db, constants.PaymentStatusPaid, constants.FulfillmentStatusShipped)

	// Advancing an unpaid order past new is refused, cancelling is not.
	if _, err := svc.UpdateFulfillmentStatus(unpaid.ID, constants.FulfillmentStatusConfirmed, ""); !errors.Is(err, ErrStatusInvalid) {
		t.Fatalf("unpaid confirm err = %v, want ErrStatusInvalid", err)
	}
	if _, err := svc.UpdateFulfillmentStatus(unpaid.ID, constants.FulfillmentStatusCancelled, ""); err != nil {
		t.Fatalf("unpaid cancel failed: %v", err)
	}

	// Delivered is terminal.
	if _, err := svc.UpdateFulfillmentStatus(delivered.ID, constants.FulfillmentStatusCancelled, ""); !errors.Is(err, ErrStatusInvalid) {
		t.Fatalf("delivered cancel err = %v, want ErrStatusInvalid", err)
	}

	// Shipped orders cannot be cancelled.
	if _, err := svc.UpdateFulfillmentStatus(shipped.ID, constants.FulfillmentStatusCancelled, ""); !errors.Is(err, ErrStatusInvalid) {
		t.Fatalf("shipped cancel err = %v, want ErrStatusInvalid", err)
	}

	if _, err := svc.UpdateFulfillmentStatus(shipped.ID, "returned", ""); !errors.Is(err, ErrStatusInvalid) {
		t.Fatalf("unknown status err = %v, want ErrStatusInvalid", err)
	}

	if _, err := svc.UpdateFulfillmentStatus(99999, constants.FulfillmentStatusConfirmed, ""); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("missing order err = %v, want ErrOrderNotFound", err)
	}
}

func TestGetByOrderNo(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order := seedOrder(t, db, constants.PaymentStatusPaid, constants.FulfillmentStatusConfirmed)

	found, err := svc.GetByOrderNo(" " + order.OrderNo + " ")
	if err != nil {
		t.Fatalf("get by order no failed: %v", err)
	}
	if found.ID != order.ID {
		t.Fatalf("found order %d, want %d", found.ID, order.ID)
	}

	if _, err := svc.GetByOrderNo("ORDMISSING"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("missing order err = %v, want ErrOrderNotFound", err)
	}
	if _, err := svc.GetByOrderNo("  "); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("blank order no err = %v, want ErrOrderNotFound", err)
	}
}

func TestCancelTimedOut(t *testing.T) {
	svc, db := setupOrderServiceTest(t)

	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Hour)

	due := seedOrder(t, db, constants.PaymentStatusPending, constants.FulfillmentStatusNew)
	if err := db.Model(due).Update("expires_at", past).Error; err != nil {
		t.Fatalf("set expires_at failed: %v", err)
	}
	notDue := seedOrder(t, db, constants.PaymentStatusPending, constants.FulfillmentStatusNew)
	if err := db.Model(notDue).Update("expires_at", future).Error; err != nil {
		t.Fatalf("set expires_at failed: %v", err)
	}
	paid := seedOrder(t, db, constants.PaymentStatusPaid, constants.FulfillmentStatusConfirmed)

	cancelled, err := svc.CancelTimedOut(due.ID)
	if err != nil {
		t.Fatalf("cancel timed out failed: %v", err)
	}
	if !cancelled {
		t.Fatalf("expected due order to be cancelled")
	}
	var stored models.Order
	if err := db.First(&stored, due.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if stored.PaymentStatus != constants.PaymentStatusCancelled {
		t.Fatalf("payment status = %s, want cancelled", stored.PaymentStatus)
	}
	if stored.FulfillmentStatus != constants.FulfillmentStatusCancelled {
		t.Fatalf("fulfillment status = %s, want cancelled", stored.FulfillmentStatus)
	}
	if stored.CancelledAt == nil {
		t.Fatalf("cancelled_at not set")
	}

	cancelled, err = svc.CancelTimedOut(notDue.ID)
	if err != nil {
		t.Fatalf("cancel not-due failed: %v", err)
	}
	if cancelled {
		t.Fatalf("order before its deadline must not be cancelled")
	}

	cancelled, err = svc.CancelTimedOut(paid.ID)
	if err != nil {
		t.Fatalf("cancel paid failed: %v", err)
	}
	if cancelled {
		t.Fatalf("paid order must not be cancelled")
	}

	if _, err := svc.CancelTimedOut(99999); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("missing order err = %v, want ErrOrderNotFound", err)
	}
}

func TestGenerateOrderNo(t *testing.T) {
	first := generateOrderNo()
	second := generateOrderNo()
	if len(first) != len("ORD")+14+6 {
		t.Fatalf("order no %q has unexpected length", first)
	}
	if first == second {
		t.Fatalf("consecutive order numbers collided: %s", first)
	}
}
