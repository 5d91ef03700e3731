package service

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/suvai-store/internal/constants"
	"github.com/suvai-store/internal/logger"
	"github.com/suvai-store/internal/models"
	"github.com/suvai-store/internal/queue"
	"github.com/suvai-store/internal/repository"
)

// OrderService covers order queries and the fulfillment lifecycle.
// Payment state changes live in CheckoutService.
type OrderService struct {
	orderRepo   repository.OrderRepository
	queueClient *queue.Client
}

// NewOrderService creates an order service.
func NewOrderService(orderRepo repository.OrderRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		queueClient: queueClient,
	}
}

// GetByOrderNo fetches an order with items by its public order number.
func (s *OrderService) GetByOrderNo(orderNo string) (*models.Order, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetByID fetches an order with items for the back office.
func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// List pages through orders for the back office.
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// UpdateFulfillmentStatus moves an order along the fulfillment lifecycle.
// Only forward transitions are allowed; delivered and cancelled are terminal.
// Advancing past new requires the order to be paid. Non-empty notes are
// stored on the order alongside the status.
func (s *OrderService) UpdateFulfillmentStatus(id uint, target, notes string) (*models.Order, error) {
	target = strings.ToLower(strings.TrimSpace(target))
	notes = strings.TrimSpace(notes)
	if !isValidFulfillmentStatus(target) {
		return nil, ErrStatusInvalid
	}

	order, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order.FulfillmentStatus == target {
		if notes == "" {
			return order, nil
		}
		if err := s.orderRepo.UpdateFields(id, map[string]interface{}{"notes": notes}); err != nil {
			return nil, err
		}
		order.Notes = notes
		return order, nil
	}
	if !isFulfillmentTransitionAllowed(order.FulfillmentStatus, target) {
		return nil, ErrStatusInvalid
	}
	if target != constants.FulfillmentStatusCancelled && order.PaymentStatus != constants.PaymentStatusPaid {
		return nil, ErrStatusInvalid
	}

	if err := s.orderRepo.UpdateFulfillmentStatus(id, target, notes); err != nil {
		return nil, err
	}
	order.FulfillmentStatus = target
	if notes != "" {
		order.Notes = notes
	}

	s.notifyStatusChange(order, target)
	return order, nil
}

// CancelTimedOut cancels an order still pending payment past its deadline.
// Returns false when the order was already paid, cancelled or not yet due.
func (s *OrderService) CancelTimedOut(id uint) (bool, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return false, err
	}
	if order == nil {
		return false, ErrOrderNotFound
	}
	if order.PaymentStatus != constants.PaymentStatusPending {
		return false, nil
	}
	now := time.Now()
	if order.ExpiresAt != nil && now.Before(*order.ExpiresAt) {
		return false, nil
	}

	cancelled, err := s.orderRepo.UpdatePaymentStatusIf(
		order.ID,
		constants.PaymentStatusPending,
		constants.PaymentStatusCancelled,
		map[string]interface{}{
			"fulfillment_status": constants.FulfillmentStatusCancelled,
			"cancelled_at":       now,
		},
	)
	if err != nil {
		return false, err
	}
	if cancelled {
		logger.Infow("order_timeout_cancelled",
			"order_id", order.ID,
			"order_no", order.OrderNo,
		)
	}
	return cancelled, nil
}

// notifyStatusChange queues the customer-facing status email. Enqueue
// failures are logged and swallowed so they never fail the admin action.
func (s *OrderService) notifyStatusChange(order *models.Order, status string) {
	if order == nil || strings.TrimSpace(order.CustomerEmail) == "" {
		return
	}
	if err := s.queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
		OrderID: order.ID,
		Status:  status,
	}); err != nil {
		logger.Warnw("order_status_email_enqueue_failed",
			"order_id", order.ID,
			"status", status,
			"error", err,
		)
	}
}

// generateOrderNo builds a public order number: ORD + timestamp + 6 random
// digits. crypto/rand keeps concurrent checkouts from colliding.
func generateOrderNo() string {
	return "ORD" + time.Now().Format("20060102150405") + randNumeric(6)
}

func randNumeric(length int) string {
	const digits = "0123456789"
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			buf[i] = '0'
			continue
		}
		buf[i] = digits[n.Int64()]
	}
	return string(buf)
}
