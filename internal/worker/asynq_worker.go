package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/suvai-store/internal/logger"
	"github.com/suvai-store/internal/provider"
	"github.com/suvai-store/internal/queue"
	"github.com/suvai-store/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer processes the background tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register binds task handlers onto the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusEmail, c.handleOrderStatusEmail)
	mux.HandleFunc(queue.TaskEnquiryAlertEmail, c.handleEnquiryAlertEmail)
	mux.HandleFunc(queue.TaskOrderTimeoutCancel, c.handleOrderTimeoutCancel)
}

func (c *Consumer) handleOrderStatusEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	receiverEmail := strings.TrimSpace(order.CustomerEmail)
	if receiverEmail == "" {
		logger.Debugw("worker_order_status_email_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_status_email_skip_email_service_nil", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.FulfillmentStatus
	}
	input := service.OrderStatusEmailInput{
		OrderNo:  order.OrderNo,
		Status:   status,
		Amount:   order.TotalAmount,
		Currency: order.Currency,
	}
	if err := c.EmailService.SendOrderStatusEmail(receiverEmail, input, order.Locale); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) || errors.Is(err, service.ErrEmailNotConfigured) {
			logger.Debugw("worker_order_status_email_skip_disabled", "order_id", order.ID, "order_no", order.OrderNo)
			return nil
		}
		if errors.Is(err, service.ErrInvalidEmail) {
			logger.Debugw("worker_order_status_email_skip_invalid_receiver", "order_id", order.ID, "order_no", order.OrderNo)
			return nil
		}
		logger.Warnw("worker_order_status_email_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"receiver_email", receiverEmail,
			"status", status,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleEnquiryAlertEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_enquiry_alert_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.EnquiryAlertEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_enquiry_alert_unmarshal_failed", "error", err)
		return err
	}
	if payload.EnquiryID == 0 {
		logger.Debugw("worker_enquiry_alert_skip_invalid_payload", "enquiry_id", payload.EnquiryID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_enquiry_alert_skip_email_service_nil", "enquiry_id", payload.EnquiryID)
		return nil
	}

	input, found, err := c.buildEnquiryAlertInput(payload.Kind, payload.EnquiryID)
	if err != nil {
		logger.Warnw("worker_enquiry_alert_fetch_failed", "kind", payload.Kind, "enquiry_id", payload.EnquiryID, "error", err)
		return err
	}
	if !found {
		logger.Debugw("worker_enquiry_alert_skip_not_found", "kind", payload.Kind, "enquiry_id", payload.EnquiryID)
		return nil
	}

	if err := c.EmailService.SendEnquiryAlert(input); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) || errors.Is(err, service.ErrEmailNotConfigured) {
			logger.Debugw("worker_enquiry_alert_skip_disabled", "kind", payload.Kind, "enquiry_id", payload.EnquiryID)
			return nil
		}
		logger.Warnw("worker_enquiry_alert_send_failed",
			"kind", payload.Kind,
			"enquiry_id", payload.EnquiryID,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) buildEnquiryAlertInput(kind string, id uint) (service.EnquiryAlertInput, bool, error) {
	switch kind {
	case service.EnquiryKindGeneral:
		enquiry, err := c.EnquiryRepo.GetByID(id)
		if err != nil || enquiry == nil {
			return service.EnquiryAlertInput{}, false, err
		}
		return service.EnquiryAlertInput{
			Kind:    kind,
			Name:    enquiry.Name,
			Phone:   enquiry.Phone,
			Email:   enquiry.Email,
			Details: enquiry.Message,
		}, true, nil
	case service.EnquiryKindCatering:
		order, err := c.CateringRepo.GetByID(id)
		if err != nil || order == nil {
			return service.EnquiryAlertInput{}, false, err
		}
		details := fmt.Sprintf("Event date: %s\nGuests: %d", order.EventDate.Format("2006-01-02"), order.GuestCount)
		if strings.TrimSpace(order.Items) != "" {
			details += "\nItems: " + order.Items
		}
		if strings.TrimSpace(order.Notes) != "" {
			details += "\nNotes: " + order.Notes
		}
		return service.EnquiryAlertInput{
			Kind:    kind,
			Name:    order.Name,
			Phone:   order.Phone,
			Email:   order.Email,
			Details: details,
		}, true, nil
	case service.EnquiryKindBulk:
		order, err := c.BulkRepo.GetByID(id)
		if err != nil || order == nil {
			return service.EnquiryAlertInput{}, false, err
		}
		details := "Quantity: " + order.Quantity
		if strings.TrimSpace(order.ItemName) != "" {
			details = "Item: " + order.ItemName + "\n" + details
		}
		if strings.TrimSpace(order.Notes) != "" {
			details += "\nNotes: " + order.Notes
		}
		return service.EnquiryAlertInput{
			Kind:    kind,
			Name:    order.Name,
			Phone:   order.Phone,
			Email:   order.Email,
			Details: details,
		}, true, nil
	default:
		return service.EnquiryAlertInput{}, false, nil
	}
}

func (c *Consumer) handleOrderTimeoutCancel(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_timeout_cancel_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderTimeoutCancelPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_timeout_cancel_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_timeout_cancel_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	if c.OrderService == nil {
		logger.Warnw("worker_order_timeout_cancel_skip_order_service_nil", "order_id", payload.OrderID)
		return nil
	}
	cancelled, err := c.OrderService.CancelTimedOut(payload.OrderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			logger.Debugw("worker_order_timeout_cancel_skip_order_not_found", "order_id", payload.OrderID)
			return nil
		}
		logger.Warnw("worker_order_timeout_cancel_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if !cancelled {
		logger.Debugw("worker_order_timeout_cancel_skip_not_due", "order_id", payload.OrderID)
	}
	return nil
}
