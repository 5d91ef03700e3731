package queue

import (
	"encoding/json"

	"github.com/suvai-store/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderStatusEmail notifies the customer about an order status change.
	TaskOrderStatusEmail = constants.TaskOrderStatusEmail
	// TaskEnquiryAlertEmail alerts the shop inbox about a new enquiry.
	TaskEnquiryAlertEmail = constants.TaskEnquiryAlertEmail
	// TaskOrderTimeoutCancel cancels an order left unpaid past its deadline.
	TaskOrderTimeoutCancel = constants.TaskOrderTimeoutCancel
)

// OrderStatusEmailPayload carries the order status email task.
type OrderStatusEmailPayload struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

// EnquiryAlertEmailPayload carries the enquiry alert task. Kind is one of
// enquiry, catering or bulk.
type EnquiryAlertEmailPayload struct {
	Kind      string `json:"kind"`
	EnquiryID uint   `json:"enquiry_id"`
}

// OrderTimeoutCancelPayload carries the timeout cancel task.
type OrderTimeoutCancelPayload struct {
	OrderID uint `json:"order_id"`
}

// NewOrderStatusEmailTask builds an order status email task.
func NewOrderStatusEmailTask(payload OrderStatusEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusEmail, body), nil
}

// NewEnquiryAlertEmailTask builds an enquiry alert task.
func NewEnquiryAlertEmailTask(payload EnquiryAlertEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskEnquiryAlertEmail, body), nil
}

// NewOrderTimeoutCancelTask builds a timeout cancel task.
func NewOrderTimeoutCancelTask(payload OrderTimeoutCancelPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderTimeoutCancel, body), nil
}
