package worker

import (
	"context"
	"testing"

	"github.com/suvai-store/internal/queue"

	"github.com/hibiken/asynq"
)

func TestBuildEnquiryAlertInputUnknownKind(t *testing.T) {
	c := &Consumer{}
	input, found, err := c.buildEnquiryAlertInput("unknown", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatalf("unknown kind should not resolve, got %+v", input)
	}
}

func TestHandleOrderStatusEmailNilTask(t *testing.T) {
	c := &Consumer{}
	if err := c.handleOrderStatusEmail(context.Background(), nil); err != nil {
		t.Fatalf("nil task should be skipped, got %v", err)
	}
}

func TestHandleOrderTimeoutCancelBadPayload(t *testing.T) {
	c := &Consumer{}
	task := asynq.NewTask(queue.TaskOrderTimeoutCancel, []byte("{not json"))
	if err := c.handleOrderTimeoutCancel(context.Background(), task); err == nil {
		t.Fatalf("malformed payload should fail")
	}
}

func TestHandleOrderTimeoutCancelZeroOrderID(t *testing.T) {
	c := &Consumer{}
	task := asynq.NewTask(queue.TaskOrderTimeoutCancel, []byte(`{"order_id":0}`))
	if err := c.handleOrderTimeoutCancel(context.Background(), task); err != nil {
		t.Fatalf("zero order id should be skipped, got %v", err)
	}
}
