package service

import (
	"testing"

	"github.com/suvai-store/internal/constants"
)

func TestFulfillmentTransitionTable(t *testing.T) {
	cases := []struct {
		current string
		target  string
		want    bool
	}{
		{constants.FulfillmentStatusNew, constants.FulfillmentStatusConfirmed, true},
		{constants.FulfillmentStatusNew, constants.FulfillmentStatusCancelled, true},
		{constants.FulfillmentStatusNew, constants.FulfillmentStatusShipped, false},
		{constants.FulfillmentStatusConfirmed, constants.FulfillmentStatusProcessing, true},
		{constants.FulfillmentStatusConfirmed, constants.FulfillmentStatusNew, false},
		{constants.FulfillmentStatusProcessing, constants.FulfillmentStatusShipped, true},
		{constants.FulfillmentStatusShipped, constants.FulfillmentStatusDelivered, true},
		{constants.FulfillmentStatusShipped, constants.FulfillmentStatusCancelled, false},
		{constants.FulfillmentStatusDelivered, constants.FulfillmentStatusCancelled, false},
		{constants.FulfillmentStatusCancelled, constants.FulfillmentStatusConfirmed, false},
		// Re-writing the current status is a no-op and allowed.
		{constants.FulfillmentStatusDelivered, constants.FulfillmentStatusDelivered, true},
		// Case and whitespace are normalized.
		{" Shipped ", "DELIVERED", true},
		{"bogus", constants.FulfillmentStatusConfirmed, false},
	}
	for _, tc := range cases {
		got := isFulfillmentTransitionAllowed(tc.current, tc.target)
		if got != tc.want {
			t.Fatalf("transition %q -> %q = %v, want %v", tc.current, tc.target, got, tc.want)
		}
	}
}

func TestIsValidFulfillmentStatus(t *testing.T) {
	for _, status := range []string{
		constants.FulfillmentStatusNew,
		constants.FulfillmentStatusConfirmed,
		constants.FulfillmentStatusProcessing,
		constants.FulfillmentStatusShipped,
		constants.FulfillmentStatusDelivered,
		constants.FulfillmentStatusCancelled,
	} {
		if !isValidFulfillmentStatus(status) {
			t.Fatalf("status %q should be valid", status)
		}
	}
	if isValidFulfillmentStatus("returned") {
		t.Fatalf("unknown status should be invalid")
	}
	if isValidFulfillmentStatus("") {
		t.Fatalf("empty status should be invalid")
	}
}
