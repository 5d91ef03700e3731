package service

import (
	"strings"

	"github.com/suvai-store/internal/constants"
)

// allowedFulfillmentTransitions maps a fulfillment status to the set of
// statuses it may move to. Delivered and cancelled are terminal.
var allowedFulfillmentTransitions = map[string][]string{
	constants.FulfillmentStatusNew: {
		constants.FulfillmentStatusConfirmed,
		constants.FulfillmentStatusCancelled,
	},
	constants.FulfillmentStatusConfirmed: {
		constants.FulfillmentStatusProcessing,
		constants.FulfillmentStatusCancelled,
	},
	constants.FulfillmentStatusProcessing: {
		constants.FulfillmentStatusShipped,
		constants.FulfillmentStatusCancelled,
	},
	constants.FulfillmentStatusShipped: {
		constants.FulfillmentStatusDelivered,
	},
	constants.FulfillmentStatusDelivered: {},
	constants.FulfillmentStatusCancelled: {},
}

// isFulfillmentTransitionAllowed reports whether current may move to target.
// Writing the current status again is a no-op and always allowed.
func isFulfillmentTransitionAllowed(current, target string) bool {
	current = strings.ToLower(strings.TrimSpace(current))
	target = strings.ToLower(strings.TrimSpace(target))
	if current == target {
		return true
	}
	allowed, ok := allowedFulfillmentTransitions[current]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// isValidFulfillmentStatus reports whether the value is a known status.
func isValidFulfillmentStatus(status string) bool {
	_, ok := allowedFulfillmentTransitions[strings.ToLower(strings.TrimSpace(status))]
	return ok
}
