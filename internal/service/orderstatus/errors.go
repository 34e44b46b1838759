package orderstatus

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")

	ErrOrderNotFound     = errors.New("order not found")
	ErrForbidden         = errors.New("actor is not allowed to modify this order")
	ErrInvalidTransition = errors.New("status transition is not allowed")
	ErrStatusConflict    = errors.New("order status changed concurrently")
)
