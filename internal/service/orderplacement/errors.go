package orderplacement

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidSubtotal       = errors.New("subtotal must be positive")
	ErrInvalidAddress        = errors.New("delivery address is incomplete")
	ErrBusinessNotFound      = errors.New("business not found")
)
