package confirmation

import "errors"

var ErrInvalidDeliveryFee = errors.New("unit delivery fee must be positive")
