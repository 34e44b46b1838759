package orderplacement

import (
	"strings"

	"kuryecini/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidAddress(address entities.DeliveryAddress) bool {
	if strings.TrimSpace(address.Street) == "" || strings.TrimSpace(address.City) == "" {
		return false
	}
	return address.Lat != 0 || address.Lng != 0
}
