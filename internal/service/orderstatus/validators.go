package orderstatus

import "strings"

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidActorID(actorID string) bool {
	return strings.TrimSpace(actorID) != ""
}
