package orderstatus

import "kuryecini/internal/entities"

// Таблица переходов (роль, текущий статус) -> допустимые целевые статусы.
// Единственное место, где зашита машина состояний заказа;
// полнота проверяется тестом в transitions_test.go.
var transitions = map[entities.ActorRole]map[entities.OrderStatusType][]entities.OrderStatusType{
	entities.RoleBusiness: {
		entities.OrderCreated:        {entities.OrderConfirmed, entities.OrderCancelled},
		entities.OrderPending:        {entities.OrderConfirmed, entities.OrderCancelled},
		entities.OrderPlaced:         {entities.OrderConfirmed, entities.OrderCancelled},
		entities.OrderConfirmed:      {entities.OrderPreparing},
		entities.OrderPreparing:      {entities.OrderReady, entities.OrderReadyForPickup},
		entities.OrderReady:          {entities.OrderCourierPending},
		entities.OrderReadyForPickup: {entities.OrderCourierPending},
	},
	entities.RoleCourier: {
		entities.OrderCourierPending:  {entities.OrderCourierAssigned},
		entities.OrderCourierAssigned: {entities.OrderPickedUp},
		entities.OrderPickedUp:        {entities.OrderDelivering},
		entities.OrderDelivering:      {entities.OrderDelivered},
	},
	entities.RoleAdmin: {
		entities.OrderCreated:         {entities.OrderConfirmed, entities.OrderCancelled},
		entities.OrderPending:         {entities.OrderConfirmed, entities.OrderCancelled},
		entities.OrderPlaced:          {entities.OrderConfirmed, entities.OrderCancelled},
		entities.OrderConfirmed:       {entities.OrderPreparing, entities.OrderCancelled},
		entities.OrderPreparing:       {entities.OrderReady, entities.OrderReadyForPickup, entities.OrderCancelled},
		entities.OrderReady:           {entities.OrderCourierPending, entities.OrderCancelled},
		entities.OrderReadyForPickup:  {entities.OrderCourierPending, entities.OrderCancelled},
		entities.OrderCourierPending:  {entities.OrderCourierAssigned, entities.OrderCancelled},
		entities.OrderCourierAssigned: {entities.OrderPickedUp, entities.OrderCancelled},
		entities.OrderPickedUp:        {entities.OrderDelivering, entities.OrderCancelled},
		entities.OrderDelivering:      {entities.OrderDelivered, entities.OrderCancelled},
	},
}

func init() {
	// system-воркер применяет внешние события с теми же правами, что и админ
	transitions[entities.RoleSystem] = transitions[entities.RoleAdmin]
}

func allowedTargets(role entities.ActorRole, current entities.OrderStatusType) []entities.OrderStatusType {
	chain, ok := transitions[role]
	if !ok {
		return nil
	}
	return chain[current]
}

func isTransitionAllowed(role entities.ActorRole, current, target entities.OrderStatusType) bool {
	for _, allowed := range allowedTargets(role, current) {
		if allowed == target {
			return true
		}
	}
	return false
}
