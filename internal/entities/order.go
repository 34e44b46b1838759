package entities

import "time"

type Order struct {
	ID            string
	Status        OrderStatusType
	BusinessID    string
	CustomerID    string
	CourierID     *string
	Subtotal      float64
	DeliveryFee   float64
	Total         float64
	Address       DeliveryAddress
	CreatedAt     time.Time
	UpdatedAt     time.Time
	UpdatedBy     string
	UpdatedByRole ActorRole
	Timeline      []TimelineEntry
}

// DeliveryAddress является снимком адреса на момент оформления заказа,
// последующие правки адресной книги клиента на заказ не влияют.
type DeliveryAddress struct {
	Label    string
	Street   string
	City     string
	District string
	Lat      float64
	Lng      float64
}

type TimelineEntry struct {
	Event string    `json:"event"`
	At    time.Time `json:"at"`
	By    string    `json:"by"`
}

type OrderStatusType string

const (
	OrderCreated        OrderStatusType = "created"
	OrderPending        OrderStatusType = "pending"
	OrderPlaced         OrderStatusType = "placed"
	OrderConfirmed      OrderStatusType = "confirmed"
	OrderPreparing      OrderStatusType = "preparing"
	OrderReady          OrderStatusType = "ready"
	OrderReadyForPickup OrderStatusType = "ready_for_pickup"
	OrderCourierPending OrderStatusType = "courier_pending"
	OrderCourierAssigned OrderStatusType = "courier_assigned"
	OrderPickedUp       OrderStatusType = "picked_up"
	OrderDelivering     OrderStatusType = "delivering"
	OrderDelivered      OrderStatusType = "delivered"
	OrderCancelled      OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsTerminal: доставленные и отмененные заказы не меняются, хранятся для истории.
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type OrderDraft struct {
	BusinessID string
	CustomerID string
	Subtotal   float64
	Address    DeliveryAddress
}

type StatusTransition struct {
	OrderID      string
	ExpectedFrom OrderStatusType
	Target       OrderStatusType
	Actor        Actor
}
