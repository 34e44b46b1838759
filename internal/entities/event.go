package entities

import "time"

// Event живет только на время вызова publish: не персистится,
// доставка best-effort без повторов и очередей.
type Event struct {
	Type       EventType
	OrderID    string
	BusinessID string
	TaskID     string
	Timestamp  time.Time
	Data       map[string]interface{}
}

type EventType string

const (
	EventOrderCreated       EventType = "order.created"
	EventOrderConfirmed     EventType = "order.confirmed"
	EventOrderStatusChanged EventType = "order.status_changed"
	EventTaskCreated        EventType = "task.created"
	EventTaskAssigned       EventType = "task.assigned"
)

func (t EventType) String() string {
	return string(t)
}

// Топики канала уведомлений. Ключи подписки и ключи реестра соединений совпадают.
const (
	TopicOrdersAll     = "orders:all"
	TopicCourierGlobal = "courier:global"
)

func TopicBusiness(businessID string) string {
	return "business:" + businessID
}

func TopicOrder(orderID string) string {
	return "order:" + orderID
}

func TopicCourier(courierID string) string {
	return "courier:" + courierID
}
