package entities

import "time"

type CourierTask struct {
	ID              string
	OrderID         string
	BusinessID      string
	Pickup          GeoPoint
	Dropoff         GeoPoint
	UnitDeliveryFee float64
	Status          TaskStatusType
	CourierID       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type GeoPoint struct {
	Lat float64
	Lng float64
}

type TaskStatusType string

const (
	TaskWaiting   TaskStatusType = "waiting"
	TaskAssigned  TaskStatusType = "assigned"
	TaskPickedUp  TaskStatusType = "picked_up"
	TaskDelivered TaskStatusType = "delivered"
)

func (s TaskStatusType) String() string {
	return string(s)
}

type TaskDraft struct {
	OrderID         string
	BusinessID      string
	Pickup          GeoPoint
	Dropoff         GeoPoint
	UnitDeliveryFee float64
}

type TaskAssignment struct {
	TaskID     string
	OrderID    string
	CourierID  string
	AssignedAt time.Time
}
