package couriertask

import "time"

type CourierTaskDB struct {
	ID              string
	OrderID         string
	BusinessID      string
	PickupLat       float64
	PickupLng       float64
	DropoffLat      float64
	DropoffLng      float64
	UnitDeliveryFee float64
	Status          string
	CourierID       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
