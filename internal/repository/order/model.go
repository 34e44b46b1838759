package order

import "time"

type OrderDB struct {
	ID              string
	Status          string
	BusinessID      string
	CustomerID      string
	CourierID       *string
	Subtotal        float64
	DeliveryFee     float64
	Total           float64
	AddressLabel    string
	AddressStreet   string
	AddressCity     string
	AddressDistrict string
	AddressLat      float64
	AddressLng      float64
	Timeline        []TimelineEntryDB
	CreatedAt       time.Time
	UpdatedAt       time.Time
	UpdatedBy       string
	UpdatedByRole   string
}

type TimelineEntryDB struct {
	Event string    `json:"event"`
	At    time.Time `json:"at"`
	By    string    `json:"by"`
}
