// Package dto содержит транспортные структуры REST API.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type AddressDTO struct {
	Label    string  `json:"label,omitempty"`
	Street   string  `json:"street"`
	City     string  `json:"city"`
	District string  `json:"district,omitempty"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

type GeoPointDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type TimelineEntryDTO struct {
	Event string    `json:"event"`
	At    time.Time `json:"at"`
	By    string    `json:"by"`
}

type OrderCreateRequest struct {
	BusinessID string     `json:"business_id"`
	Subtotal   float64    `json:"subtotal"`
	Address    AddressDTO `json:"address"`
}

type OrderResponse struct {
	ID          string             `json:"id"`
	Status      string             `json:"status"`
	BusinessID  string             `json:"business_id"`
	CustomerID  string             `json:"customer_id"`
	CourierID   *string            `json:"courier_id,omitempty"`
	Subtotal    float64            `json:"subtotal"`
	DeliveryFee float64            `json:"delivery_fee"`
	Total       float64            `json:"total"`
	Address     AddressDTO         `json:"address"`
	Timeline    []TimelineEntryDTO `json:"timeline,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`

	UpdatedBy     string `json:"updated_by,omitempty"`
	UpdatedByRole string `json:"updated_by_role,omitempty"`
}

type OrderConfirmRequest struct {
	UnitDeliveryFee float64 `json:"unit_delivery_fee"`
}

type OrderConfirmResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"order_id"`
	TaskID  string `json:"task_id"`
	Status  string `json:"status"`
}

type OrderStatusPatchRequest struct {
	To string `json:"to"`
	// From — статус, который клиент видел перед запросом.
	// Несовпадение с текущим дает 409 вместо слепой перезаписи.
	From string `json:"from,omitempty"`
}

type CourierTaskResponse struct {
	ID              string      `json:"id"`
	OrderID         string      `json:"order_id"`
	BusinessID      string      `json:"business_id"`
	Pickup          GeoPointDTO `json:"pickup"`
	Dropoff         GeoPointDTO `json:"dropoff"`
	UnitDeliveryFee float64     `json:"unit_delivery_fee"`
	Status          string      `json:"status"`
	CourierID       *string     `json:"courier_id,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

type CourierTasksResponse struct {
	Tasks []CourierTaskResponse `json:"tasks"`
}

type TaskAcceptResponse struct {
	TaskID    string `json:"task_id"`
	OrderID   string `json:"order_id"`
	CourierID string `json:"courier_id"`
	Status    string `json:"status"`
}
