package dto

import "kuryecini/internal/entities"

func FromOrder(order *entities.Order) OrderResponse {
	timeline := make([]TimelineEntryDTO, 0, len(order.Timeline))
	for _, entry := range order.Timeline {
		timeline = append(timeline, TimelineEntryDTO{
			Event: entry.Event,
			At:    entry.At,
			By:    entry.By,
		})
	}

	return OrderResponse{
		ID:          order.ID,
		Status:      order.Status.String(),
		BusinessID:  order.BusinessID,
		CustomerID:  order.CustomerID,
		CourierID:   order.CourierID,
		Subtotal:    order.Subtotal,
		DeliveryFee: order.DeliveryFee,
		Total:       order.Total,
		Address: AddressDTO{
			Label:    order.Address.Label,
			Street:   order.Address.Street,
			City:     order.Address.City,
			District: order.Address.District,
			Lat:      order.Address.Lat,
			Lng:      order.Address.Lng,
		},
		Timeline:      timeline,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
		UpdatedBy:     order.UpdatedBy,
		UpdatedByRole: order.UpdatedByRole.String(),
	}
}

func FromTask(task *entities.CourierTask) CourierTaskResponse {
	return CourierTaskResponse{
		ID:              task.ID,
		OrderID:         task.OrderID,
		BusinessID:      task.BusinessID,
		Pickup:          GeoPointDTO{Lat: task.Pickup.Lat, Lng: task.Pickup.Lng},
		Dropoff:         GeoPointDTO{Lat: task.Dropoff.Lat, Lng: task.Dropoff.Lng},
		UnitDeliveryFee: task.UnitDeliveryFee,
		Status:          task.Status.String(),
		CourierID:       task.CourierID,
		CreatedAt:       task.CreatedAt,
	}
}
