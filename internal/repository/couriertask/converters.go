package couriertask

import "kuryecini/internal/entities"

func ToDomain(t *CourierTaskDB) *entities.CourierTask {
	if t == nil {
		return nil
	}
	return &entities.CourierTask{
		ID:              t.ID,
		OrderID:         t.OrderID,
		BusinessID:      t.BusinessID,
		Pickup:          entities.GeoPoint{Lat: t.PickupLat, Lng: t.PickupLng},
		Dropoff:         entities.GeoPoint{Lat: t.DropoffLat, Lng: t.DropoffLng},
		UnitDeliveryFee: t.UnitDeliveryFee,
		Status:          entities.TaskStatusType(t.Status),
		CourierID:       t.CourierID,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
