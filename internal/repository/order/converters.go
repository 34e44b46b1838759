package order

import "kuryecini/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:          o.ID,
		Status:      entities.OrderStatusType(o.Status),
		BusinessID:  o.BusinessID,
		CustomerID:  o.CustomerID,
		CourierID:   o.CourierID,
		Subtotal:    o.Subtotal,
		DeliveryFee: o.DeliveryFee,
		Total:       o.Total,
		Address: entities.DeliveryAddress{
			Label:    o.AddressLabel,
			Street:   o.AddressStreet,
			City:     o.AddressCity,
			District: o.AddressDistrict,
			Lat:      o.AddressLat,
			Lng:      o.AddressLng,
		},
		Timeline:      ToTimelineDomain(o.Timeline),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		UpdatedBy:     o.UpdatedBy,
		UpdatedByRole: entities.ActorRole(o.UpdatedByRole),
	}
}

func ToTimelineDomain(timeline []TimelineEntryDB) []entities.TimelineEntry {
	if timeline == nil {
		return nil
	}
	entries := make([]entities.TimelineEntry, 0, len(timeline))
	for _, e := range timeline {
		entries = append(entries, entities.TimelineEntry{
			Event: e.Event,
			At:    e.At,
			By:    e.By,
		})
	}
	return entries
}

func FromTimelineEntryDomain(entry entities.TimelineEntry) TimelineEntryDB {
	return TimelineEntryDB{
		Event: entry.Event,
		At:    entry.At,
		By:    entry.By,
	}
}
