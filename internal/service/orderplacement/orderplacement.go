package orderplacement

import (
	"context"
	"fmt"
	"time"

	"kuryecini/internal/entities"
)

// Стартовая комиссия доставки до подтверждения бизнесом,
// финальная ставка задается при подтверждении.
const defaultDeliveryFee = 10.0

type OrderPlacement struct {
	repository   Repository
	businessRepo BusinessRepository
	publisher    Publisher
}

func New(repository Repository, businessRepo BusinessRepository, publisher Publisher) *OrderPlacement {
	return &OrderPlacement{
		repository:   repository,
		businessRepo: businessRepo,
		publisher:    publisher,
	}
}

// Place создает заказ в статусе created с начальной записью в timeline
// и уведомляет бизнес. Начало жизненного цикла заказа.
func (p *OrderPlacement) Place(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error) {
	if !isValidID(draft.BusinessID) || !isValidID(draft.CustomerID) {
		return nil, ErrMissingRequiredFields
	}
	if draft.Subtotal <= 0 {
		return nil, ErrInvalidSubtotal
	}
	if !isValidAddress(draft.Address) {
		return nil, ErrInvalidAddress
	}

	if _, err := p.businessRepo.GetByID(ctx, draft.BusinessID); err != nil {
		return nil, fmt.Errorf("verify business: %w", err)
	}

	order, err := p.repository.Create(ctx, draft, defaultDeliveryFee)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	event := entities.Event{
		Type:       entities.EventOrderCreated,
		OrderID:    order.ID,
		BusinessID: order.BusinessID,
		Timestamp:  time.Now().UTC(),
		Data: map[string]interface{}{
			"status": order.Status.String(),
			"total":  order.Total,
		},
	}
	p.publisher.Publish(entities.TopicBusiness(order.BusinessID), event)
	p.publisher.Publish(entities.TopicOrdersAll, event)

	return order, nil
}
