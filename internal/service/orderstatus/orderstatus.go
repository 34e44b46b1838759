package orderstatus

import (
	"context"
	"fmt"
	"time"

	"kuryecini/internal/entities"
)

type OrderStatus struct {
	repository Repository
	publisher  Publisher
}

func New(repository Repository, publisher Publisher) *OrderStatus {
	return &OrderStatus{
		repository: repository,
		publisher:  publisher,
	}
}

// Transition применяет переход статуса через условную запись и сразу
// публикует событие. Два конкурентных вызова по одному заказу сериализуются
// только атомарностью записи в БД: проигравший получает ErrStatusConflict
// и должен перечитать заказ, частично переход не применяется никогда.
func (s *OrderStatus) Transition(ctx context.Context, transition entities.StatusTransition) (*entities.Order, error) {
	updated, from, err := s.apply(ctx, transition)
	if err != nil {
		return nil, err
	}

	// событие публикуется строго после подтвержденной записи,
	// сбой доставки не влияет на результат перехода
	s.PublishStatusChanged(updated, from)

	return updated, nil
}

// Apply — тот же переход, но без публикации события. Оркестраторы зовут его
// внутри транзакции и публикуют событие сами после коммита: событие о
// переходе, который может откатиться, наружу уходить не должно.
func (s *OrderStatus) Apply(ctx context.Context, transition entities.StatusTransition) (*entities.Order, error) {
	updated, _, err := s.apply(ctx, transition)
	return updated, err
}

func (s *OrderStatus) apply(ctx context.Context, transition entities.StatusTransition) (*entities.Order, entities.OrderStatusType, error) {
	if !isValidOrderID(transition.OrderID) {
		return nil, "", ErrInvalidOrderID
	}
	if transition.Target == "" || !isValidActorID(transition.Actor.ID) {
		return nil, "", ErrMissingRequiredFields
	}

	order, err := s.repository.GetByID(ctx, transition.OrderID)
	if err != nil {
		return nil, "", fmt.Errorf("get order: %w", err)
	}

	if err := s.authorize(order, transition); err != nil {
		return nil, "", err
	}

	from := order.Status
	if transition.ExpectedFrom != "" {
		if transition.ExpectedFrom != order.Status {
			return nil, "", ErrStatusConflict
		}
		from = transition.ExpectedFrom
	}

	if !isTransitionAllowed(transition.Actor.Role, from, transition.Target) {
		return nil, "", fmt.Errorf("%w: %s -> %s for role %s",
			ErrInvalidTransition, from, transition.Target, transition.Actor.Role)
	}

	transition.ExpectedFrom = from
	entry := entities.TimelineEntry{
		Event: transition.Target.String(),
		At:    time.Now().UTC(),
		By:    transition.Actor.ID,
	}

	updated, err := s.repository.UpdateStatusCAS(ctx, transition, entry)
	if err != nil {
		return nil, "", err
	}

	return updated, from, nil
}

func (s *OrderStatus) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	return s.repository.GetByID(ctx, orderID)
}

func (s *OrderStatus) authorize(order *entities.Order, transition entities.StatusTransition) error {
	actor := transition.Actor

	switch actor.Role {
	case entities.RoleBusiness:
		if order.BusinessID != actor.ID {
			return ErrForbidden
		}
	case entities.RoleCourier:
		if order.CourierID != nil && *order.CourierID == actor.ID {
			return nil
		}
		// еще не назначенный курьер может только забирать заказ себе
		if order.CourierID == nil && transition.Target == entities.OrderCourierAssigned {
			return nil
		}
		return ErrForbidden
	case entities.RoleAdmin, entities.RoleSystem:
	default:
		return ErrForbidden
	}
	return nil
}

// PublishStatusChanged выдает событие уже зафиксированного перехода
// во все заинтересованные топики.
func (s *OrderStatus) PublishStatusChanged(order *entities.Order, from entities.OrderStatusType) {
	event := entities.Event{
		Type:       entities.EventOrderStatusChanged,
		OrderID:    order.ID,
		BusinessID: order.BusinessID,
		Timestamp:  time.Now().UTC(),
		Data: map[string]interface{}{
			"from":    from.String(),
			"to":      order.Status.String(),
			"by":      order.UpdatedBy,
			"by_role": order.UpdatedByRole.String(),
		},
	}

	s.publisher.Publish(entities.TopicOrder(order.ID), event)
	s.publisher.Publish(entities.TopicBusiness(order.BusinessID), event)
	s.publisher.Publish(entities.TopicOrdersAll, event)
}
