package confirmation

import (
	"context"
	"fmt"
	"time"

	"kuryecini/internal/entities"
	"kuryecini/internal/service/orderstatus"
)

type ConfirmRequest struct {
	OrderID         string
	Actor           entities.Actor
	UnitDeliveryFee float64
}

type ConfirmResult struct {
	OrderID string
	TaskID  string
	Status  entities.OrderStatusType
}

// Confirmation оркестрирует подтверждение заказа бизнесом:
// переход статуса через CAS, создание ровно одного курьерского задания
// и best-effort публикацию уведомлений.
type Confirmation struct {
	orderService   OrderService
	taskRepository TaskRepository
	businessRepo   BusinessRepository
	publisher      Publisher
	txManager      TxManager
}

func New(
	orderService OrderService,
	taskRepository TaskRepository,
	businessRepo BusinessRepository,
	publisher Publisher,
	txManager TxManager,
) *Confirmation {
	return &Confirmation{
		orderService:   orderService,
		taskRepository: taskRepository,
		businessRepo:   businessRepo,
		publisher:      publisher,
		txManager:      txManager,
	}
}

func (c *Confirmation) Confirm(ctx context.Context, req ConfirmRequest) (*ConfirmResult, error) {
	if req.UnitDeliveryFee <= 0 {
		return nil, ErrInvalidDeliveryFee
	}

	order, err := c.orderService.GetOrder(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if order.BusinessID != req.Actor.ID {
		return nil, orderstatus.ErrForbidden
	}

	business, err := c.businessRepo.GetByID(ctx, order.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}

	var (
		task      *entities.CourierTask
		confirmed *entities.Order
	)
	err = c.txManager.Do(ctx, func(ctx context.Context) error {
		// сам переход проверит, что заказ еще в пред-подтвержденном статусе;
		// проигранный CAS откатывает и создание задания. Событие перехода
		// уходит только после коммита транзакции.
		confirmed, err = c.orderService.Apply(ctx, entities.StatusTransition{
			OrderID:      req.OrderID,
			ExpectedFrom: order.Status,
			Target:       entities.OrderConfirmed,
			Actor:        req.Actor,
		})
		if err != nil {
			return fmt.Errorf("confirm transition: %w", err)
		}

		taskDraft := entities.TaskDraft{
			OrderID:         order.ID,
			BusinessID:      order.BusinessID,
			Pickup:          business.Location,
			Dropoff:         entities.GeoPoint{Lat: order.Address.Lat, Lng: order.Address.Lng},
			UnitDeliveryFee: req.UnitDeliveryFee,
		}

		task, err = c.taskRepository.Create(ctx, taskDraft)
		if err != nil {
			return fmt.Errorf("create courier task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.orderService.PublishStatusChanged(confirmed, order.Status)
	c.publishConfirmed(order, task)

	return &ConfirmResult{
		OrderID: order.ID,
		TaskID:  task.ID,
		Status:  entities.OrderConfirmed,
	}, nil
}

// publishConfirmed — шаг с best-effort семантикой: заказ уже подтвержден
// и задание создано, даже если ни один курьер сейчас не слушает.
// Курьеры в любом случае находят ожидающие задания через поллинг списка.
func (c *Confirmation) publishConfirmed(order *entities.Order, task *entities.CourierTask) {
	now := time.Now().UTC()

	c.publisher.Publish(entities.TopicCourierGlobal, entities.Event{
		Type:       entities.EventTaskCreated,
		OrderID:    order.ID,
		BusinessID: order.BusinessID,
		TaskID:     task.ID,
		Timestamp:  now,
		Data: map[string]interface{}{
			"pickup_lat":        task.Pickup.Lat,
			"pickup_lng":        task.Pickup.Lng,
			"dropoff_lat":       task.Dropoff.Lat,
			"dropoff_lng":       task.Dropoff.Lng,
			"unit_delivery_fee": task.UnitDeliveryFee,
		},
	})

	confirmedEvent := entities.Event{
		Type:       entities.EventOrderConfirmed,
		OrderID:    order.ID,
		BusinessID: order.BusinessID,
		TaskID:     task.ID,
		Timestamp:  now,
		Data: map[string]interface{}{
			"status": entities.OrderConfirmed.String(),
		},
	}
	c.publisher.Publish(entities.TopicBusiness(order.BusinessID), confirmedEvent)
	c.publisher.Publish(entities.TopicOrder(order.ID), confirmedEvent)
}
