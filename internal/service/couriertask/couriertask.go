package couriertask

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kuryecini/internal/entities"
)

type CourierTask struct {
	repository   Repository
	orderService OrderService
	publisher    Publisher
	txManager    TxManager
}

func New(
	repository Repository,
	orderService OrderService,
	publisher Publisher,
	txManager TxManager,
) *CourierTask {
	return &CourierTask{
		repository:   repository,
		orderService: orderService,
		publisher:    publisher,
		txManager:    txManager,
	}
}

// Accept отдает задание первому принявшему курьеру: courier_id проставляется
// из null ровно один раз, заказ в той же транзакции переходит в courier_assigned.
func (c *CourierTask) Accept(ctx context.Context, taskID string, actor entities.Actor) (*entities.TaskAssignment, error) {
	if strings.TrimSpace(taskID) == "" {
		return nil, ErrInvalidTaskID
	}
	if strings.TrimSpace(actor.ID) == "" {
		return nil, ErrInvalidCourierID
	}

	assignment := entities.TaskAssignment{}
	var assigned *entities.Order
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		task, err := c.repository.AssignCAS(ctx, taskID, actor.ID)
		if err != nil {
			return fmt.Errorf("assign task: %w", err)
		}

		// событие перехода уходит только после коммита транзакции
		assigned, err = c.orderService.Apply(ctx, entities.StatusTransition{
			OrderID:      task.OrderID,
			ExpectedFrom: entities.OrderCourierPending,
			Target:       entities.OrderCourierAssigned,
			Actor:        actor,
		})
		if err != nil {
			return fmt.Errorf("assign order to courier: %w", err)
		}

		assignment = entities.TaskAssignment{
			TaskID:     task.ID,
			OrderID:    task.OrderID,
			CourierID:  actor.ID,
			AssignedAt: task.UpdatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.orderService.PublishStatusChanged(assigned, entities.OrderCourierPending)

	c.publisher.Publish(entities.TopicCourier(actor.ID), entities.Event{
		Type:      entities.EventTaskAssigned,
		OrderID:   assignment.OrderID,
		TaskID:    assignment.TaskID,
		Timestamp: time.Now().UTC(),
		Data: map[string]interface{}{
			"courier_id": assignment.CourierID,
		},
	})

	return &assignment, nil
}

// ListWaiting — поллинг-запасной канал для курьеров, чей сокет отвалился.
func (c *CourierTask) ListWaiting(ctx context.Context) ([]entities.CourierTask, error) {
	tasks, err := c.repository.ListWaiting(ctx)
	if err != nil {
		return nil, fmt.Errorf("list waiting tasks: %w", err)
	}
	return tasks, nil
}

// NudgeStaleWaiting переобъявляет задания, ожидающие дольше threshold:
// шина не хранит события, переподключившиеся курьеры исходный пуш не видели.
func (c *CourierTask) NudgeStaleWaiting(ctx context.Context, threshold time.Duration) (int64, error) {
	tasks, err := c.repository.ListWaitingOlderThan(ctx, threshold)
	if err != nil {
		return 0, fmt.Errorf("list stale waiting tasks: %w", err)
	}

	for _, task := range tasks {
		c.publisher.Publish(entities.TopicCourierGlobal, entities.Event{
			Type:       entities.EventTaskCreated,
			OrderID:    task.OrderID,
			BusinessID: task.BusinessID,
			TaskID:     task.ID,
			Timestamp:  time.Now().UTC(),
			Data: map[string]interface{}{
				"pickup_lat":        task.Pickup.Lat,
				"pickup_lng":        task.Pickup.Lng,
				"dropoff_lat":       task.Dropoff.Lat,
				"dropoff_lng":       task.Dropoff.Lng,
				"unit_delivery_fee": task.UnitDeliveryFee,
				"renotified":        true,
			},
		})
	}

	return int64(len(tasks)), nil
}
