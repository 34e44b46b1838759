package couriertask

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"kuryecini/internal/entities"
	"kuryecini/internal/repository"
	"kuryecini/internal/service/couriertask"
)

const taskColumns = `id, order_id, business_id,
		pickup_lat, pickup_lng, dropoff_lat, dropoff_lng,
		unit_delivery_fee, status, courier_id, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, draft entities.TaskDraft) (*entities.CourierTask, error) {
	query := `
		INSERT INTO courier_tasks (
			order_id, business_id,
			pickup_lat, pickup_lng, dropoff_lat, dropoff_lng,
			unit_delivery_fee, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + taskColumns

	taskDB, err := scanTask(r.querier.QueryRow(
		ctx,
		query,
		draft.OrderID,
		draft.BusinessID,
		draft.Pickup.Lat,
		draft.Pickup.Lng,
		draft.Dropoff.Lat,
		draft.Dropoff.Lng,
		draft.UnitDeliveryFee,
		entities.TaskWaiting.String(),
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, couriertask.ErrOrderAlreadyTasked
		}
		return nil, fmt.Errorf("unexpected courier task repository create error: %w", err)
	}

	return ToDomain(taskDB), nil
}

func (r *Repository) GetByID(ctx context.Context, taskID string) (*entities.CourierTask, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM courier_tasks
		WHERE id = $1
	`

	taskDB, err := scanTask(r.querier.QueryRow(ctx, query, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, couriertask.ErrTaskNotFound
		}
		return nil, fmt.Errorf("unexpected courier task repository get error: %w", err)
	}

	return ToDomain(taskDB), nil
}

// AssignCAS закрепляет задание за курьером одной условной записью:
// фильтр courier_id IS NULL пропускает ровно первого принявшего.
func (r *Repository) AssignCAS(ctx context.Context, taskID, courierID string) (*entities.CourierTask, error) {
	query := `
		UPDATE courier_tasks
		SET courier_id = $2,
		    status = $3,
		    updated_at = NOW()
		WHERE id = $1
		  AND courier_id IS NULL
		RETURNING ` + taskColumns

	taskDB, err := scanTask(r.querier.QueryRow(ctx, query, taskID, courierID, entities.TaskAssigned.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.resolveAssignMiss(ctx, taskID)
		}
		return nil, fmt.Errorf("unexpected courier task repository assign error: %w", err)
	}

	return ToDomain(taskDB), nil
}

// resolveAssignMiss различает перехваченное задание и несуществующее.
func (r *Repository) resolveAssignMiss(ctx context.Context, taskID string) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM courier_tasks WHERE id = $1)`, taskID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected courier task repository existence check error: %w", err)
	}
	if !exists {
		return couriertask.ErrTaskNotFound
	}
	return couriertask.ErrTaskAlreadyTaken
}

func (r *Repository) ListWaiting(ctx context.Context) ([]entities.CourierTask, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM courier_tasks
		WHERE status = $1
		ORDER BY created_at ASC
	`

	return r.listTasks(ctx, query, entities.TaskWaiting.String())
}

func (r *Repository) ListWaitingOlderThan(ctx context.Context, age time.Duration) ([]entities.CourierTask, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM courier_tasks
		WHERE status = $1
		  AND created_at <= NOW() - $2::interval
		ORDER BY created_at ASC
	`

	return r.listTasks(ctx, query, entities.TaskWaiting.String(), age.String())
}

func (r *Repository) listTasks(ctx context.Context, query string, args ...interface{}) ([]entities.CourierTask, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier task repository list error: %w", err)
	}
	defer rows.Close()

	var tasks []entities.CourierTask
	for rows.Next() {
		taskDB, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier task repository scan error: %w", err)
		}
		tasks = append(tasks, *ToDomain(taskDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier task repository rows error: %w", err)
	}

	return tasks, nil
}

func scanTask(row pgx.Row) (*CourierTaskDB, error) {
	var taskDB CourierTaskDB
	err := row.Scan(
		&taskDB.ID,
		&taskDB.OrderID,
		&taskDB.BusinessID,
		&taskDB.PickupLat,
		&taskDB.PickupLng,
		&taskDB.DropoffLat,
		&taskDB.DropoffLng,
		&taskDB.UnitDeliveryFee,
		&taskDB.Status,
		&taskDB.CourierID,
		&taskDB.CreatedAt,
		&taskDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &taskDB, nil
}
