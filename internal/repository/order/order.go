package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"kuryecini/internal/entities"
	"kuryecini/internal/service/orderstatus"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, status, business_id, customer_id, courier_id,
		subtotal, delivery_fee, total,
		address_label, address_street, address_city, address_district, address_lat, address_lng,
		timeline, created_at, updated_at, updated_by, updated_by_role`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, draft entities.OrderDraft, deliveryFee float64) (*entities.Order, error) {
	now := time.Now().UTC()
	timeline, err := json.Marshal([]TimelineEntryDB{{
		Event: entities.OrderCreated.String(),
		At:    now,
		By:    draft.CustomerID,
	}})
	if err != nil {
		return nil, fmt.Errorf("marshal timeline: %w", err)
	}

	query := `
		INSERT INTO orders (
			status, business_id, customer_id,
			subtotal, delivery_fee, total,
			address_label, address_street, address_city, address_district, address_lat, address_lng,
			timeline, updated_by, updated_by_role
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		entities.OrderCreated.String(),
		draft.BusinessID,
		draft.CustomerID,
		draft.Subtotal,
		deliveryFee,
		draft.Subtotal+deliveryFee,
		draft.Address.Label,
		draft.Address.Street,
		draft.Address.City,
		draft.Address.District,
		draft.Address.Lat,
		draft.Address.Lng,
		timeline,
		draft.CustomerID,
		string(entities.RoleCustomer),
	)

	orderDB, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderstatus.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(orderDB), nil
}

// UpdateStatusCAS меняет статус одной условной записью: фильтр по id и
// ожидаемому статусу гарантирует, что из двух конкурирующих обновлений
// пройдет ровно одно. При назначении курьера дополнительно требуем
// courier_id IS NULL, чтобы заказ нельзя было перехватить.
func (r *Repository) UpdateStatusCAS(ctx context.Context, transition entities.StatusTransition, entry entities.TimelineEntry) (*entities.Order, error) {
	entryJSON, err := json.Marshal(FromTimelineEntryDomain(entry))
	if err != nil {
		return nil, fmt.Errorf("marshal timeline entry: %w", err)
	}

	builder := qb.
		Update("orders").
		Set("status", transition.Target.String()).
		Set("timeline", sq.Expr("timeline || ?::jsonb", entryJSON)).
		Set("updated_at", sq.Expr("NOW()")).
		Set("updated_by", transition.Actor.ID).
		Set("updated_by_role", string(transition.Actor.Role)).
		Where(sq.Eq{
			"id":     transition.OrderID,
			"status": transition.ExpectedFrom.String(),
		})

	if transition.Target == entities.OrderCourierAssigned && transition.Actor.Role == entities.RoleCourier {
		builder = builder.
			Set("courier_id", transition.Actor.ID).
			Where("courier_id IS NULL")
	}

	builder = builder.Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.resolveCASMiss(ctx, transition.OrderID)
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderDB), nil
}

// resolveCASMiss различает проигранную гонку и отсутствующий заказ.
func (r *Repository) resolveCASMiss(ctx context.Context, orderID string) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, orderID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected order repository existence check error: %w", err)
	}
	if !exists {
		return orderstatus.ErrOrderNotFound
	}
	return orderstatus.ErrStatusConflict
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderDB OrderDB
	err := row.Scan(
		&orderDB.ID,
		&orderDB.Status,
		&orderDB.BusinessID,
		&orderDB.CustomerID,
		&orderDB.CourierID,
		&orderDB.Subtotal,
		&orderDB.DeliveryFee,
		&orderDB.Total,
		&orderDB.AddressLabel,
		&orderDB.AddressStreet,
		&orderDB.AddressCity,
		&orderDB.AddressDistrict,
		&orderDB.AddressLat,
		&orderDB.AddressLng,
		&orderDB.Timeline,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
		&orderDB.UpdatedBy,
		&orderDB.UpdatedByRole,
	)
	if err != nil {
		return nil, err
	}
	return &orderDB, nil
}
