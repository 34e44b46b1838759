package business

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"kuryecini/internal/entities"
	"kuryecini/internal/service/orderplacement"
)

type BusinessDB struct {
	ID          string
	Name        string
	LocationLat float64
	LocationLng float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, businessID string) (*entities.Business, error) {
	query := `
		SELECT id, name, location_lat, location_lng, created_at, updated_at
		FROM businesses
		WHERE id = $1
	`

	var businessDB BusinessDB
	err := r.querier.QueryRow(ctx, query, businessID).Scan(
		&businessDB.ID,
		&businessDB.Name,
		&businessDB.LocationLat,
		&businessDB.LocationLng,
		&businessDB.CreatedAt,
		&businessDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderplacement.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("unexpected business repository get error: %w", err)
	}

	return ToDomain(&businessDB), nil
}

func ToDomain(b *BusinessDB) *entities.Business {
	if b == nil {
		return nil
	}
	return &entities.Business{
		ID:        b.ID,
		Name:      b.Name,
		Location:  entities.GeoPoint{Lat: b.LocationLat, Lng: b.LocationLng},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
