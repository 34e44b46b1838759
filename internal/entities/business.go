package entities

import "time"

type Business struct {
	ID        string
	Name      string
	Location  GeoPoint
	CreatedAt time.Time
	UpdatedAt time.Time
}
