package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mappulator-service/internal/domain"
	"mappulator-service/internal/platform/obs"
)

// SQL-backed implementation of the POISource port.
type SQLPOIRepository struct{ DB *sql.DB }

func NewSQLPOIRepository(db *sql.DB) *SQLPOIRepository {
	return &SQLPOIRepository{DB: db}
}

// Return all points of interest in position order.
func (s *SQLPOIRepository) LoadPOIs(ctx context.Context) (_ []domain.PointOfInterest, err error) {
	defer obs.Time(ctx, "poi.repository.LoadPOIs")(&err)

	if s.DB == nil {
		return nil, errors.New("sql poi repository: DB is nil")
	}

	query := `
	SELECT
		name,
		type,
		latitude,
		longitude
	FROM points_of_interest
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load pois: query points_of_interest table: %w", err)
	}
	defer rows.Close()

	pois := make([]domain.PointOfInterest, 0, 64)
	for rows.Next() {
		var name, tag string
		var lat, lon float64
		if err := rows.Scan(&name, &tag, &lat, &lon); err != nil {
			return nil, fmt.Errorf("load pois: scan row: %w", err)
		}

		typ, err := domain.ParseType(tag)
		if err != nil {
			return nil, fmt.Errorf("load pois: row %q: %w", name, err)
		}

		pois = append(pois, domain.PointOfInterest{
			Name:        name,
			Type:        typ,
			Coordinates: domain.Coordinate{Latitude: lat, Longitude: lon},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load pois: row iteration: %w", err)
	}

	return pois, nil
}
