package ports

import (
	"context"
	"mappulator-service/internal/domain"
)

// Port: a read-only source of the point-of-interest dataset.
type POISource interface {
	// Return every point of interest in display order, distances unset.
	LoadPOIs(ctx context.Context) ([]domain.PointOfInterest, error)
}
