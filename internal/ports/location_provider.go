package ports

import (
	"context"
	"mappulator-service/internal/domain"
)

// Outcome of a foreground location permission request.
type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Contract for the platform location service.
// Both calls may block until the platform resolves; neither has a timeout
// of its own beyond the context.
type LocationProvider interface {
	// Ask for permission to read the observer's position.
	RequestPermission(ctx context.Context) (Permission, error)
	// Return a one-time fix of the observer's current coordinate.
	CurrentPosition(ctx context.Context) (domain.Coordinate, error)
}
