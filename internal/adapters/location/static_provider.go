package location

import (
	"context"
	"errors"
	"fmt"
	"mappulator-service/internal/domain"
	"mappulator-service/internal/ports"
	"strconv"
	"strings"
)

var ErrNoFix = errors.New("no position configured")

// StaticLocationProvider answers from configuration: a permission status and
// an optional fixed observer coordinate.
type StaticLocationProvider struct {
	permission ports.Permission
	fix        *domain.Coordinate
	fixErr     error
}

func NewStaticLocationProvider(permission ports.Permission, fix *domain.Coordinate) *StaticLocationProvider {
	return &StaticLocationProvider{permission: permission, fix: fix}
}

// NewStaticLocationProviderFromConfig parses the configured observer. A bad or
// half-set coordinate does not fail construction; it is reported by
// CurrentPosition so activation keeps the distance-less list.
func NewStaticLocationProviderFromConfig(permission ports.Permission, lat, lon string) *StaticLocationProvider {
	fix, err := ParseFix(lat, lon)
	return &StaticLocationProvider{permission: permission, fix: fix, fixErr: err}
}

// ParsePermission maps a config value to a Permission. Empty means granted.
func ParsePermission(v string) (ports.Permission, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", string(ports.PermissionGranted):
		return ports.PermissionGranted, nil
	case string(ports.PermissionDenied):
		return ports.PermissionDenied, nil
	default:
		return "", fmt.Errorf("parse permission: unknown value %q", v)
	}
}

// ParseFix parses an observer coordinate from latitude and longitude strings.
// Both empty yields a nil fix.
func ParseFix(lat, lon string) (*domain.Coordinate, error) {
	lat = strings.TrimSpace(lat)
	lon = strings.TrimSpace(lon)
	if lat == "" && lon == "" {
		return nil, nil
	}

	la, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse fix: latitude %q: %w", lat, err)
	}
	lo, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse fix: longitude %q: %w", lon, err)
	}

	fix := domain.Coordinate{Latitude: la, Longitude: lo}
	if !fix.Finite() {
		return nil, fmt.Errorf("parse fix: %q, %q is not a finite coordinate", lat, lon)
	}
	return &fix, nil
}

func (s *StaticLocationProvider) RequestPermission(ctx context.Context) (ports.Permission, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.permission, nil
}

func (s *StaticLocationProvider) CurrentPosition(ctx context.Context) (domain.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return domain.Coordinate{}, err
	}
	if s.fixErr != nil {
		return domain.Coordinate{}, fmt.Errorf("%w: %w", ErrNoFix, s.fixErr)
	}
	if s.fix == nil {
		return domain.Coordinate{}, ErrNoFix
	}
	return *s.fix, nil
}
