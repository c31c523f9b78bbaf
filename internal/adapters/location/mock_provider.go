package location

import (
	"context"
	"mappulator-service/internal/domain"
	"mappulator-service/internal/ports"
	"sync/atomic"
)

// MockLocationProvider returns canned answers and counts calls.
type MockLocationProvider struct {
	Permission    ports.Permission
	PermissionErr error
	Fix           domain.Coordinate
	FixErr        error

	PermissionCalls atomic.Int32
	PositionCalls   atomic.Int32
}

func NewMockLocationProvider(perm ports.Permission, fix domain.Coordinate) *MockLocationProvider {
	return &MockLocationProvider{Permission: perm, Fix: fix}
}

func (m *MockLocationProvider) RequestPermission(ctx context.Context) (ports.Permission, error) {
	m.PermissionCalls.Add(1)
	if m.PermissionErr != nil {
		return "", m.PermissionErr
	}
	return m.Permission, nil
}

func (m *MockLocationProvider) CurrentPosition(ctx context.Context) (domain.Coordinate, error) {
	m.PositionCalls.Add(1)
	if m.FixErr != nil {
		return domain.Coordinate{}, m.FixErr
	}
	return m.Fix, nil
}
