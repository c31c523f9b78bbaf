package services

import (
	"context"
	"errors"
	"fmt"
	"mappulator-service/internal/domain"
	"mappulator-service/internal/ports"
	"sync/atomic"
)

var ErrIdentityChanged = errors.New("replacement list does not match the loaded dataset")

// LocationStore holds the ordered point-of-interest sequence loaded once at
// startup and the list currently on display.
//
// The displayed list is never mutated in place. A refresh builds a new slice
// and Replace swaps it in atomically, so readers always observe either the
// old list or the new one.
type LocationStore struct {
	dataset []domain.PointOfInterest
	current atomic.Pointer[snapshot]
}

// snapshot pairs the displayed list with the fix its distances were measured from.
type snapshot struct {
	pois     []domain.PointOfInterest
	observer *domain.Coordinate
}

// NewLocationStore captures dataset (copied, distances cleared) and displays it.
func NewLocationStore(dataset []domain.PointOfInterest) *LocationStore {
	s := &LocationStore{dataset: make([]domain.PointOfInterest, len(dataset))}
	for i, p := range dataset {
		p.Distance = nil
		s.dataset[i] = p
	}

	s.current.Store(&snapshot{pois: s.Load()})
	return s
}

// LoadLocationStore reads the dataset from src and builds a store from it.
func LoadLocationStore(ctx context.Context, src ports.POISource) (*LocationStore, error) {
	pois, err := src.LoadPOIs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load location store: %w", err)
	}
	return NewLocationStore(pois), nil
}

// Load returns the bundled dataset unmodified, with distances unset.
func (s *LocationStore) Load() []domain.PointOfInterest {
	out := make([]domain.PointOfInterest, len(s.dataset))
	copy(out, s.dataset)
	return out
}

// RefreshDistances is the method form of the package-level RefreshDistances.
func (s *LocationStore) RefreshDistances(current []domain.PointOfInterest, observer domain.Coordinate) []domain.PointOfInterest {
	return RefreshDistances(current, observer)
}

// Current returns a copy of the list on display.
func (s *LocationStore) Current() []domain.PointOfInterest {
	cur := s.current.Load().pois
	out := make([]domain.PointOfInterest, len(cur))
	copy(out, cur)
	return out
}

func (s *LocationStore) Len() int {
	return len(s.dataset)
}

// Observer returns the fix behind the displayed distances, if any.
func (s *LocationStore) Observer() (domain.Coordinate, bool) {
	o := s.current.Load().observer
	if o == nil {
		return domain.Coordinate{}, false
	}
	return *o, true
}

// Replace swaps the displayed list for next, keeping the recorded observer.
// next must have the dataset's length and identity fields; only distances may differ.
func (s *LocationStore) Replace(next []domain.PointOfInterest) error {
	return s.swap(next, s.current.Load().observer)
}

// ReplaceFor swaps in next together with the observer it was refreshed for.
func (s *LocationStore) ReplaceFor(observer domain.Coordinate, next []domain.PointOfInterest) error {
	return s.swap(next, &observer)
}

func (s *LocationStore) swap(next []domain.PointOfInterest, observer *domain.Coordinate) error {
	if len(next) != len(s.dataset) {
		return fmt.Errorf("replace: got %d records, want %d: %w", len(next), len(s.dataset), ErrIdentityChanged)
	}
	for i, p := range next {
		orig := s.dataset[i]
		if p.Name != orig.Name || p.Type != orig.Type || p.Coordinates != orig.Coordinates {
			return fmt.Errorf("replace: record %d (%q): %w", i, p.Name, ErrIdentityChanged)
		}
	}

	list := make([]domain.PointOfInterest, len(next))
	copy(list, next)
	s.current.Store(&snapshot{pois: list, observer: observer})
	return nil
}

// RefreshDistances returns a new sequence in which every record's distance is
// the haversine distance from observer. All other fields pass through
// unchanged and current is left untouched.
func RefreshDistances(current []domain.PointOfInterest, observer domain.Coordinate) []domain.PointOfInterest {
	out := make([]domain.PointOfInterest, 0, len(current))
	for _, p := range current {
		out = append(out, p.WithDistance(domain.Distance(observer, p.Coordinates)))
	}
	return out
}
