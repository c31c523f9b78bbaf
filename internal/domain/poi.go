package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Closed set of point-of-interest categories. The tag selects the marker icon.
type POIType string

const (
	TypeChurch     POIType = "church"
	TypeMountain   POIType = "mountain"
	TypeShopping   POIType = "shopping"
	TypeAttraction POIType = "attraction"
	TypeMonument   POIType = "monument"
	TypeBusiness   POIType = "business"
)

var ErrUnknownType = errors.New("unknown point of interest type")

// Types lists every POIType in a stable order.
func Types() []POIType {
	return []POIType{TypeChurch, TypeMountain, TypeShopping, TypeAttraction, TypeMonument, TypeBusiness}
}

// ParseType maps a dataset type tag to a POIType.
func ParseType(tag string) (POIType, error) {
	t := POIType(strings.ToLower(strings.TrimSpace(tag)))
	if _, ok := icons[t]; !ok {
		return "", fmt.Errorf("parse type %q: %w", tag, ErrUnknownType)
	}
	return t, nil
}

// A single point of interest.
// Identity is positional: the record's index in the store's sequence.
// Distance is nil until the first refresh and afterwards holds the last
// computed value in kilometers.
type PointOfInterest struct {
	Name        string     `json:"name"`
	Type        POIType    `json:"type"`
	Coordinates Coordinate `json:"coordinates"`
	Distance    *float64   `json:"distance,omitempty"`
}

// WithDistance returns a copy of p carrying the given distance.
func (p PointOfInterest) WithDistance(km float64) PointOfInterest {
	p.Distance = &km
	return p
}
