// Package dataset provides read-only sources for the point-of-interest
// dataset: the file bundled into the binary, a file on disk, or an object in
// S3-compatible storage. All of them share the JSON format parsed here.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"mappulator-service/internal/domain"
	"strings"
)

// POISeed is one dataset entry as written in the JSON file.
type POISeed struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Coordinates struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	} `json:"coordinates"`
}

// ParseJSON decodes and validates a dataset document. Order is preserved.
func ParseJSON(data []byte) ([]domain.PointOfInterest, error) {
	var seeds []POISeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("parse dataset: decode json: %w", err)
	}

	pois := make([]domain.PointOfInterest, 0, len(seeds))
	for i, s := range seeds {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return nil, fmt.Errorf("parse dataset: item at index %d: name cannot be empty", i+1)
		}

		typ, err := domain.ParseType(s.Type)
		if err != nil {
			return nil, fmt.Errorf("parse dataset: item at index %d: %w", i+1, err)
		}

		if s.Coordinates.Latitude == nil || s.Coordinates.Longitude == nil {
			return nil, fmt.Errorf("parse dataset: item at index %d: %w", i+1, errMissingCoordinates)
		}

		pois = append(pois, domain.PointOfInterest{
			Name: name,
			Type: typ,
			Coordinates: domain.Coordinate{
				Latitude:  *s.Coordinates.Latitude,
				Longitude: *s.Coordinates.Longitude,
			},
		})
	}

	return pois, nil
}

var errMissingCoordinates = errors.New("latitude and longitude are required")
