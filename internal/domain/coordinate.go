package domain

import (
	"math"

	"github.com/andrepxx/sydney/coordinates"
	"github.com/andrepxx/sydney/projection"
)

// Web Mercator is undefined at the poles; tiles stop at this latitude.
const MaxMercatorLatitude = 85.05112878

// Immutable geographic coordinate in degrees (latitude, longitude).
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Finite reports whether both components are real numbers.
func (c Coordinate) Finite() bool {
	return isFinite(c.Latitude) && isFinite(c.Longitude)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Planar position of a coordinate on a Web Mercator map.
type Projected struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Return the Web Mercator projection of the coordinate for map clients.
// Latitudes beyond MaxMercatorLatitude are clamped to the map edge.
func (c Coordinate) Project() Projected {
	lat := math.Max(-MaxMercatorLatitude, math.Min(MaxMercatorLatitude, c.Latitude))
	geo := coordinates.CreateGeographic(radians(c.Longitude), radians(lat))
	cart := projection.Mercator().Forward(geo)
	return Projected{X: cart.X(), Y: cart.Y()}
}
