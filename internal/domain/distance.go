package domain

import (
	"math"
	"strconv"
)

// Mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

func radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// Distance returns the great-circle distance in kilometers between origin and
// target using the haversine formula.
//
// Inputs are not validated. Latitudes outside ±90 or longitudes outside ±180
// produce whatever the formula yields.
func Distance(origin, target Coordinate) float64 {
	dLat := radians(target.Latitude-origin.Latitude) / 2
	dLon := radians(target.Longitude-origin.Longitude) / 2

	a := math.Pow(math.Sin(dLat), 2) +
		math.Cos(radians(origin.Latitude))*math.Cos(radians(target.Latitude))*math.Pow(math.Sin(dLon), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// FormatKm renders a distance with two decimal places, without unit.
func FormatKm(km float64) string {
	return strconv.FormatFloat(km, 'f', 2, 64)
}

// RoundKm rounds a distance to two decimal places.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
