package entity

import "math"

const earthRadiusMiles = 3958.8

// Coordinate is a WGS 84 point.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsFinite reports whether both components are finite numbers.
// Pins with broken coordinates are skipped before any distance math.
func (c Coordinate) IsFinite() bool {
	return !math.IsNaN(c.Latitude) && !math.IsInf(c.Latitude, 0) &&
		!math.IsNaN(c.Longitude) && !math.IsInf(c.Longitude, 0)
}

// DistanceMiles returns the haversine great-circle distance to other in miles.
// Symmetric; zero for identical points; NaN inputs propagate to the result.
func (c Coordinate) DistanceMiles(other Coordinate) float64 {
	dLat := toRad(other.Latitude - c.Latitude)
	dLon := toRad(other.Longitude - c.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(c.Latitude))*math.Cos(toRad(other.Latitude))*math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusMiles * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
