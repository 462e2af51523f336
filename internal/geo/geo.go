// Package geo provides great-circle distance math and display formatting for
// the search pipeline.
package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
const EarthRadiusKm = 6371.0

// Distance calculates the Haversine great-circle distance between two points
// in kilometers. Points follow orb's lon/lat ordering.
func Distance(a, b orb.Point) float64 {
	lat1Rad := a.Lat() * math.Pi / 180
	lat2Rad := b.Lat() * math.Pi / 180
	deltaLat := (b.Lat() - a.Lat()) * math.Pi / 180
	deltaLon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// FormatDistance renders a distance for display: metres below one kilometer,
// otherwise kilometers to one decimal place.
func FormatDistance(km float64) string {
	// Round to metres first so 0.9996km reads "1.0km away", not "1000m away".
	meters := int(math.Round(km * 1000))
	if meters < 1000 {
		return fmt.Sprintf("%dm away", meters)
	}

	return fmt.Sprintf("%.1fkm away", km)
}
