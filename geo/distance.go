// Package geo provides great-circle distance math for proximity matching.
package geo

import "math"

const earthRadiusKm = 6371

// Distance returns the haversine great-circle distance in kilometers between
// two coordinates given in degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*math.Pow(math.Sin(dLon/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}

// Round2 rounds a distance to two decimal places for display.
func Round2(km float64) float64 {
	return math.Round(km*100) / 100
}
