package mileage

import "math"

const (
	earthRadiusMeters = 6371008.8
	metersPerMile     = 1609.344
)

// Fix is a single location reading.
type Fix struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the fix is a finite coordinate on the globe.
func (f Fix) Valid() bool {
	if math.IsNaN(f.Lat) || math.IsNaN(f.Lng) || math.IsInf(f.Lat, 0) || math.IsInf(f.Lng, 0) {
		return false
	}
	return math.Abs(f.Lat) <= 90 && math.Abs(f.Lng) <= 180
}

// DistanceMeters is the haversine great-circle distance between two fixes.
func DistanceMeters(a, b Fix) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}

func MetersToMiles(m float64) float64 { return m / metersPerMile }
