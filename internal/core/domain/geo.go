package domain

import "math"

// earthRadiusKm is the mean Earth radius used for great-circle distances.
const earthRadiusKm = 6371.0

// Coordinate represents a geographic point.
type Coordinate struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// DistanceKm returns the haversine (great-circle) distance in kilometres
// between c and other. The result is symmetric, non-negative, and exactly
// zero for identical coordinates. Any finite pair of values is accepted;
// range validation is the caller's concern.
func (c Coordinate) DistanceKm(other Coordinate) float64 {
	phi1 := radians(c.Lat)
	phi2 := radians(other.Lat)
	dPhi := phi2 - phi1
	dLambda := radians(other.Lng - c.Lng)

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
