package geotrack

import "math"

// EarthRadius is the mean earth radius in meters.
const EarthRadius = 6371000.0

const degToRad = math.Pi / 180

// Distance returns the haversine great-circle distance between a and b in
// meters. Every distance of the pipeline goes through this function so that
// statistics, profile and geometry agree on the last bit.
func Distance(a, b Sample) float64 {
	dLat := (b.Lat - a.Lat) * degToRad
	dLon := (b.Lon - a.Lon) * degToRad

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat +
		math.Cos(a.Lat*degToRad)*math.Cos(b.Lat*degToRad)*sinLon*sinLon

	return EarthRadius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// CumulativeDistances returns, for every sample, the distance in meters
// travelled from the first sample.
func CumulativeDistances(samples []Sample) []float64 {
	if len(samples) == 0 {
		return nil
	}

	cum := make([]float64, len(samples))
	for i := 1; i < len(samples); i++ {
		cum[i] = cum[i-1] + Distance(samples[i-1], samples[i])
	}

	return cum
}
