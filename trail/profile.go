package trail

import "github.com/bgraf/trailmap/geotrack"

// DefaultProfilePoints bounds the length of a thinned profile.
const DefaultProfilePoints = 200

// ProfilePoint is one point of the elevation chart: cumulative miles and
// elevation in feet.
type ProfilePoint struct {
	D float64 `json:"d"`
	E float64 `json:"e"`
}

// BuildProfile returns one profile point per sample.
func BuildProfile(samples []geotrack.Sample) []ProfilePoint {
	if len(samples) == 0 {
		return nil
	}

	cum := geotrack.CumulativeDistances(samples)

	profile := make([]ProfilePoint, len(samples))
	for i, s := range samples {
		profile[i] = ProfilePoint{
			D: round(cum[i]*MilesPerMeter, 3),
			E: round(s.Ele*FeetPerMeter, 1),
		}
	}

	return profile
}

// ThinProfile keeps every stride-th point, stride = len/maxPoints, and makes
// sure the result ends with the final point of the full profile. Profiles of
// at most maxPoints points are returned unchanged.
func ThinProfile(full []ProfilePoint, maxPoints int) []ProfilePoint {
	if maxPoints <= 0 || len(full) <= maxPoints {
		return full
	}

	stride := len(full) / maxPoints

	var result []ProfilePoint
	last := 0
	for i := 0; i < len(full); i += stride {
		result = append(result, full[i])
		last = i
	}

	if last != len(full)-1 {
		result = append(result, full[len(full)-1])
	}

	return result
}
