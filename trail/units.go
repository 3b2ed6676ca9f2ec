package trail

import "math"

const (
	FeetPerMeter  = 3.28084
	MilesPerMeter = 0.000621371
)

// round rounds half up to the given number of decimal places, matching the
// rounding of previously published outputs.
func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Floor(x*p+0.5) / p
}

func roundInt(x float64) int {
	return int(math.Floor(x + 0.5))
}
