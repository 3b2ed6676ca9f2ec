package trail

import "github.com/bgraf/trailmap/geotrack"

// SimplifyOptions controls when and how strongly map geometry is reduced.
type SimplifyOptions struct {
	// MinSeparationM is the minimum distance in meters between kept points.
	MinSeparationM float64
	// Above is the sample count a track must exceed to be simplified.
	Above int
}

// DefaultSimplifyOptions simplifies tracks above 400 points to 15 m spacing.
func DefaultSimplifyOptions() SimplifyOptions {
	return SimplifyOptions{
		MinSeparationM: 15,
		Above:          400,
	}
}

// Simplify keeps the first and last sample and every sample that is at least
// minSeparationM away from the previously kept one. Sharp turns between kept
// samples are not treated specially.
func Simplify(samples []geotrack.Sample, minSeparationM float64) []geotrack.Sample {
	if len(samples) <= 2 {
		return samples
	}

	result := []geotrack.Sample{samples[0]}
	for _, s := range samples[1 : len(samples)-1] {
		if geotrack.Distance(result[len(result)-1], s) >= minSeparationM {
			result = append(result, s)
		}
	}

	return append(result, samples[len(samples)-1])
}

// SimplifyIfLarge simplifies samples only if there are more than opts.Above.
func SimplifyIfLarge(samples []geotrack.Sample, opts SimplifyOptions) []geotrack.Sample {
	if len(samples) <= opts.Above {
		return samples
	}

	return Simplify(samples, opts.MinSeparationM)
}
