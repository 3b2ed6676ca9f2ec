package geotrack

// Dedup drops every sample whose coordinates equal those of the previously
// kept sample. Elevation is not compared. The input is not modified.
func Dedup(samples []Sample) []Sample {
	if len(samples) == 0 {
		return []Sample{}
	}

	result := make([]Sample, 0, len(samples))
	result = append(result, samples[0])

	for _, s := range samples[1:] {
		last := result[len(result)-1]
		if s.Lat != last.Lat || s.Lon != last.Lon {
			result = append(result, s)
		}
	}

	return result
}
