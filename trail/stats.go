package trail

import (
	"errors"
	"fmt"

	"github.com/bgraf/trailmap/geotrack"
)

// ErrNoSamples is reported for a track without any point.
var ErrNoSamples = errors.New("track has no samples")

// DataError reports a track whose samples cannot produce statistics.
type DataError struct {
	Err error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("invalid track data: %v", e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// Stats are the display statistics of a track.
type Stats struct {
	DistanceMi float64 `json:"distance_mi"`
	GainFt     int     `json:"gain_ft"`
	LossFt     int     `json:"loss_ft"`
	MinEleFt   int     `json:"min_ele_ft"`
	MaxEleFt   int     `json:"max_ele_ft"`
}

// ComputeStats accumulates distance and elevation change in meters and
// converts to miles and feet once at the end.
func ComputeStats(samples []geotrack.Sample) (Stats, error) {
	if len(samples) == 0 {
		return Stats{}, &DataError{Err: ErrNoSamples}
	}

	var gain, loss float64
	minEle, maxEle := samples[0].Ele, samples[0].Ele

	cum := geotrack.CumulativeDistances(samples)
	dist := cum[len(cum)-1]

	for i := 1; i < len(samples); i++ {
		dEle := samples[i].Ele - samples[i-1].Ele
		if dEle > 0 {
			gain += dEle
		} else {
			loss -= dEle
		}

		if samples[i].Ele < minEle {
			minEle = samples[i].Ele
		}
		if samples[i].Ele > maxEle {
			maxEle = samples[i].Ele
		}
	}

	return Stats{
		DistanceMi: round(dist*MilesPerMeter, 2),
		GainFt:     roundInt(gain * FeetPerMeter),
		LossFt:     roundInt(loss * FeetPerMeter),
		MinEleFt:   roundInt(minEle * FeetPerMeter),
		MaxEleFt:   roundInt(maxEle * FeetPerMeter),
	}, nil
}
