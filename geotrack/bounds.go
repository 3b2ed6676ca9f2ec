package geotrack

import (
	"github.com/paulmach/orb"
)

// Extent describes where a track lies.
type Extent struct {
	Bound  orb.Bound
	Center orb.Point
	Start  orb.Point
	End    orb.Point
}

// Bounds computes the extent of a non-empty sample slice. The second return
// value is false for an empty slice.
func Bounds(samples []Sample) (Extent, bool) {
	if len(samples) == 0 {
		return Extent{}, false
	}

	mp := make(orb.MultiPoint, len(samples))
	for i, s := range samples {
		mp[i] = orb.Point{s.Lon, s.Lat}
	}

	bound := mp.Bound()

	return Extent{
		Bound:  bound,
		Center: bound.Center(),
		Start:  mp[0],
		End:    mp[len(mp)-1],
	}, true
}
