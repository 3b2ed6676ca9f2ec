package geotrack

import (
	"encoding/json"
	"fmt"
)

// Sample is a single recorded track point. Elevation is in meters.
type Sample struct {
	Lat, Lon float64
	Ele      float64
}

// MarshalJSON encodes the sample in GeoJSON position order.
func (s Sample) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Position())
}

// Position returns the sample as a [lon, lat, ele] triple.
func (s Sample) Position() [3]float64 {
	return [3]float64{s.Lon, s.Lat, s.Ele}
}

// Variant selects which GPX point element a track is read from.
type Variant int

const (
	// VariantTrack reads <trkpt> elements of all tracks and segments.
	VariantTrack Variant = iota
	// VariantRoute reads <rtept> elements of all routes.
	VariantRoute
)

func (v Variant) String() string {
	switch v {
	case VariantTrack:
		return "trk"
	case VariantRoute:
		return "rte"
	}

	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant converts the configuration spelling of a variant. The empty
// string selects VariantTrack.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "", "trk", "trkpt":
		return VariantTrack, nil
	case "rte", "rtept":
		return VariantRoute, nil
	}

	return 0, fmt.Errorf("unknown track variant '%s'", s)
}
