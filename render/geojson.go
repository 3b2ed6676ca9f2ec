package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/bgraf/trailmap/config"
	"github.com/bgraf/trailmap/filesystem"
	"github.com/bgraf/trailmap/geotrack"
	"github.com/bgraf/trailmap/trail"
)

// GeoJSONExtension is the file extension of written records.
const GeoJSONExtension = ".geojson"

// Record is the assembled output of one track.
type Record struct {
	Track    config.Track
	Stats    trail.Stats
	Geometry []geotrack.Sample
	Profile  []trail.ProfilePoint
}

// NewRecord assembles the output of one track.
func NewRecord(track config.Track, stats trail.Stats, geometry []geotrack.Sample, profile []trail.ProfilePoint) Record {
	return Record{
		Track:    track,
		Stats:    stats,
		Geometry: geometry,
		Profile:  profile,
	}
}

// FileName is the name of the record's output file.
func (r Record) FileName() string {
	return r.Track.Loop + GeoJSONExtension
}

// Field order of the following types is part of the output format.

type featureCollection struct {
	Type     string               `json:"type"`
	Features []feature            `json:"features"`
	Profile  []trail.ProfilePoint `json:"profile"`
}

type feature struct {
	Type       string     `json:"type"`
	Properties properties `json:"properties"`
	Geometry   lineString `json:"geometry"`
}

type properties struct {
	Name         string  `json:"name"`
	Loop         string  `json:"loop"`
	Color        string  `json:"color"`
	NominalMiles float64 `json:"nominal_miles"`
	trail.Stats
}

type lineString struct {
	Type        string            `json:"type"`
	Coordinates []geotrack.Sample `json:"coordinates"`
}

// MarshalGeoJSON encodes the record as a compact feature collection with a
// single LineString feature. Coordinates are [lon, lat, ele] with the
// elevation in meters.
func MarshalGeoJSON(r Record) ([]byte, error) {
	coords := r.Geometry
	if coords == nil {
		coords = []geotrack.Sample{}
	}

	profile := r.Profile
	if profile == nil {
		profile = []trail.ProfilePoint{}
	}

	fc := featureCollection{
		Type: "FeatureCollection",
		Features: []feature{
			{
				Type: "Feature",
				Properties: properties{
					Name:         r.Track.Label,
					Loop:         r.Track.Loop,
					Color:        r.Track.Color,
					NominalMiles: r.Track.NominalMiles,
					Stats:        r.Stats,
				},
				Geometry: lineString{
					Type:        "LineString",
					Coordinates: coords,
				},
			},
		},
		Profile: profile,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(fc); err != nil {
		return nil, fmt.Errorf("encode GeoJSON: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteGeoJSON writes the record into directory and returns the written path
// and its size in bytes.
func WriteGeoJSON(directory string, r Record) (string, int, error) {
	payload, err := MarshalGeoJSON(r)
	if err != nil {
		return "", 0, err
	}

	outPath := filepath.Join(directory, r.FileName())
	if err := filesystem.WriteFileAtomic(outPath, payload); err != nil {
		return "", 0, fmt.Errorf("write GeoJSON: %w", err)
	}

	return outPath, len(payload), nil
}
