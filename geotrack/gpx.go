package geotrack

import (
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"
)

// ParseError reports a track file that could not be read or parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse track '%s': %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadTrack reads the GPX file at trackFilePath and returns its points in
// file order. Points without elevation get an elevation of 0.
func LoadTrack(trackFilePath string, variant Variant) ([]Sample, error) {
	gpxData, err := gpx.ParseFile(trackFilePath)
	if err != nil {
		return nil, &ParseError{Path: trackFilePath, Err: err}
	}

	return readPoints(gpxData, variant), nil
}

func readPoints(gpxData *gpx.GPX, variant Variant) []Sample {
	var points []Sample

	for _, p := range selectPoints(gpxData, variant) {
		points = append(points, Sample{
			Lat: p.Latitude,
			Lon: p.Longitude,
			Ele: p.Elevation.Value(),
		})
	}

	return points
}

func selectPoints(gpxData *gpx.GPX, variant Variant) []gpx.GPXPoint {
	var points []gpx.GPXPoint

	switch variant {
	case VariantRoute:
		for _, route := range gpxData.Routes {
			points = append(points, route.Points...)
		}
	default:
		for _, track := range gpxData.Tracks {
			for _, segment := range track.Segments {
				points = append(points, segment.Points...)
			}
		}
	}

	return points
}
