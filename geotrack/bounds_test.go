package geotrack

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestBounds(t *testing.T) {
	samples := []Sample{
		{Lat: 46.0, Lon: 7.0},
		{Lat: 46.2, Lon: 6.8},
		{Lat: 45.9, Lon: 7.4},
	}

	ext, ok := Bounds(samples)
	if !ok {
		t.Fatal("Expected extent for non-empty track")
	}

	wantBound := orb.Bound{Min: orb.Point{6.8, 45.9}, Max: orb.Point{7.4, 46.2}}
	if !ext.Bound.Equal(wantBound) {
		t.Errorf("Expected bound %v, got %v", wantBound, ext.Bound)
	}

	if ext.Start != (orb.Point{7.0, 46.0}) || ext.End != (orb.Point{7.4, 45.9}) {
		t.Errorf("unexpected start/end %v %v", ext.Start, ext.End)
	}

	c := ext.Center
	if c[0] < 7.09 || c[0] > 7.11 || c[1] < 46.04 || c[1] > 46.06 {
		t.Errorf("unexpected center %v", c)
	}

	if _, ok := Bounds(nil); ok {
		t.Error("Expected no extent for empty track")
	}
}
