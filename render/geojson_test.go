package render

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bgraf/trailmap/config"
	"github.com/bgraf/trailmap/geotrack"
	"github.com/bgraf/trailmap/trail"
)

func testRecord() Record {
	return NewRecord(
		config.Track{Loop: "pink", Label: "Pink & Purple", Color: "#E834EC", NominalMiles: 7.75},
		trail.Stats{DistanceMi: 0.14, GainFt: 33, LossFt: 16, MinEleFt: 0, MaxEleFt: 33},
		[]geotrack.Sample{
			{Lat: 46.5, Lon: 7.25, Ele: 1000},
			{Lat: 46.75, Lon: -7.5, Ele: 10.5},
		},
		[]trail.ProfilePoint{{D: 0, E: 3280.8}, {D: 0.069, E: 34.4}},
	)
}

func TestMarshalGeoJSONLayout(t *testing.T) {
	got, err := MarshalGeoJSON(testRecord())
	if err != nil {
		t.Fatalf("MarshalGeoJSON failed: %v", err)
	}

	want := `{"type":"FeatureCollection","features":[{"type":"Feature",` +
		`"properties":{"name":"Pink & Purple","loop":"pink","color":"#E834EC","nominal_miles":7.75,` +
		`"distance_mi":0.14,"gain_ft":33,"loss_ft":16,"min_ele_ft":0,"max_ele_ft":33},` +
		`"geometry":{"type":"LineString","coordinates":[[7.25,46.5,1000],[-7.5,46.75,10.5]]}}],` +
		`"profile":[{"d":0,"e":3280.8},{"d":0.069,"e":34.4}]}`

	if string(got) != want {
		t.Errorf("unexpected GeoJSON\n got: %s\nwant: %s", got, want)
	}

	if !json.Valid(got) {
		t.Error("output is not valid JSON")
	}
}

func TestMarshalGeoJSONDeterministic(t *testing.T) {
	a, err := MarshalGeoJSON(testRecord())
	if err != nil {
		t.Fatal(err)
	}
	b, err := MarshalGeoJSON(testRecord())
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(a, b) {
		t.Error("Expected byte-identical output for identical records")
	}
}

func TestMarshalGeoJSONEmptySlices(t *testing.T) {
	rec := NewRecord(config.Track{Loop: "x"}, trail.Stats{}, nil, nil)

	got, err := MarshalGeoJSON(rec)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Contains(got, []byte(`"coordinates":[]`)) || !bytes.Contains(got, []byte(`"profile":[]`)) {
		t.Errorf("Expected empty arrays instead of null, got %s", got)
	}
}

func TestWriteGeoJSON(t *testing.T) {
	dir := t.TempDir()

	outPath, size, err := WriteGeoJSON(dir, testRecord())
	if err != nil {
		t.Fatalf("WriteGeoJSON failed: %v", err)
	}

	if outPath != filepath.Join(dir, "pink.geojson") {
		t.Errorf("unexpected output path %s", outPath)
	}

	payload, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(payload) != size {
		t.Errorf("reported size %d, file has %d bytes", size, len(payload))
	}

	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("written file is not JSON: %v", err)
	}
	if decoded["type"] != "FeatureCollection" {
		t.Errorf("unexpected type %v", decoded["type"])
	}
}
