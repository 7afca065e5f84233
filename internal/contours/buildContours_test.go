package contours

import (
	"testing"

	"github.com/gruppe-adler/hillshade-utils/internal/hgt"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func TestElevationRange(t *testing.T) {
	grids := []*hgt.Grid{
		{Name: hgt.TileName{Lat: 45, Lon: 7}, RowLen: 2, Data: []int16{-12, 5, 100, 3}},
		{Name: hgt.TileName{Lat: 45, Lon: 8}, RowLen: 2, Data: []int16{3, 250, 0, 1}},
	}

	min, max := elevationRange(grids)
	if min != -12 || max != 250 {
		t.Errorf("expected range -12..250, got %d..%d", min, max)
	}

	min, max = elevationRange(nil)
	if min != 0 || max != 0 {
		t.Errorf("expected range 0..0 without grids, got %d..%d", min, max)
	}
}

func TestBuildContours(t *testing.T) {
	grid := &hgt.Grid{
		Name:   hgt.TileName{Lat: 45, Lon: 7},
		RowLen: 3,
		Data: []int16{
			5, 5, 5,
			5, 75, 5,
			5, 5, 5,
		},
	}

	layers := map[string]*geojson.FeatureCollection{}
	buildContours([]*hgt.Grid{grid}, &layers)

	for _, layerName := range []string{"contours/10", "contours/50", "contours/100"} {
		if layers[layerName] == nil {
			t.Fatalf("expected layer %s", layerName)
		}
	}

	// one ring around the summit for every contour height from 10 to 70
	if got := len(layers["contours/10"].Features); got != 7 {
		t.Errorf("expected 7 features in contours/10, got %d", got)
	}
	if got := len(layers["contours/50"].Features); got != 1 {
		t.Errorf("expected 1 feature in contours/50, got %d", got)
	}
	if got := len(layers["contours/100"].Features); got != 0 {
		t.Errorf("expected no features in contours/100, got %d", got)
	}

	f := layers["contours/50"].Features[0]
	if f.Properties["elevation"] != 50 {
		t.Errorf("expected elevation 50, got %v", f.Properties["elevation"])
	}

	line, ok := f.Geometry.(orb.LineString)
	if !ok {
		t.Fatalf("expected a LineString, got %s", f.Geometry.GeoJSONType())
	}
	if len(line) < 4 {
		t.Errorf("expected a closed ring, got %d points", len(line))
	}
	if !line[0].Equal(line[len(line)-1]) {
		t.Errorf("expected first and last point to match, got %v and %v", line[0], line[len(line)-1])
	}
}

func TestBuildContoursBelowSeaLevel(t *testing.T) {
	grid := &hgt.Grid{
		Name:   hgt.TileName{Lat: 45, Lon: 7},
		RowLen: 3,
		Data: []int16{
			-5, -5, -5,
			-5, -25, -5,
			-5, -5, -5,
		},
	}

	layers := map[string]*geojson.FeatureCollection{}
	buildContours([]*hgt.Grid{grid}, &layers)

	features := layers["contours/10"].Features
	if len(features) != 2 {
		t.Fatalf("expected 2 features in contours/10, got %d", len(features))
	}

	elevations := map[int]bool{}
	for _, f := range features {
		elevations[f.Properties["elevation"].(int)] = true
	}
	if !elevations[-20] || !elevations[-10] {
		t.Errorf("expected contours at -20 and -10, got %v", elevations)
	}
}
