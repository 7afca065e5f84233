package contours

import (
	"testing"

	"github.com/gruppe-adler/hillshade-utils/internal/hgt"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func TestBuildPeaks(t *testing.T) {
	// a 300 m summit in the middle, a plateau pair of 50s below it and a
	// 200 m sample on the edge, which never counts as a peak
	g1 := &hgt.Grid{
		Name:   hgt.TileName{Lat: 45, Lon: 7},
		RowLen: 5,
		Data: []int16{
			200, 10, 10, 10, 10,
			10, 10, 10, 10, 10,
			10, 10, 300, 10, 10,
			10, 50, 50, 10, 10,
			10, 10, 10, 10, 10,
		},
	}

	g2 := &hgt.Grid{
		Name:   hgt.TileName{Lat: 44, Lon: 8},
		RowLen: 5,
		Data: []int16{
			10, 10, 10, 10, 10,
			10, 10, 10, 10, 10,
			10, 10, 100, 10, 10,
			10, 10, 10, 10, 10,
			10, 10, 10, 10, 10,
		},
	}

	layers := map[string]*geojson.FeatureCollection{}
	buildPeaks([]*hgt.Grid{g1, g2}, &layers)

	peaks := layers["peaks"]
	if peaks == nil {
		t.Fatal("expected a peaks layer")
	}
	if len(peaks.Features) != 2 {
		t.Fatalf("expected 2 peaks, got %d", len(peaks.Features))
	}

	// sorted by elevation, lowest first
	first, second := peaks.Features[0], peaks.Features[1]
	if first.Properties["elevation"] != 100.0 {
		t.Errorf("expected first peak at 100 m, got %v", first.Properties["elevation"])
	}
	if second.Properties["elevation"] != 300.0 {
		t.Errorf("expected second peak at 300 m, got %v", second.Properties["elevation"])
	}

	if first.Properties["text"] != "100" {
		t.Errorf("expected text \"100\", got %v", first.Properties["text"])
	}

	point, ok := first.Geometry.(orb.Point)
	if !ok {
		t.Fatalf("expected a Point, got %s", first.Geometry.GeoJSONType())
	}
	if !point.Equal(orb.Point{8.5, 44.5}) {
		t.Errorf("expected the peak at (8.5, 44.5), got %v", point)
	}
}

func TestBuildPeaksBelowWater(t *testing.T) {
	grid := &hgt.Grid{
		Name:   hgt.TileName{Lat: 45, Lon: 7},
		RowLen: 3,
		Data: []int16{
			-10, -10, -10,
			-10, -5, -10,
			-10, -10, -10,
		},
	}

	layers := map[string]*geojson.FeatureCollection{}
	buildPeaks([]*hgt.Grid{grid}, &layers)

	if got := len(layers["peaks"].Features); got != 0 {
		t.Errorf("expected no peaks below the water level, got %d", got)
	}
}
