package shade

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/gruppe-adler/hillshade-utils/internal/hgt"
	"github.com/paulmach/orb/geojson"
)

func TestCoverage(t *testing.T) {
	cov := newCoverage(50)
	cov.add(hgt.TileName{Lat: 45, Lon: 7}, 1200)
	cov.add(hgt.TileName{Lat: -4, Lon: -63}, 1200)

	path := filepath.Join(t.TempDir(), "coverage.geojson")
	if err := cov.write(path); err != nil {
		t.Fatal(err)
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		t.Fatal(err)
	}

	if len(fc.Features) != 2 {
		t.Fatalf("expected 2 footprints, got %d", len(fc.Features))
	}

	first := fc.Features[0]
	if first.Properties.MustString("tile") != "N45E007" {
		t.Errorf("unexpected tile name: %v", first.Properties["tile"])
	}

	bound := first.Geometry.Bound()
	if bound.Min[0] != 7 || bound.Min[1] != 45 || bound.Max[0] != 8 || bound.Max[1] != 46 {
		t.Errorf("unexpected footprint bound: %v", bound)
	}
}
