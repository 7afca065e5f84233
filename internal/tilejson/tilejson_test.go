package tilejson

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"testing"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	err := Write(dir, 7, "Test Tiles", "Some test tiles", []float64{7, 45, 9, 46}, []string{"contours/10", "peaks"})
	if err != nil {
		t.Fatal(err)
	}

	data, err := ioutil.ReadFile(filepath.Join(dir, "tile.json"))
	if err != nil {
		t.Fatal(err)
	}

	var obj TileJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatal(err)
	}

	if obj.TileJSON != "2.2.0" || obj.Maxzoom != 7 || obj.Scheme != "xyz" {
		t.Errorf("unexpected tile.json contents: %+v", obj)
	}
	if len(obj.Bounds) != 4 || obj.Bounds[0] != 7 {
		t.Errorf("unexpected bounds: %v", obj.Bounds)
	}
	if len(obj.VectorLayers) != 2 || obj.VectorLayers[1].ID != "peaks" {
		t.Fatalf("unexpected vector layers: %+v", obj.VectorLayers)
	}
	if obj.VectorLayers[1].Fields["elevation"] != "Number" {
		t.Error("expected known fields for the peaks layer")
	}
}
