package tiles

import (
	"testing"

	"github.com/gruppe-adler/hillshade-utils/internal/hgt"
	"github.com/gruppe-adler/hillshade-utils/internal/hillshade"
)

func grayRaster(axisLen int, value byte) *hillshade.Raster {
	pix := make([]byte, axisLen*axisLen)
	for i := range pix {
		pix[i] = value
	}
	return &hillshade.Raster{Pix: pix, AxisLen: axisLen, Padding: 0}
}

func TestCombineShadedImage(t *testing.T) {
	shaded := map[hgt.TileName]*hillshade.Raster{
		{Lat: 45, Lon: 7}: grayRaster(4, 100),
		{Lat: 45, Lon: 8}: grayRaster(4, 200),
		{Lat: 44, Lon: 7}: grayRaster(4, 50),
	}

	img, bounds, err := combineShadedImage(shaded)
	if err != nil {
		t.Fatalf("combineShadedImage failed: %s", err)
	}

	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Fatalf("expected a 8x8 canvas, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}

	want := [4]float64{7, 44, 9, 46}
	if bounds != want {
		t.Errorf("expected bounds %v, got %v", want, bounds)
	}

	// north west tile in the top left corner
	if v := img.GrayAt(0, 0).Y; v != 100 {
		t.Errorf("expected N45E007 pixel at (0,0), got %d", v)
	}
	if v := img.GrayAt(3, 3).Y; v != 100 {
		t.Errorf("expected N45E007 pixel at (3,3), got %d", v)
	}

	// its eastern neighbour to the right
	if v := img.GrayAt(4, 0).Y; v != 200 {
		t.Errorf("expected N45E008 pixel at (4,0), got %d", v)
	}
	if v := img.GrayAt(7, 3).Y; v != 200 {
		t.Errorf("expected N45E008 pixel at (7,3), got %d", v)
	}

	// its southern neighbour below
	if v := img.GrayAt(0, 4).Y; v != 50 {
		t.Errorf("expected N44E007 pixel at (0,4), got %d", v)
	}

	// N44E008 is missing, so that quadrant stays black
	if v := img.GrayAt(4, 4).Y; v != 0 {
		t.Errorf("expected missing tile to stay black at (4,4), got %d", v)
	}
}

func TestCombineShadedImageEmpty(t *testing.T) {
	_, _, err := combineShadedImage(map[hgt.TileName]*hillshade.Raster{})
	if err == nil {
		t.Error("expected an error for an empty tile set")
	}
}

func TestCombineShadedImageMixedResolutions(t *testing.T) {
	shaded := map[hgt.TileName]*hillshade.Raster{
		{Lat: 45, Lon: 7}: grayRaster(4, 100),
		{Lat: 45, Lon: 8}: grayRaster(8, 200),
	}

	_, _, err := combineShadedImage(shaded)
	if err == nil {
		t.Error("expected an error for mixed tile resolutions")
	}
}
