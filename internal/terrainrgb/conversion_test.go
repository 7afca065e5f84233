package terrainrgb

import (
	"image/color"
	"math"
	"testing"
)

func TestHeightToRgbKnownValues(t *testing.T) {
	// sea level encodes to #0186a0
	if got := HeightToRgb(0); got != (color.RGBA{R: 1, G: 134, B: 160, A: 255}) {
		t.Errorf("expected rgb(1, 134, 160) for 0 m, got %v", got)
	}

	// the lowest encodable height maps to black
	if got := HeightToRgb(-10000); got != (color.RGBA{R: 0, G: 0, B: 0, A: 255}) {
		t.Errorf("expected rgb(0, 0, 0) for -10000 m, got %v", got)
	}
}

func TestHeightRoundTrip(t *testing.T) {
	heights := []float64{-10000, -421.5, 0, 130, 1673.9, 8848.4}

	for _, height := range heights {
		got := RgbToHeight(HeightToRgb(height))

		// heights are encoded in 0.1 m steps, so a round trip may lose up to
		// one step
		if math.Abs(got-height) > 0.11 {
			t.Errorf("height %g round-tripped to %g", height, got)
		}
	}
}

func TestHeightToRgbClamps(t *testing.T) {
	if got := HeightToRgb(-20000); got != (color.RGBA{R: 0, G: 0, B: 0, A: 255}) {
		t.Errorf("expected heights below -10000 m to clamp to black, got %v", got)
	}

	got := HeightToRgb(2000000)
	if got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("expected out of range heights to clamp to white, got %v", got)
	}
	if height := RgbToHeight(got); height != 1667721.5 {
		t.Errorf("expected the highest encodable height to be 1667721.5, got %g", height)
	}
}
