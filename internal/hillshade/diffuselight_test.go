package hillshade

import (
	"math"
	"testing"
)

func TestRelativeLightHeight(t *testing.T) {
	if got := relativeLightHeight(0); got != 0 {
		t.Errorf("relativeLightHeight(0) expected 0, got %g", got)
	}
	if got := relativeLightHeight(45); math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("relativeLightHeight(45) expected sqrt(2), got %g", got)
	}

	// near vertical light blows up with the tangent
	if got := relativeLightHeight(89.9); got < 100 {
		t.Errorf("relativeLightHeight(89.9) expected a large value, got %g", got)
	}
}

func TestNeutral(t *testing.T) {
	// at 45° the relative light height is sqrt(2), so ast2 collapses to 2
	// and the raw light on flat ground to 1/sqrt(2)
	d := New(45)
	if math.Abs(d.ast2-2) > 1e-12 {
		t.Errorf("ast2 at 45° expected 2, got %g", d.ast2)
	}
	if want := 1 / math.Sqrt2; math.Abs(d.neutral-want) > 1e-12 {
		t.Errorf("neutral at 45° expected %g, got %g", want, d.neutral)
	}

	// light on the horizon: flat ground catches no light at all
	d0 := New(0)
	if d0.neutral != 0 {
		t.Errorf("neutral at 0° expected 0, got %g", d0.neutral)
	}
	if math.Abs(d0.ast2-math.Sqrt2) > 1e-12 {
		t.Errorf("ast2 at 0° expected sqrt(2), got %g", d0.ast2)
	}
}

func TestIntensityFlatIsZero(t *testing.T) {
	for _, angle := range []float64{0, 10, 45, DefaultHeightAngle, 89} {
		if got := New(angle).intensity(0, 0); got != 0 {
			t.Errorf("intensity(0, 0) at angle %g expected 0, got %d", angle, got)
		}
	}
}

func TestIntensityRange(t *testing.T) {
	d := New(DefaultHeightAngle)

	for n := -40.0; n <= 40; n += 0.5 {
		for e := -40.0; e <= 40; e += 0.5 {
			got := d.intensity(n, e)
			if got < -128 || got > 127 {
				t.Fatalf("intensity(%g, %g) out of range: %d", n, e, got)
			}
		}
	}
}

func TestIntensityMonotonicOnModerateSlopes(t *testing.T) {
	d := New(DefaultHeightAngle)
	steps := []float64{-2, -1, -0.5, -0.25, 0, 0.25, 0.5}

	// tilting further towards the light never darkens
	for _, e := range steps {
		prev := -129
		for _, n := range steps {
			got := d.intensity(n, e)
			if got < prev {
				t.Errorf("intensity(%g, %g) dropped from %d to %d", n, e, prev, got)
			}
			prev = got
		}
	}

	for _, n := range steps {
		prev := -129
		for _, e := range steps {
			got := d.intensity(n, e)
			if got < prev {
				t.Errorf("intensity(%g, %g) dropped from %d to %d", n, e, prev, got)
			}
			prev = got
		}
	}
}

func TestKeyAndEqual(t *testing.T) {
	a1 := New(50)
	a2 := New(50)
	b := New(45)

	if !a1.Equal(a2) {
		t.Error("instances with the same height angle expected to be equal")
	}
	if a1.Key() != a2.Key() {
		t.Error("instances with the same height angle expected to share a key")
	}
	if a1.Equal(b) || a1.Key() == b.Key() {
		t.Error("instances with different height angles expected to differ")
	}
	if a1.Equal(nil) {
		t.Error("no instance equals nil")
	}

	cache := map[uint64]*DiffuseLight{a1.Key(): a1}
	if cache[a2.Key()] != a1 {
		t.Error("expected the key to address the same cache slot")
	}
}

func TestLightHeight(t *testing.T) {
	if got := New(45).LightHeight(); math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("LightHeight at 45° expected sqrt(2), got %g", got)
	}
}
