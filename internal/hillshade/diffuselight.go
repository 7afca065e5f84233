package hillshade

import "math"

// DefaultHeightAngle is the default height angle of the light source in
// degrees over ground.
const DefaultHeightAngle = 50.0

// DiffuseLight models simple diffuse lighting of a sloped surface without
// self-shadowing. Slopes below and above the neutral (flat) value are scaled
// separately so both sides make full use of the available output range while
// flat ground always maps to the same value regardless of the light angle.
//
// A configured instance is immutable and safe for concurrent use.
type DiffuseLight struct {
	a       float64 // relative height of the light source
	ast2    float64
	neutral float64
}

// New creates a DiffuseLight for a light source standing heightAngle degrees
// (0..90) over the horizon.
func New(heightAngle float64) *DiffuseLight {
	a := relativeLightHeight(heightAngle)

	d := &DiffuseLight{
		a:    a,
		ast2: math.Sqrt(2 + a*a),
	}
	d.neutral = d.raw(0, 0)

	return d
}

// relativeLightHeight converts the height angle of the light source into its
// height relative to a surface cell of extent 1x1. Angles close to 90 blow
// up with the tangent.
func relativeLightHeight(heightAngle float64) float64 {
	return math.Tan(heightAngle/180*math.Pi) * math.Sqrt2
}

// LightHeight returns the relative light height the instance was built with.
func (d *DiffuseLight) LightHeight() float64 { return d.a }

// raw returns the amount of light hitting a surface with the given
// north-south and east-west slopes, in 0..1.
func (d *DiffuseLight) raw(n, e float64) float64 {
	// distance of the normalized surface vector to the plane orthogonal to
	// the light direction
	dist := (e + n + d.a) / (d.ast2 * math.Sqrt(n*n+e*e+1))
	return math.Max(0, dist)
}

// intensity maps the raw light for the given slopes to a signed value:
// -128..0 fills the range below neutral, 0..127 the range above, and flat
// ground stays at exactly 0.
func (d *DiffuseLight) intensity(n, e float64) int {
	v := d.raw(n, e) - d.neutral

	switch {
	case v < 0:
		return int(math.Round(128 * (v / d.neutral)))
	case v > 0:
		return int(math.Round(127 * (v / (1 - d.neutral))))
	}
	return 0
}

// Key returns a stable cache key derived from the light height. Instances
// with bit-identical light heights shade identically.
func (d *DiffuseLight) Key() uint64 {
	return math.Float64bits(d.a)
}

// Equal reports whether both instances produce the same shading.
func (d *DiffuseLight) Equal(other *DiffuseLight) bool {
	return other != nil && d.Key() == other.Key()
}
