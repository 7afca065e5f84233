package gen

import (
	"github.com/aquilax/go-perlin"
)

const (
	landFrequency = 3.5
	zoneFrequency = 0.8
)

// generator produces plausible elevation samples from layered perlin noise.
type generator struct {
	landHi *perlin.Perlin // high frequency terrain details
	landLo *perlin.Perlin // low frequency zones
}

func newGenerator(seed int64) *generator {
	return &generator{
		landHi: perlin.NewPerlin(1.5, 2.0, 4, seed),
		landLo: perlin.NewPerlin(2.5, 3.0, 4, seed+1),
	}
}

// sample returns the elevation in meters at (x, y) in 0..1 tile space.
func (g *generator) sample(x, y float64) int16 {
	h := g.landHi.Noise2D(x*landFrequency, y*landFrequency)*900 + 250

	// very low frequency zones push whole regions down to sea level
	zone := g.landLo.Noise2D(x*zoneFrequency, y*zoneFrequency)*2.0 + 0.4
	if zone > 1 {
		zone = 1
	} else if zone < 0 {
		zone = 0
	}
	h *= zone

	if h < 0 {
		h = 0
	}
	return int16(h)
}
