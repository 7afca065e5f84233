package terrainrgb

import (
	"image/color"
)

/*
	Mapbox Terrain-RGB tiles encode elevation into color values:

	    height = -10000 + ((R * 256 * 256 + G * 256 + B) * 0.1)

	Solving for the encoded integer x = R * 256 * 256 + G * 256 + B gives
	x = 10 * height + 100000. The r, g and b values are just the base 256
	digits of x.
*/

const maxX = 256*256*256 - 1

// HeightToRgb calculates rgb values from height
func HeightToRgb(height float64) color.RGBA {
	x := int64(10*height + 100000)

	// heights outside the encodable range are clamped
	if x < 0 {
		x = 0
	}
	if x > maxX {
		x = maxX
	}

	b := uint8(x % 256)
	x = x / 256

	g := uint8(x % 256)
	x = x / 256

	r := uint8(x % 256)

	return color.RGBA{
		R: r,
		G: g,
		B: b,
		A: 255,
	}
}

// RgbToHeight calculates height from given rgb values
func RgbToHeight(c color.RGBA) float64 {
	x := int64(c.R)*256*256 + int64(c.G)*256 + int64(c.B)

	return -10000.0 + float64(x)*0.1
}
