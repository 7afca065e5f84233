package utils

import (
	"image"
	"math"
)

const tileSizeInPx = 256

// CalcMaxLodFromImage calculates the maximum LOD based on the width of the
// combined image
func CalcMaxLodFromImage(img image.Image) uint8 {
	w := float64(img.Bounds().Dx())

	tilesPerRowCol := math.Ceil(w / tileSizeInPx)

	return uint8(math.Ceil(math.Log2(tilesPerRowCol)))
}
