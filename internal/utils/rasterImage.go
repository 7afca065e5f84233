package utils

import (
	"image"

	"github.com/gruppe-adler/hillshade-utils/internal/hillshade"
)

// RasterImage converts a shaded raster into a grayscale image. Padding cells
// come out black.
func RasterImage(r *hillshade.Raster) *image.Gray {
	side := r.Stride()

	img := image.NewGray(image.Rect(0, 0, side, side))
	copy(img.Pix, r.Pix)

	return img
}
