package tiles

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/gruppe-adler/hillshade-utils/internal/hgt"
	"github.com/gruppe-adler/hillshade-utils/internal/hillshade"
	"github.com/gruppe-adler/hillshade-utils/internal/utils"
)

// combineShadedImage lays all shaded tiles out on a square canvas according
// to their geographic position. It returns the canvas and the covered bounds
// as [west, south, east, north].
func combineShadedImage(shaded map[hgt.TileName]*hillshade.Raster) (*image.Gray, [4]float64, error) {
	var bounds [4]float64

	if len(shaded) == 0 {
		return nil, bounds, fmt.Errorf("no shaded tiles to combine")
	}

	axisLength := 0
	minLat, maxLat := 91, -91
	minLon, maxLon := 181, -181

	for name, raster := range shaded {
		if axisLength == 0 {
			axisLength = raster.AxisLen
		} else if raster.AxisLen != axisLength {
			return nil, bounds, fmt.Errorf("mixed tile resolutions: %d and %d", axisLength, raster.AxisLen)
		}

		if name.Lat < minLat {
			minLat = name.Lat
		}
		if name.Lat > maxLat {
			maxLat = name.Lat
		}
		if name.Lon < minLon {
			minLon = name.Lon
		}
		if name.Lon > maxLon {
			maxLon = name.Lon
		}
	}

	width := (maxLon - minLon + 1) * axisLength
	height := (maxLat - minLat + 1) * axisLength

	// square canvas so the pyramid tiles stay undistorted
	side := width
	if height > side {
		side = height
	}

	img := image.NewGray(image.Rect(0, 0, side, side))

	for name, raster := range shaded {
		x := (name.Lon - minLon) * axisLength
		y := (maxLat - name.Lat) * axisLength

		p := image.Point{x, y}
		r := image.Rectangle{p, p.Add(image.Point{axisLength, axisLength})}
		draw.Draw(img, r, utils.RasterImage(raster), image.Point{}, draw.Src)
	}

	bounds = [4]float64{
		float64(minLon),
		float64(minLat),
		float64(maxLon + 1),
		float64(maxLat + 1),
	}
	return img, bounds, nil
}
