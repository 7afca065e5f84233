package terrainrgb

import (
	"fmt"
	"image"

	"github.com/gruppe-adler/hillshade-utils/internal/hgt"
)

// combineTerrainImage encodes all grids into one Terrain-RGB image laid out
// on a square canvas according to their geographic position. It returns the
// canvas and the covered bounds as [west, south, east, north].
func combineTerrainImage(grids []*hgt.Grid) (*image.RGBA, [4]float64, error) {
	var bounds [4]float64

	if len(grids) == 0 {
		return nil, bounds, fmt.Errorf("no grids to combine")
	}

	axisLength := 0
	minLat, maxLat := 91, -91
	minLon, maxLon := 181, -181

	for _, grid := range grids {
		if axisLength == 0 {
			axisLength = grid.RowLen - 1
		} else if grid.RowLen-1 != axisLength {
			return nil, bounds, fmt.Errorf("mixed tile resolutions: %d and %d", axisLength, grid.RowLen-1)
		}

		if grid.Name.Lat < minLat {
			minLat = grid.Name.Lat
		}
		if grid.Name.Lat > maxLat {
			maxLat = grid.Name.Lat
		}
		if grid.Name.Lon < minLon {
			minLon = grid.Name.Lon
		}
		if grid.Name.Lon > maxLon {
			maxLon = grid.Name.Lon
		}
	}

	width := (maxLon - minLon + 1) * axisLength
	height := (maxLat - minLat + 1) * axisLength

	// square canvas so the pyramid tiles stay undistorted
	side := width
	if height > side {
		side = height
	}

	img := image.NewRGBA(image.Rect(0, 0, side, side))

	for _, grid := range grids {
		xOffset := (grid.Name.Lon - minLon) * axisLength
		yOffset := (maxLat - grid.Name.Lat) * axisLength

		// the last sample row / col overlaps the neighbouring tile, so we
		// leave it out
		for row := 0; row < axisLength; row++ {
			for col := 0; col < axisLength; col++ {
				img.SetRGBA(xOffset+col, yOffset+row, HeightToRgb(grid.Z(col, row)))
			}
		}
	}

	bounds = [4]float64{
		float64(minLon),
		float64(minLat),
		float64(maxLon + 1),
		float64(maxLat + 1),
	}
	return img, bounds, nil
}
