package contours

import (
	"fmt"
	"sort"

	"github.com/gruppe-adler/hillshade-utils/internal/hgt"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// buildPeaks collects all local maxima of all grids into a point layer.
func buildPeaks(grids []*hgt.Grid, layers *map[string]*geojson.FeatureCollection) {
	peaks := geojson.NewFeatureCollection()

	for _, grid := range grids {
		collectPeaks(grid, peaks)
	}

	// sort peaks by elevation, lowest first
	sort.Slice(peaks.Features, func(i, j int) bool {
		return peaks.Features[i].Properties["elevation"].(float64) < peaks.Features[j].Properties["elevation"].(float64)
	})

	(*layers)["peaks"] = peaks
}

// collectPeaks appends a feature for every cell of the grid which is higher
// than all of its direct neighbours.
func collectPeaks(grid *hgt.Grid, peaks *geojson.FeatureCollection) {

	// for all cells (except edges)
	for row := 1; row < grid.RowLen-1; row++ {
		for col := 1; col < grid.RowLen-1; col++ {
			elevation := grid.Z(col, row)

			// we'll only create peaks, which are above the water level
			if elevation <= 0 {
				continue
			}

			hasHigherNeighbours := false
			hasLowerNeighbours := false

			// compare cell with all direct neighbours
			for compareRow := row - 1; compareRow <= row+1; compareRow++ {
				// no peak, if we have lower and higher neighbours -> break
				if hasHigherNeighbours && hasLowerNeighbours {
					break
				}
				for compareCol := col - 1; compareCol <= col+1; compareCol++ {
					// no peak, if we have lower and higher neighbours -> break
					if hasHigherNeighbours && hasLowerNeighbours {
						break
					}

					// we don't want to compare to the reference cell
					if row == compareRow && col == compareCol {
						continue
					}

					compareElev := grid.Z(compareCol, compareRow)

					// we'll count same elevation as both a high and low neighbour because we
					// don't want to generate a peak for cells that are in the middle of a plateau
					if compareElev == elevation {
						hasHigherNeighbours = true
						hasLowerNeighbours = true
						break
					}

					hasHigherNeighbours = hasHigherNeighbours || compareElev > elevation
					hasLowerNeighbours = hasLowerNeighbours || compareElev < elevation
				}
			}

			// add peak if all neighbours are lower
			if hasLowerNeighbours && !hasHigherNeighbours {
				feature := geojson.NewFeature(orb.Point{grid.X(col), grid.Y(row)})
				feature.Properties["elevation"] = elevation
				feature.Properties["text"] = fmt.Sprintf("%.0f", elevation)

				peaks.Append(feature)
			}
		}
	}
}
