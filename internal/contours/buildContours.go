package contours

import (
	"context"
	"runtime"
	"sync"

	"github.com/gruppe-adler/hillshade-utils/internal/hgt"
	"github.com/paulmach/orb/geojson"
	"golang.org/x/sync/semaphore"
)

// contourIntervals maps each contour layer to its height interval in meters.
var contourIntervals = map[string]int{
	"contours/10":  10,
	"contours/50":  50,
	"contours/100": 100,
}

// smallest of the contourIntervals, every contour height is a multiple of it
const baseInterval = 10

// buildContours extracts the contour line layers from all grids.
func buildContours(grids []*hgt.Grid, layers *map[string]*geojson.FeatureCollection) {
	collections := make(map[string]*geojson.FeatureCollection)
	for layerName := range contourIntervals {
		collections[layerName] = geojson.NewFeatureCollection()
	}

	min, max := elevationRange(grids)
	start := (min/baseInterval)*baseInterval - baseInterval

	mux := sync.Mutex{}
	waitGrp := sync.WaitGroup{}
	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))

	for height := start; height < max; height += baseInterval {
		waitGrp.Add(1)
		go func(height int) {
			defer waitGrp.Done()

			sem.Acquire(context.Background(), 1)
			defer sem.Release(1)

			features := []*geojson.Feature{}
			for _, grid := range grids {
				for _, line := range hgt.MarchingSquares(grid, float64(height)) {
					f := geojson.NewFeature(line)
					f.Properties["elevation"] = height
					features = append(features, f)
				}
			}

			// add features to all feature collections matching their height
			mux.Lock()
			for layerName, interval := range contourIntervals {
				if height%interval != 0 {
					continue
				}

				for _, f := range features {
					collections[layerName].Append(f)
				}
			}
			mux.Unlock()
		}(height)
	}

	waitGrp.Wait()

	for layerName, fc := range collections {
		(*layers)[layerName] = fc
	}
}

// elevationRange returns the lowest and highest sample over all grids.
func elevationRange(grids []*hgt.Grid) (int, int) {
	min, max := 0, 0

	for _, grid := range grids {
		for _, sample := range grid.Data {
			v := int(sample)

			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}

	return min, max
}
