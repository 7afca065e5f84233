package contours

import (
	"context"
	"fmt"
	"math"
	"os"
	"path"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/maptile"
	"github.com/paulmach/orb/project"
	"github.com/paulmach/orb/simplify"

	"github.com/gruppe-adler/hillshade-utils/internal/coords"
	"github.com/gruppe-adler/hillshade-utils/internal/utils"
)

const tileSize = mvt.DefaultExtent

// buildVectorTiles writes gzipped vector tiles covering the given
// [west, south, east, north] bounds for every zoom level up to maxZoom into
// outputPath/{z}/{x}/{y}.pbf.
func buildVectorTiles(outputPath string, collectionsPtr *map[string]*geojson.FeatureCollection, maxZoom uint8, bounds [4]float64, layerSettings *[]layerSetting) {

	for zoom := uint8(0); zoom <= maxZoom; zoom++ {
		zoomDir := path.Join(outputPath, fmt.Sprintf("%d", zoom))
		start := time.Now()

		// create zoom directory
		if !utils.IsDirectory(zoomDir) {
			err := os.MkdirAll(zoomDir, os.ModePerm)
			if err != nil {
				fmt.Println(err)
				return
			}
		}

		buildZoomVectorTiles(zoom, zoomDir, collectionsPtr, bounds, layerSettings)

		fmt.Println("    ✔️  Finished tiles for zoom", zoom, "in", time.Now().Sub(start).String())
	}
}

func buildZoomVectorTiles(zoom uint8, zoomDir string, collectionsPtr *map[string]*geojson.FeatureCollection, bounds [4]float64, layerSettings *[]layerSetting) {
	layers := findZoomLayers(collectionsPtr, layerSettings, uint16(zoom))

	// project features to pixels
	pixels := float64(uint64(tileSize) << zoom) // how many pixels one row / col of the world has
	projectLayersInPlace(layers, func(p orb.Point) orb.Point {
		return orb.Point{
			coords.MercatorX(p[0]) * pixels,
			coords.MercatorY(p[1]) * pixels,
		}
	})

	// set layer version to v2
	for _, l := range layers {
		l.Version = 2
	}

	// simplify
	layers.Simplify(simplify.DouglasPeucker(1.0))
	layers.RemoveEmpty(10.0, 20.0)

	// we only build tiles which intersect the bounds
	minTile, maxTile := tileRange(bounds, zoom)

	colWaitGrp := sync.WaitGroup{}

	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))

	for col := minTile.X; col <= maxTile.X; col++ {
		colWaitGrp.Add(1)
		go func(col uint32) {
			defer colWaitGrp.Done()
			// create column directory
			colPath := path.Join(zoomDir, fmt.Sprintf("%d", col))
			if !utils.IsDirectory(colPath) {
				err := os.MkdirAll(colPath, os.ModePerm)
				if err != nil {
					fmt.Println(err)
					return
				}
			}

			rowWaitGrp := sync.WaitGroup{}

			for row := minTile.Y; row <= maxTile.Y; row++ {
				rowWaitGrp.Add(1)
				go func(row uint32) {
					defer rowWaitGrp.Done()

					sem.Acquire(context.Background(), 1)
					defer sem.Release(1)

					data, err := createTile(col, row, layers)
					if err != nil {
						fmt.Printf("Error while creating tile %d/%d/%d\n", zoom, col, row)
						return
					}

					tilePath := path.Join(colPath, fmt.Sprintf("%d.pbf", row))
					writeTile(tilePath, data)

				}(row)
			}

			rowWaitGrp.Wait()
		}(col)
	}

	colWaitGrp.Wait()
}

// tileRange returns the most north-western and the most south-eastern tile
// still covering the given [west, south, east, north] bounds.
func tileRange(bounds [4]float64, zoom uint8) (maptile.Tile, maptile.Tile) {
	north := math.Min(bounds[3], coords.MaxLatitude)
	south := math.Max(bounds[1], coords.MinLatitude)

	min := maptile.At(orb.Point{bounds[0], north}, maptile.Zoom(zoom))
	max := maptile.At(orb.Point{bounds[2], south}, maptile.Zoom(zoom))

	// bounds touching the east / south edge of the world map to tiles one
	// past the last one
	last := uint32(1)<<zoom - 1
	if max.X > last {
		max.X = last
	}
	if max.Y > last {
		max.Y = last
	}

	return min, max
}

// findZoomLayers returns a mvt.Layers object which includes all layers valid
// for given zoom level
func findZoomLayers(allCollections *map[string]*geojson.FeatureCollection, settingsPtr *[]layerSetting, zoom uint16) mvt.Layers {

	zoomCollections := make(map[string]*geojson.FeatureCollection)

	for layerName, fc := range *allCollections {

		// find layer settings for layerName
		settings := layerSetting{Layer: layerName, MinZoom: nil, MaxZoom: nil}
		for _, setting := range *settingsPtr {
			if setting.Layer == layerName {
				settings = setting
				break
			}
		}

		if settings.MinZoom != nil && *settings.MinZoom > zoom {
			continue
		}
		if settings.MaxZoom != nil && *settings.MaxZoom < zoom {
			continue
		}

		zoomCollections[layerName] = utils.DeepCloneFeatureCollection(fc)
	}

	return mvt.NewLayers(zoomCollections)
}

func createTile(x uint32, y uint32, layers mvt.Layers) ([]byte, error) {
	layersClone := utils.DeepCloneLayers(layers)

	xOffset := float64(x * tileSize)
	yOffset := float64(y * tileSize)
	projectLayersInPlace(layersClone, func(p orb.Point) orb.Point {
		return orb.Point{
			p[0] - xOffset,
			p[1] - yOffset,
		}
	})

	layersClone.Clip(mvt.MapboxGLDefaultExtentBound)
	// Clip keeps features which were clipped down to nothing, so we'll have
	// to remove those ourselves
	layersClone.RemoveEmpty(0, 0)

	// marshal tile
	data, err := mvt.MarshalGzipped(layersClone)
	if err != nil {
		return []byte{}, err
	}

	return data, nil
}

func writeTile(tilePath string, data []byte) error {
	f, err := os.Create(tilePath)
	if err != nil {
		return err
	}

	_, err = f.Write(data)
	if err != nil {
		return err
	}

	err = f.Close()
	if err != nil {
		return err
	}

	return nil
}

// projectLayersInPlace projects all features of a layer
func projectLayersInPlace(layers mvt.Layers, projection orb.Projection) {
	for _, layer := range layers {
		for _, feature := range layer.Features {
			feature.Geometry = project.Geometry(feature.Geometry, projection)
		}
	}
}
