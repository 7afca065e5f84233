package contours

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gruppe-adler/hillshade-utils/internal/hgt"
	"github.com/gruppe-adler/hillshade-utils/internal/tilejson"
	"github.com/gruppe-adler/hillshade-utils/internal/utils"
	"github.com/gruppe-adler/hillshade-utils/internal/validate"
	"github.com/paulmach/orb/geojson"
	"golang.org/x/sync/semaphore"
)

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet) {

	collections := make(map[string]*geojson.FeatureCollection)
	var timer time.Time
	start := time.Now()

	outputPtr := flagSet.String("out", "", "Path to output directory")
	inputPtr := flagSet.String("in", "", "Path to a directory of .hgt tiles")
	maxZoomPtr := flagSet.Uint("maxzoom", 11, "Highest zoom level to build tiles for (0-14)")
	layerSettingsPtr := flagSet.String("layer_settings", "", "Path to layer_settings.json file")

	flagSet.Parse(os.Args[2:])

	// make sure both flags are present
	if *outputPtr == "" || *inputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	if *maxZoomPtr > 14 {
		log.Fatal(errors.New("maxzoom must be between 0 and 14"))
	}

	// make sure layerSettings is either "" or a valid file
	if *layerSettingsPtr != "" && !utils.IsFile(*layerSettingsPtr) {
		log.Fatal(errors.New("LayerSettings is not a valid file"))
	}

	// make sure given output directory is a valid directory
	if !utils.IsDirectory(*outputPtr) {
		log.Fatal(errors.New("Output directory doesn't exists"))
	}

	// validate input directory structure
	if err := validate.HgtDirectory(*inputPtr); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Validated input directory")

	// load layerSettings
	layerSettings := loadLayerSettings(*layerSettingsPtr)

	// load height tiles
	timer = time.Now()
	fmt.Println("▶️  Loading height tiles")
	grids := loadGrids(*inputPtr)
	fmt.Printf("✔️  Loaded %d height tiles in %s\n", len(grids), time.Now().Sub(timer).String())

	bounds := gridBounds(grids)

	// contour lines
	timer = time.Now()
	fmt.Println("▶️  Building contour lines")
	buildContours(grids, &collections)
	fmt.Println("✔️  Built contour lines in", time.Now().Sub(timer).String())

	// peaks
	timer = time.Now()
	fmt.Println("▶️  Building peaks")
	buildPeaks(grids, &collections)
	fmt.Println("✔️  Built peaks in", time.Now().Sub(timer).String())

	// print built layers
	fmt.Printf("ℹ️  Built the following layers (%d): ", len(collections))
	layerNames := make([]string, 0, len(collections))
	for layerName := range collections {
		layerNames = append(layerNames, layerName)
	}
	sort.Strings(layerNames)
	fmt.Printf("%s\n", strings.Join(layerNames, ", "))

	maxZoom := uint8(*maxZoomPtr)

	// build mvts
	timer = time.Now()
	fmt.Println("▶️  Building mapbox vector tiles")
	buildVectorTiles(*outputPtr, &collections, maxZoom, bounds, &layerSettings)
	fmt.Println("✔️  Built mapbox vector tiles in", time.Now().Sub(timer).String())

	// write tile.json
	timer = time.Now()
	fmt.Println("▶️  Creating tile.json")
	if err := tilejson.Write(*outputPtr, maxZoom, "Contour Tiles", "Contour line and peak tiles built from SRTM height data", bounds[:], layerNames); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Created tile.json in", time.Now().Sub(timer).String())

	fmt.Printf("\n    🎉  Finished in %s\n", time.Now().Sub(start).String())
}

// loadGrids reads all height tiles of the directory into memory in parallel.
func loadGrids(inputPath string) []*hgt.Grid {
	filePaths, err := hgt.ListFiles(inputPath)
	if err != nil {
		log.Fatal(err)
	}

	grids := make([]*hgt.Grid, len(filePaths))

	waitGrp := sync.WaitGroup{}
	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))

	for i, filePath := range filePaths {
		waitGrp.Add(1)
		go func(i int, filePath string) {
			defer waitGrp.Done()

			sem.Acquire(context.Background(), 1)
			defer sem.Release(1)

			grid, err := hgt.ReadGridFile(filePath)
			if err != nil {
				log.Fatal(err)
			}

			grids[i] = grid
		}(i, filePath)
	}

	waitGrp.Wait()
	return grids
}

// gridBounds returns the [west, south, east, north] extent over all grids.
func gridBounds(grids []*hgt.Grid) [4]float64 {
	minLat, maxLat := 91, -91
	minLon, maxLon := 181, -181

	for _, grid := range grids {
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

	return [4]float64{
		float64(minLon),
		float64(minLat),
		float64(maxLon + 1),
		float64(maxLat + 1),
	}
}
