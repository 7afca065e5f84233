package tiles

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/gruppe-adler/hillshade-utils/internal/hgt"
	"github.com/gruppe-adler/hillshade-utils/internal/hillshade"
	"github.com/gruppe-adler/hillshade-utils/internal/tilejson"
	"github.com/gruppe-adler/hillshade-utils/internal/utils"
	"github.com/gruppe-adler/hillshade-utils/internal/validate"
	"golang.org/x/sync/semaphore"
)

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet) {

	var timer time.Time
	start := time.Now()

	outputPtr := flagSet.String("out", "", "Path to output directory")
	inputPtr := flagSet.String("in", "", "Path to a directory of .hgt tiles")
	anglePtr := flagSet.Float64("angle", hillshade.DefaultHeightAngle, "Height angle of the light source in degrees (0..90)")
	mbTilesPtr := flagSet.String("mbtiles", "", "Write the tile set into an MBTiles archive at given path instead of a directory tree")

	flagSet.Parse(os.Args[2:])

	// make sure the required flags are present
	if *inputPtr == "" || (*outputPtr == "" && *mbTilesPtr == "") {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	// make sure given output directory is a valid directory
	if *mbTilesPtr == "" && !utils.IsDirectory(*outputPtr) {
		log.Fatal(errors.New("Output directory doesn't exists"))
	}

	// validate input directory structure
	if err := validate.HgtDirectory(*inputPtr); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Validated input directory")

	filePaths, err := hgt.ListFiles(*inputPtr)
	if err != nil {
		log.Fatal(err)
	}

	// shade all tiles
	timer = time.Now()
	fmt.Println("▶️  Shading tiles")
	shaded := shadeAll(filePaths, hillshade.New(*anglePtr))
	fmt.Printf("✔️  Shaded %d tiles in %s\n", len(shaded), time.Now().Sub(timer).String())

	// combine into one image
	timer = time.Now()
	fmt.Println("▶️  Combining shaded tiles")
	img, bounds, err := combineShadedImage(shaded)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Combined shaded tiles in", time.Now().Sub(timer).String())

	maxLod := utils.CalcMaxLodFromImage(img)
	fmt.Println("ℹ️  Calculated max lod:", maxLod)

	if *mbTilesPtr != "" {
		timer = time.Now()
		fmt.Println("▶️  Building tiles into MBTiles archive")
		if err := buildMBTiles(*mbTilesPtr, img, maxLod, bounds); err != nil {
			log.Fatal(err)
		}
		fmt.Println("✔️  Built MBTiles archive in", time.Now().Sub(timer).String())

		fmt.Printf("\n    🎉  Finished in %s\n", time.Now().Sub(start).String())
		return
	}

	// build tiles
	timer = time.Now()
	fmt.Println("▶️  Building tiles")
	for lod := uint8(0); lod <= maxLod; lod++ {
		lodTimer := time.Now()
		utils.BuildTileSet(lod, img, *outputPtr)
		fmt.Println("    ✔️  Finished tiles for LOD", lod, "in", time.Now().Sub(lodTimer).String())
	}
	fmt.Println("✔️  Built hillshade tiles in", time.Now().Sub(timer).String())

	// write tile.json
	timer = time.Now()
	fmt.Println("▶️  Creating tile.json")
	if err := tilejson.Write(*outputPtr, maxLod, "Hillshade Tiles", "Diffuse light hillshading tiles built from SRTM height data", bounds[:], nil); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Created tile.json in", time.Now().Sub(timer).String())

	fmt.Printf("\n    🎉  Finished in %s\n", time.Now().Sub(start).String())
}

// shadeAll shades all given tiles in parallel
func shadeAll(filePaths []string, algorithm *hillshade.DiffuseLight) map[hgt.TileName]*hillshade.Raster {
	shaded := make(map[hgt.TileName]*hillshade.Raster)

	var mux sync.Mutex
	var wg sync.WaitGroup
	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))

	for _, filePath := range filePaths {
		wg.Add(1)
		go func(filePath string) {
			defer wg.Done()
			sem.Acquire(context.Background(), 1)
			defer sem.Release(1)

			tile, err := hgt.OpenFile(filePath)
			if err != nil {
				log.Fatal(err)
			}

			raster, err := algorithm.Shade(tile, 0)
			if err != nil {
				log.Fatal(err)
			}

			mux.Lock()
			shaded[tile.Name] = raster
			mux.Unlock()
		}(filePath)
	}

	wg.Wait()
	return shaded
}
