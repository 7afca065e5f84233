package terrainrgb

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gruppe-adler/hillshade-utils/internal/tilejson"
	"github.com/gruppe-adler/hillshade-utils/internal/utils"
	"github.com/gruppe-adler/hillshade-utils/internal/validate"
)

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet) {

	var timer time.Time
	start := time.Now()

	outputPtr := flagSet.String("out", "", "Path to output directory")
	inputPtr := flagSet.String("in", "", "Path to a directory of .hgt tiles")

	flagSet.Parse(os.Args[2:])

	// make sure both flags are present
	if *outputPtr == "" || *inputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
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

	// load height tiles
	timer = time.Now()
	fmt.Println("▶️  Loading height tiles")
	grids := loadGrids(*inputPtr)
	fmt.Printf("✔️  Loaded %d height tiles in %s\n", len(grids), time.Now().Sub(timer).String())

	// calculate image
	timer = time.Now()
	fmt.Println("▶️  Calculating Terrain-RGB image")
	img, bounds, err := combineTerrainImage(grids)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Calculated image in", time.Now().Sub(timer).String())

	// calculate max LOD
	maxLod := utils.CalcMaxLodFromImage(img)
	fmt.Println("ℹ️  Calculated max lod:", maxLod)

	// build tiles
	timer = time.Now()
	fmt.Println("▶️  Building tiles")
	for lod := uint8(0); lod <= maxLod; lod++ {
		lodTimer := time.Now()
		utils.BuildTileSet(lod, img, *outputPtr)
		fmt.Println("    ✔️  Finished tiles for LOD", lod, "in", time.Now().Sub(lodTimer).String())
	}
	fmt.Println("✔️  Built Terrain-RGB tiles in", time.Now().Sub(timer).String())

	// write tile.json
	timer = time.Now()
	fmt.Println("▶️  Creating tile.json")
	if err := tilejson.Write(*outputPtr, maxLod, "Terrain-RGB Tiles", "Mapbox Terrain-RGB tiles built from SRTM height data", bounds[:], nil); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Created tile.json in", time.Now().Sub(timer).String())

	fmt.Printf("\n    🎉  Finished in %s\n", time.Now().Sub(start).String())
}
