package shade

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path"
	"runtime"
	"sync"
	"time"

	"github.com/gruppe-adler/hillshade-utils/internal/hgt"
	"github.com/gruppe-adler/hillshade-utils/internal/hillshade"
	"github.com/gruppe-adler/hillshade-utils/internal/utils"
	"github.com/gruppe-adler/hillshade-utils/internal/validate"
	"golang.org/x/sync/semaphore"
)

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet) {

	var timer time.Time
	start := time.Now()

	outputPtr := flagSet.String("out", "", "Path to output directory")
	inputPtr := flagSet.String("in", "", "Path to a .hgt tile or a directory of .hgt tiles")
	anglePtr := flagSet.Float64("angle", hillshade.DefaultHeightAngle, "Height angle of the light source in degrees (0..90)")
	paddingPtr := flagSet.Int("padding", 0, "Padding pixels around each shaded tile")

	flagSet.Parse(os.Args[2:])

	// make sure both flags are present
	if *outputPtr == "" || *inputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	if *paddingPtr < 0 {
		log.Fatal(errors.New("padding must not be negative"))
	}

	// make sure given output directory is a valid directory
	if !utils.IsDirectory(*outputPtr) {
		log.Fatal(errors.New("Output directory doesn't exists"))
	}

	// collect input tiles
	var filePaths []string
	if utils.IsFile(*inputPtr) {
		filePaths = []string{*inputPtr}
	} else {
		if err := validate.HgtDirectory(*inputPtr); err != nil {
			log.Fatal(err)
		}

		var err error
		filePaths, err = hgt.ListFiles(*inputPtr)
		if err != nil {
			log.Fatal(err)
		}
	}
	fmt.Printf("ℹ️  Found %d tiles\n", len(filePaths))

	algorithm := hillshade.New(*anglePtr)
	cov := newCoverage(*anglePtr)
	shaded := 0

	timer = time.Now()
	fmt.Println("▶️  Shading tiles")

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
				fmt.Printf("⚠️  Skipping %s: %s\n", filePath, err)
				return
			}

			axisLength := hillshade.AxisLength(tile.Size())
			if axisLength == 0 {
				fmt.Printf("⚠️  Skipping %s: no square sample grid\n", filePath)
				return
			}

			raster, err := algorithm.Shade(tile, *paddingPtr)
			if err != nil {
				fmt.Printf("⚠️  Skipping %s: %s\n", filePath, err)
				return
			}

			outPath := path.Join(*outputPtr, tile.Name.Stem()+".png")
			if err := savePNG(outPath, utils.RasterImage(raster)); err != nil {
				fmt.Printf("⚠️  Failed to write %s: %s\n", outPath, err)
				return
			}

			mux.Lock()
			cov.add(tile.Name, axisLength)
			shaded++
			mux.Unlock()
		}(filePath)
	}

	wg.Wait()
	fmt.Printf("✔️  Shaded %d of %d tiles in %s\n", shaded, len(filePaths), time.Now().Sub(timer).String())

	// write coverage.geojson
	timer = time.Now()
	fmt.Println("▶️  Creating coverage.geojson")
	if err := cov.write(path.Join(*outputPtr, "coverage.geojson")); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Created coverage.geojson in", time.Now().Sub(timer).String())

	// write shade.json
	timer = time.Now()
	fmt.Println("▶️  Creating shade.json")
	if err := writeShadeJSON(*outputPtr, *anglePtr, *paddingPtr, shaded); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Created shade.json in", time.Now().Sub(timer).String())

	fmt.Printf("\n    🎉  Finished in %s\n", time.Now().Sub(start).String())
}

func savePNG(filePath string, img image.Image) error {
	f, err := os.Create(filePath)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// writeShadeJSON writes the shading parameters into the outputDirectory
func writeShadeJSON(outputDirectory string, angle float64, padding, tiles int) error {
	f, err := os.Create(path.Join(outputDirectory, "shade.json"))
	if err != nil {
		return err
	}

	_, err = f.WriteString(fmt.Sprintf("{ \"heightAngle\": %g, \"padding\": %d, \"tiles\": %d }", angle, padding, tiles))
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
