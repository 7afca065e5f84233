package preview

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path"
	"time"

	"github.com/gruppe-adler/hillshade-utils/internal/hgt"
	"github.com/gruppe-adler/hillshade-utils/internal/hillshade"
	"github.com/gruppe-adler/hillshade-utils/internal/utils"
	"github.com/nfnt/resize"
)

var sizes = []uint{128, 256, 512, 1024}

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet) {

	var timer time.Time
	start := time.Now()

	outputPtr := flagSet.String("out", "", "Path to output directory")
	inputPtr := flagSet.String("in", "", "Path to a .hgt tile")
	anglePtr := flagSet.Float64("angle", hillshade.DefaultHeightAngle, "Height angle of the light source in degrees (0..90)")

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

	if !utils.IsFile(*inputPtr) {
		log.Fatal(errors.New("Input tile doesn't exists"))
	}

	tile, err := hgt.OpenFile(*inputPtr)
	if err != nil {
		log.Fatal(err)
	}

	if hillshade.AxisLength(tile.Size()) == 0 {
		log.Fatal(fmt.Errorf("%s is no usable height tile", *inputPtr))
	}

	timer = time.Now()
	fmt.Println("▶️  Shading tile")

	raster, err := hillshade.New(*anglePtr).Shade(tile, 0)
	if err != nil {
		log.Fatal(err)
	}
	previewImage := utils.RasterImage(raster)

	fmt.Println("✔️  Shaded tile in", time.Now().Sub(timer).String())

	previewHeight := previewImage.Bounds().Dy()
	previewWidth := previewImage.Bounds().Dx()

	timer = time.Now()
	fmt.Println("▶️  Writing full size preview image")
	saveImage(path.Join(*outputPtr, "preview.png"), previewImage)

	fmt.Println("✔️  Wrote full size preview image in", time.Now().Sub(timer).String())

	for _, size := range sizes {
		timer = time.Now()
		fmt.Printf("▶️  Building x%d image\n", size)

		factor := float64(size) / float64(previewHeight)
		w := uint(float64(previewWidth) * factor)

		img := resize.Resize(w, size, previewImage, resize.MitchellNetravali)
		saveImage(path.Join(*outputPtr, fmt.Sprintf("preview_%d.png", size)), img)

		fmt.Printf("✔️  Built x%d in %s\n", size, time.Now().Sub(timer).String())
	}

	fmt.Printf("\n    🎉  Finished in %s\n", time.Now().Sub(start).String())
}

func saveImage(path string, img image.Image) {
	out, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	png.Encode(out, img)

	err = out.Close()
	if err != nil {
		log.Fatal(err)
	}
}
