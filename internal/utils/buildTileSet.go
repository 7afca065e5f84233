package utils

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"math"
	"os"
	"path"
	"runtime"
	"sync"

	"github.com/nfnt/resize"
	"golang.org/x/sync/semaphore"
)

// SubImager is an image which can crop itself. All stdlib image types
// implement it.
type SubImager interface {
	image.Image
	SubImage(r image.Rectangle) image.Image
}

// BuildTileSet builds tiles for given LOD from given image into outputDirectory
func BuildTileSet(lod uint8, img SubImager, outputDirectory string) {
	outputDirectory = path.Join(outputDirectory, fmt.Sprintf("%d", lod))

	tilesPerRowCol := int(math.Pow(2, float64(lod)))

	// make col directories
	wg := sync.WaitGroup{}
	for col := 0; col < tilesPerRowCol; col++ {
		wg.Add(1)
		go func(col int) {
			defer wg.Done()
			dirPath := path.Join(outputDirectory, fmt.Sprintf("%d", col))
			if !IsDirectory(dirPath) {
				err := os.MkdirAll(dirPath, os.ModePerm)
				if err != nil {
					log.Fatal(err)
				}
			}
		}(col)
	}
	wg.Wait()

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	tileWidth := width / tilesPerRowCol
	tileHeight := height / tilesPerRowCol

	// remaining pixels are distributed over the first cols / rows
	widthRemainder := width % tilesPerRowCol
	heightRemainder := height % tilesPerRowCol

	wg2 := sync.WaitGroup{}

	for col := 0; col < tilesPerRowCol; col++ {
		for row := 0; row < tilesPerRowCol; row++ {
			wg2.Add(1)
			go func(col int, row int) {
				defer wg2.Done()
				tilePath := path.Join(outputDirectory, fmt.Sprintf("%d", col), fmt.Sprintf("%d.png", row))

				x := tileWidth*col + minInt(col, widthRemainder)
				y := tileHeight*row + minInt(row, heightRemainder)
				w := tileWidth
				h := tileHeight

				if col < widthRemainder {
					w++
				}
				if row < heightRemainder {
					h++
				}

				p := image.Point{x, y}
				rect := image.Rectangle{p, p.Add(image.Point{w, h})}
				createTile(img, rect, tilePath)
			}(col, row)
		}
	}

	wg2.Wait()
}

var sem = semaphore.NewWeighted(int64(runtime.NumCPU()))

func createTile(img SubImager, rect image.Rectangle, tilePath string) {
	sem.Acquire(context.Background(), 1)
	defer sem.Release(1)

	subImg := img.SubImage(rect)

	tile := resize.Resize(tileSizeInPx, tileSizeInPx, subImg, resize.MitchellNetravali)

	out, err := os.Create(tilePath)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := png.Encode(out, tile); err != nil {
		fmt.Println(err)
	}

	if err := out.Close(); err != nil {
		fmt.Println(err)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
