package tiles

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/gruppe-adler/hillshade-utils/internal/mbtiles"
	"github.com/nfnt/resize"
)

// buildMBTiles cuts the image into a tile pyramid and stores it in an
// MBTiles archive.
func buildMBTiles(mbTilesPath string, img *image.Gray, maxLod uint8, bounds [4]float64) error {
	archive, err := mbtiles.Create(mbTilesPath, "Hillshade Tiles", "png")
	if err != nil {
		return err
	}

	meta := [][2]string{
		{"bounds", fmt.Sprintf("%g,%g,%g,%g", bounds[0], bounds[1], bounds[2], bounds[3])},
		{"minzoom", "0"},
		{"maxzoom", fmt.Sprintf("%d", maxLod)},
	}
	if err := archive.InsertMeta(meta); err != nil {
		archive.Close()
		return err
	}

	for lod := uint8(0); lod <= maxLod; lod++ {
		if err := insertLodTiles(archive, lod, img); err != nil {
			archive.Close()
			return err
		}
	}

	return archive.Close()
}

// insertLodTiles cuts and stores all tiles of one LOD
func insertLodTiles(archive *mbtiles.Archive, lod uint8, img *image.Gray) error {
	tilesPerRowCol := int(math.Pow(2, float64(lod)))

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	tileWidth := width / tilesPerRowCol
	tileHeight := height / tilesPerRowCol

	widthRemainder := width % tilesPerRowCol
	heightRemainder := height % tilesPerRowCol

	for col := 0; col < tilesPerRowCol; col++ {
		for row := 0; row < tilesPerRowCol; row++ {
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

			tile := resize.Resize(256, 256, img.SubImage(rect), resize.MitchellNetravali)

			var buf bytes.Buffer
			if err := png.Encode(&buf, tile); err != nil {
				return err
			}

			// mbtiles counts tile rows from the south
			tmsRow := tilesPerRowCol - 1 - row
			if err := archive.InsertTile(uint32(lod), uint32(col), uint32(tmsRow), buf.Bytes()); err != nil {
				return err
			}
		}
	}

	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
