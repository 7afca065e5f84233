package hillshade

import (
	"fmt"
	"io"
	"math"

	"github.com/gruppe-adler/hillshade-utils/internal/coords"
)

// Tile describes one elevation tile. Implementations own the backing
// resource; Shade only borrows a fresh sample stream for one scan.
type Tile interface {
	// Size returns the tile's byte size.
	Size() int64
	// SouthLat returns the latitude of the tile's southern edge in degrees.
	SouthLat() float64
	// NorthLat returns the latitude of the tile's northern edge in degrees.
	NorthLat() float64
	// Open opens a stream of big-endian int16 elevation samples.
	Open() (io.ReadCloser, error)
}

// Raster is a finished shaded tile. Pix holds one byte per pixel in
// row-major order: 0 is minimum light, 127 flat ground and 255 maximum
// light. The padding border is left zeroed; filling it from adjoining tiles
// is up to the caller.
type Raster struct {
	Pix     []byte
	AxisLen int
	Padding int
}

// Stride returns the width of the padded pixel buffer.
func (r *Raster) Stride() int { return r.AxisLen + 2*r.Padding }

// At returns the shade at (row, col) of the unpadded raster.
func (r *Raster) At(row, col int) byte {
	return r.Pix[(r.Padding+row)*r.Stride()+r.Padding+col]
}

// AxisLength derives the per-side pixel count of a square elevation tile
// from its byte size. It returns 0 if the size encodes no usable square
// sample grid.
func AxisLength(size int64) int {
	elements := size / 2
	rowLen := int(math.Ceil(math.Sqrt(float64(elements))))

	if rowLen == 0 || int64(rowLen)*int64(rowLen)*2 != size {
		return 0
	}
	return rowLen - 1
}

// groundScale maps one tile axis onto the hypothetical world map size used
// for the per-pixel ground resolution estimate.
const groundScale = 170

// Shade scans the tile's elevation samples into a shaded raster with the
// given padding. The returned raster is always complete: if the stream
// fails mid-scan no raster is returned at all.
func (d *DiffuseLight) Shade(tile Tile, padding int) (*Raster, error) {
	axisLen := AxisLength(tile.Size())
	if axisLen == 0 {
		return nil, fmt.Errorf("tile size %d is no square sample grid", tile.Size())
	}

	in, err := tile.Open()
	if err != nil {
		return nil, err
	}
	defer in.Close()

	pix, err := d.scan(in, axisLen, padding, tile.SouthLat(), tile.NorthLat())
	if err != nil {
		return nil, err
	}

	return &Raster{Pix: pix, AxisLen: axisLen, Padding: padding}, nil
}

// scan streams rowLen² samples through a circular row buffer, visiting each
// sample exactly once, and shades the axisLen² inner pixels.
func (d *DiffuseLight) scan(in io.Reader, axisLen, padding int, southLat, northLat float64) ([]byte, error) {
	rowLen := axisLen + 1
	ring := make([]int16, rowLen)
	pix := make([]byte, (axisLen+2*padding)*(axisLen+2*padding))

	rd := newSampleReader(in)

	// first row: a void takes the previous sample in read order
	cur := 0
	var last int16
	for col := 0; col < rowLen; col++ {
		v, ok, err := rd.next()
		if err != nil {
			return nil, err
		}
		if ok {
			last = v
		}
		ring[cur] = last
		cur++
	}

	southPerLine := coords.GroundResolution(southLat, float64(axisLen*groundScale)) / float64(2*axisLen)
	northPerLine := coords.GroundResolution(northLat, float64(axisLen*groundScale)) / float64(2*axisLen)

	out := (axisLen+2*padding)*padding + padding
	for line := 1; line <= axisLen; line++ {
		if cur >= rowLen {
			cur = 0
		}

		nw := ring[cur]
		sw, ok, err := rd.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			// a void inherits its northern neighbour
			sw = nw
		}
		ring[cur] = sw
		cur++

		// meters per half pixel, interpolated between the tile edges
		halfMeters := southPerLine*float64(line) + northPerLine*float64(axisLen-line)

		for col := 1; col <= axisLen; col++ {
			ne := ring[cur]
			se, ok, err := rd.next()
			if err != nil {
				return nil, err
			}
			if !ok {
				se = ne
			}
			ring[cur] = se
			cur++

			noso := -((int(se) - int(ne)) + (int(sw) - int(nw)))
			eawe := -((int(ne) - int(nw)) + (int(se) - int(sw)))

			shade := d.intensity(float64(noso)/halfMeters, float64(eawe)/halfMeters) + 127
			if shade < 0 {
				shade = 0
			} else if shade > 255 {
				shade = 255
			}
			pix[out] = byte(shade)
			out++

			nw = ne
			sw = se
		}

		out += 2 * padding
	}

	return pix, nil
}
