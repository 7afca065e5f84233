package hgt

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// Void is the reserved sample value marking missing data in SRTM tiles.
const Void = int16(-32768)

// Grid is a fully materialized elevation tile: RowLen×RowLen samples in
// row-major order with the northernmost row first. Voids are already
// resolved while reading.
type Grid struct {
	Name   TileName
	RowLen int
	Data   []int16
}

// ReadGridFile reads a raw SRTM height file into memory.
func ReadGridFile(filePath string) (*Grid, error) {
	name, err := ParseTileName(filePath)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}

	rowLen := int(math.Ceil(math.Sqrt(float64(info.Size() / 2))))
	if rowLen < 2 || int64(rowLen)*int64(rowLen)*2 != info.Size() {
		return nil, fmt.Errorf("%s: size %d is no square sample grid", filePath, info.Size())
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadGrid(file, name, rowLen)
}

// ReadGrid reads rowLen² big-endian samples. Void samples take the value of
// the previously read sample (0 before the first valid one).
func ReadGrid(r io.Reader, name TileName, rowLen int) (*Grid, error) {
	data := make([]int16, rowLen*rowLen)

	br := bufio.NewReader(r)
	var buf [2]byte
	var last int16

	for i := range data {
		if _, err := io.ReadFull(br, buf[:]); err != nil {
			return nil, fmt.Errorf("sample stream ended at %d of %d: %w", i, len(data), err)
		}
		v := int16(binary.BigEndian.Uint16(buf[:]))
		if v == Void {
			v = last
		}
		data[i] = v
		last = v
	}

	return &Grid{Name: name, RowLen: rowLen, Data: data}, nil
}

// Z returns the elevation in meters at (col, row). Row 0 is the northernmost
// row of the tile.
func (g *Grid) Z(col, row int) float64 {
	return float64(g.Data[row*g.RowLen+col])
}

// X returns the longitude of the column at index col.
func (g *Grid) X(col int) float64 {
	return g.Name.West() + float64(col)/float64(g.RowLen-1)
}

// Y returns the latitude of the row at index row.
func (g *Grid) Y(row int) float64 {
	return g.Name.North() - float64(row)/float64(g.RowLen-1)
}
