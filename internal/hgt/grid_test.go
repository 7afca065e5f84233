package hgt

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func gridBytes(samples []int16) *bytes.Reader {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, samples)
	return bytes.NewReader(buf.Bytes())
}

func TestReadGrid(t *testing.T) {
	samples := []int16{
		10, 20, 30,
		40, Void, 60,
		Void, 80, -90,
	}

	grid, err := ReadGrid(gridBytes(samples), TileName{45, 7}, 3)
	if err != nil {
		t.Fatal(err)
	}

	want := []int16{10, 20, 30, 40, 40, 60, 60, 80, -90}
	for i, v := range want {
		if grid.Data[i] != v {
			t.Errorf("sample %d expected %d, got %d", i, v, grid.Data[i])
		}
	}
}

func TestReadGridLeadingVoid(t *testing.T) {
	samples := []int16{Void, 20, 30, 40}

	grid, err := ReadGrid(gridBytes(samples), TileName{0, 0}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if grid.Data[0] != 0 {
		t.Errorf("leading void expected 0, got %d", grid.Data[0])
	}
}

func TestReadGridTruncated(t *testing.T) {
	samples := []int16{1, 2, 3}
	if _, err := ReadGrid(gridBytes(samples), TileName{0, 0}, 2); err == nil {
		t.Error("expected an error for a truncated stream")
	}
}

func TestGridCoordinates(t *testing.T) {
	grid := &Grid{Name: TileName{45, 7}, RowLen: 3, Data: make([]int16, 9)}

	if got := grid.X(0); got != 7 {
		t.Errorf("X(0) expected 7, got %g", got)
	}
	if got := grid.X(2); got != 8 {
		t.Errorf("X(2) expected 8, got %g", got)
	}
	if got := grid.Y(0); got != 46 {
		t.Errorf("Y(0) expected 46, got %g", got)
	}
	if got := grid.Y(2); got != 45 {
		t.Errorf("Y(2) expected 45, got %g", got)
	}

	grid.Data[1*3+2] = 99
	if got := grid.Z(2, 1); got != 99 {
		t.Errorf("Z(2, 1) expected 99, got %g", got)
	}
}
