package hgt

import (
	"github.com/paulmach/orb"
)

// MarchingSquares extracts the contour lines of the grid at the given height.
// Segments of neighbouring cells are stitched into continuous line strings.
func MarchingSquares(grid *Grid, height float64) []orb.LineString {
	lines := []orb.LineString{}

	for col := 0; col < grid.RowLen-1; col++ {
		for row := 0; row < grid.RowLen-1; row++ {
			for _, newLine := range cellLines(grid, col, row, height) {
				// find all lines which can be combined with newLine
				combinable := []int{}
				for j := 0; j < len(lines); j++ {
					if ok, _ := canCombineLines(newLine, lines[j]); ok {
						combinable = append(combinable, j)

						if len(combinable) == 2 {
							break
						}
					}
				}

				if len(combinable) == 0 {
					lines = append(lines, newLine)
					continue
				}

				combined := newLine
				for _, index := range combinable {
					_, combined = combineLines(combined, lines[index])
				}
				lines[combinable[0]] = combined

				if len(combinable) == 2 {
					// the second line was merged in, drop its slot
					last := len(lines) - 1
					lines[combinable[1]] = lines[last]
					lines[last] = nil
					lines = lines[:last]
				}
			}
		}
	}

	return lines
}

// cellLines returns the contour segments crossing the cell whose top-left
// sample is (col, row).
func cellLines(grid *Grid, col, row int, height float64) []orb.LineString {
	tl := grid.Z(col, row)
	tr := grid.Z(col+1, row)
	br := grid.Z(col+1, row+1)
	bl := grid.Z(col, row+1)

	leftX := grid.X(col)
	rightX := grid.X(col + 1)
	bottomY := grid.Y(row + 1)
	topY := grid.Y(row)

	index := 0
	if tl > height {
		index |= 8
	}
	if tr > height {
		index |= 4
	}
	if br > height {
		index |= 2
	}
	if bl > height {
		index |= 1
	}

	top := func() orb.Point {
		return orb.Point{interpolate(leftX, tl, rightX, tr, height), topY}
	}
	left := func() orb.Point {
		return orb.Point{leftX, interpolate(bottomY, bl, topY, tl, height)}
	}
	bottom := func() orb.Point {
		return orb.Point{interpolate(leftX, bl, rightX, br, height), bottomY}
	}
	right := func() orb.Point {
		return orb.Point{rightX, interpolate(bottomY, br, topY, tr, height)}
	}

	switch index {
	case 1, 14:
		return []orb.LineString{{bottom(), left()}}
	case 2, 13:
		return []orb.LineString{{right(), bottom()}}
	case 3, 12:
		return []orb.LineString{{right(), left()}}
	case 4, 11:
		return []orb.LineString{{top(), right()}}
	case 5:
		// saddle
		return []orb.LineString{{left(), top()}, {bottom(), right()}}
	case 6, 9:
		return []orb.LineString{{top(), bottom()}}
	case 7, 8:
		return []orb.LineString{{left(), top()}}
	case 10:
		// saddle
		return []orb.LineString{{left(), bottom()}, {top(), right()}}
	}

	// 0 and 15: the cell is entirely below or above the height
	return nil
}

func interpolate(c0, h0, c1, h1, height float64) float64 {
	return (c0*(h1-height) + c1*(height-h0)) / (h1 - h0)
}

// canCombineLines checks wether two lines share an endpoint (the second
// result tells whether they combine in reverse order).
func canCombineLines(l1, l2 orb.LineString) (bool, bool) {
	end1 := len(l1) - 1
	end2 := len(l2) - 1

	if l1[end1].Equal(l2[0]) {
		return true, false
	}
	if l2[end2].Equal(l1[0]) {
		return true, true
	}

	l2.Reverse()

	if l1[end1].Equal(l2[0]) {
		return true, false
	}
	if l2[end2].Equal(l1[0]) {
		return true, true
	}

	return false, false
}

// combineLines checks wether both lines can be combined and if so returns
// the combined line.
func combineLines(l1, l2 orb.LineString) (bool, orb.LineString) {
	ok, reversed := canCombineLines(l1, l2)
	if !ok {
		return false, nil
	}

	if reversed {
		return true, stitchLines(l2, l1)
	}
	return true, stitchLines(l1, l2)
}

// stitchLines appends all points of line2 except the first to line1.
func stitchLines(line1, line2 orb.LineString) orb.LineString {
	for i := 1; i < len(line2); i++ {
		line1 = append(line1, line2[i])
	}
	return line1
}
