// seehuhn.de/go/cells - shared cell buffers and line rasterisation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"errors"
	"math"
	"testing"
)

// testCanvas records all cell updates and fails the test on any write
// outside its bounds, since DrawLine promises to pass only in-bounds
// coordinates.
type testCanvas struct {
	t    *testing.T
	w, h int
	hits map[[2]int]int // accumulated amount per cell
}

func newTestCanvas(t *testing.T, w, h int) *testCanvas {
	return &testCanvas{t: t, w: w, h: h, hits: make(map[[2]int]int)}
}

func (c *testCanvas) Width() int  { return c.w }
func (c *testCanvas) Height() int { return c.h }

func (c *testCanvas) AddAt(x, y int, amount int) {
	c.t.Helper()
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		c.t.Fatalf("AddAt(%d,%d) outside %dx%d canvas", x, y, c.w, c.h)
	}
	c.hits[[2]int{x, y}] += amount
}

func (c *testCanvas) AddRect(minX, minY, maxX, maxY int, amount int) {
	c.t.Helper()
	if minX < 0 || maxX >= c.w || minY < 0 || maxY >= c.h ||
		minX > maxX || minY > maxY {
		c.t.Fatalf("AddRect(%d,%d,%d,%d) invalid for %dx%d canvas",
			minX, minY, maxX, maxY, c.w, c.h)
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			c.hits[[2]int{x, y}] += amount
		}
	}
}

// columns returns the set of x values of all touched cells.
func (c *testCanvas) columns() map[int]bool {
	cols := make(map[int]bool)
	for cell := range c.hits {
		cols[cell[0]] = true
	}
	return cols
}

// rows returns the set of y values of all touched cells.
func (c *testCanvas) rows() map[int]bool {
	rows := make(map[int]bool)
	for cell := range c.hits {
		rows[cell[1]] = true
	}
	return rows
}

func TestVerticalLine(t *testing.T) {
	c := newTestCanvas(t, 10, 10)
	DrawLine(c, 0, 0, 0, 9, 1)

	if len(c.hits) != 10 {
		t.Fatalf("%d cells touched, want 10", len(c.hits))
	}
	for y := 0; y < 10; y++ {
		if got := c.hits[[2]int{0, y}]; got != 1 {
			t.Errorf("cell (0,%d) = %d, want 1", y, got)
		}
	}
}

func TestVerticalLineReversed(t *testing.T) {
	c := newTestCanvas(t, 10, 10)
	DrawLine(c, 3, 8, 3, 2, 2)

	if len(c.hits) != 7 {
		t.Fatalf("%d cells touched, want 7", len(c.hits))
	}
	for y := 2; y <= 8; y++ {
		if got := c.hits[[2]int{3, y}]; got != 2 {
			t.Errorf("cell (3,%d) = %d, want 2", y, got)
		}
	}
}

func TestVerticalLineClipped(t *testing.T) {
	c := newTestCanvas(t, 10, 10)
	DrawLine(c, 4, 6, 4, 99, 1)

	if len(c.hits) != 4 {
		t.Fatalf("%d cells touched, want 4", len(c.hits))
	}
	for y := 6; y <= 9; y++ {
		if c.hits[[2]int{4, y}] != 1 {
			t.Errorf("cell (4,%d) not touched", y)
		}
	}
}

func TestHorizontalLine(t *testing.T) {
	c := newTestCanvas(t, 10, 10)
	DrawLine(c, 7, 5, 1, 5, 3)

	if len(c.hits) != 7 {
		t.Fatalf("%d cells touched, want 7", len(c.hits))
	}
	for x := 1; x <= 7; x++ {
		if got := c.hits[[2]int{x, 5}]; got != 3 {
			t.Errorf("cell (%d,5) = %d, want 3", x, got)
		}
	}
}

func TestHorizontalLineClipped(t *testing.T) {
	c := newTestCanvas(t, 10, 10)
	DrawLine(c, 2, 0, 1000, 0, 1)
	for x := 2; x <= 9; x++ {
		if c.hits[[2]int{x, 0}] != 1 {
			t.Errorf("cell (%d,0) not touched", x)
		}
	}
	if len(c.hits) != 8 {
		t.Errorf("%d cells touched, want 8", len(c.hits))
	}
}

func TestSingleCell(t *testing.T) {
	c := newTestCanvas(t, 10, 10)
	DrawLine(c, 4, 4, 4, 4, 5)
	if len(c.hits) != 1 || c.hits[[2]int{4, 4}] != 5 {
		t.Errorf("hits = %v, want single cell (4,4) = 5", c.hits)
	}
}

func TestTrivialReject(t *testing.T) {
	cases := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"right", 10, 0, 15, 9},
		{"below", 0, 10, 9, 15},
		{"far", 100, 100, 200, 200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCanvas(t, 10, 10)
			DrawLine(c, tc.x1, tc.y1, tc.x2, tc.y2, 1)
			if len(c.hits) != 0 {
				t.Errorf("%d cells touched, want 0", len(c.hits))
			}
		})
	}
}

func TestNegativeCoordinatePanics(t *testing.T) {
	c := newTestCanvas(t, 10, 10)
	defer func() {
		val := recover()
		var ce *CoordError
		if err, ok := val.(error); !ok || !errors.As(err, &ce) {
			t.Fatalf("panic value %v, want *CoordError", val)
		}
	}()
	DrawLine(c, 0, 0, 5, -1, 1)
	t.Fatal("expected panic")
}

// A line leaving the canvas on both axes must be clipped to the bounds;
// the testCanvas traps any out-of-bounds write.
func TestDiagonalClipped(t *testing.T) {
	c := newTestCanvas(t, 10, 10)
	DrawLine(c, 0, 0, 20, 30, 1)

	if c.hits[[2]int{0, 0}] == 0 {
		t.Error("origin not touched")
	}
	// slope is 3/2, so the segment leaves the canvas after column 6
	cols := c.columns()
	for x := 0; x <= 6; x++ {
		if !cols[x] {
			t.Errorf("column %d not touched", x)
		}
	}
	for x := range cols {
		if x > 6 {
			t.Errorf("column %d touched beyond the exit point", x)
		}
	}
	rows := c.rows()
	for y := 0; y <= 9; y++ {
		if !rows[y] {
			t.Errorf("row %d not touched", y)
		}
	}
}

// Negative-slope segments leaving the canvas on both axes exercise the
// mirrored plotting branch; nothing may land outside the bounds, and the
// visible part of the segment must still be drawn.
func TestNegativeSlopeClipped(t *testing.T) {
	for _, reversed := range []bool{false, true} {
		c := newTestCanvas(t, 10, 10)
		if reversed {
			DrawLine(c, 12, 0, 0, 12, 1)
		} else {
			DrawLine(c, 0, 12, 12, 0, 1)
		}

		// the line y = 12 - x enters the canvas at (3,9)
		for x := 3; x <= 9; x++ {
			if c.hits[[2]int{x, 12 - x}] == 0 {
				t.Errorf("cell (%d,%d) not touched", x, 12-x)
			}
		}
		for cell := range c.hits {
			if cell[0]+cell[1] != 12 {
				t.Errorf("unexpected cell %v", cell)
			}
		}
	}

	// a negative-slope segment whose visible corner misses the canvas
	// entirely draws nothing
	c := newTestCanvas(t, 10, 10)
	DrawLine(c, 0, 30, 20, 0, 1)
	if len(c.hits) != 0 {
		t.Errorf("%d cells touched, want 0", len(c.hits))
	}
}

// The two sampling passes together must leave no gaps: every column and
// every row spanned by an in-bounds diagonal is touched.
func TestGapFree(t *testing.T) {
	cases := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"shallow", 0, 0, 7, 3},
		{"steep", 0, 0, 3, 7},
		{"reversed", 7, 3, 0, 0},
		{"negative_slope", 0, 7, 7, 0},
		{"full_diagonal", 0, 0, 9, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCanvas(t, 10, 10)
			DrawLine(c, tc.x1, tc.y1, tc.x2, tc.y2, 1)

			minX := min(tc.x1, tc.x2)
			maxX := max(tc.x1, tc.x2)
			minY := min(tc.y1, tc.y2)
			maxY := max(tc.y1, tc.y2)

			cols := c.columns()
			for x := minX; x <= maxX; x++ {
				if !cols[x] {
					t.Errorf("column %d not touched", x)
				}
			}
			rows := c.rows()
			for y := minY; y <= maxY; y++ {
				if !rows[y] {
					t.Errorf("row %d not touched", y)
				}
			}
			// all cells inside the segment's bounding box
			for cell := range c.hits {
				if cell[0] < minX || cell[0] > maxX ||
					cell[1] < minY || cell[1] > maxY {
					t.Errorf("cell %v outside bounding box", cell)
				}
			}
		})
	}
}

// The endpoints of an unclipped diagonal are always plotted.
func TestEndpointsTouched(t *testing.T) {
	c := newTestCanvas(t, 20, 20)
	DrawLine(c, 2, 3, 17, 11, 1)
	if c.hits[[2]int{2, 3}] == 0 {
		t.Error("start point not touched")
	}
	if c.hits[[2]int{17, 11}] == 0 {
		t.Error("end point not touched")
	}
}

// Extreme coordinates must not overflow the sampling arithmetic.
func TestExtremeCoordinates(t *testing.T) {
	const big = math.MaxInt / 2
	c := newTestCanvas(t, 10, 10)
	DrawLine(c, 0, 0, big, big-1, 1)
	if len(c.hits) == 0 {
		t.Fatal("no cells touched")
	}
	// the visible corner of this segment lies far outside the canvas on
	// both axes, so nothing is drawn, but nothing may overflow either
	c = newTestCanvas(t, 10, 10)
	DrawLine(c, 0, big, big-1, 0, 1)
	if len(c.hits) != 0 {
		t.Fatalf("%d cells touched, want 0", len(c.hits))
	}
}

func TestMulDiv(t *testing.T) {
	cases := []struct {
		a, b, c int
		want    int
	}{
		{0, 5, 7, 0},
		{3, 10, 5, 6},
		{7, 3, 7, 3},
		{math.MaxInt, math.MaxInt, math.MaxInt, math.MaxInt},
		{math.MaxInt / 2, math.MaxInt, math.MaxInt, math.MaxInt / 2},
	}
	for _, tc := range cases {
		if got := mulDiv(tc.a, tc.b, tc.c); got != tc.want {
			t.Errorf("mulDiv(%d,%d,%d) = %d, want %d",
				tc.a, tc.b, tc.c, got, tc.want)
		}
	}
}
