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

// Package raster draws clipped line segments into any 2D value sink.
//
// The rasteriser is stateless: each call is a pure function of the
// segment endpoints, the value to apply, and the sink's current bounds.
// Cell updates are expressed as additions rather than overwrites, so
// sinks which accumulate intensity remain well-defined when several
// segments overlap.
package raster

import (
	"fmt"
	"math/bits"
)

// Canvas is the minimal capability a 2D container must expose to receive
// rasterised output.  [DrawLine] only passes coordinates inside
// [0, Width()) x [0, Height()), so implementations may skip their own
// bounds validation in AddAt and AddRect.
type Canvas[T any] interface {
	Width() int
	Height() int

	// AddAt increases the cell (x, y) by amount.
	AddAt(x, y int, amount T)

	// AddRect increases every cell of the rectangle with corners
	// (minX, minY) and (maxX, maxY), both inclusive, by amount.
	AddRect(minX, minY, maxX, maxY int, amount T)
}

// CoordError is the panic value of [DrawLine] when a segment endpoint has
// a negative coordinate.  All coordinates are cell indices and must be
// non-negative; clipping only applies at the upper bounds.
type CoordError struct {
	X, Y int
}

func (e *CoordError) Error() string {
	return fmt.Sprintf("raster: negative coordinate (%d,%d)", e.X, e.Y)
}

// DrawLine adds value to every cell the segment from (x1, y1) to
// (x2, y2) passes through, clipped to the bounds of c.  No cell outside
// the bounds is touched, however large the coordinates are.
//
// The segment is sampled on both axes with integer division, so the two
// passes together leave no gaps regardless of the slope.  Cells where the
// two passes agree are updated twice; this is intentional for
// accumulating sinks and harmless for saturating ones.
//
// DrawLine panics with *CoordError if any endpoint coordinate is
// negative.  It never fails for non-negative inputs: the sampling
// products are computed with 128-bit intermediates, so index arithmetic
// cannot overflow.
func DrawLine[T any](c Canvas[T], x1, y1, x2, y2 int, value T) {
	if x1 < 0 || y1 < 0 {
		panic(&CoordError{X: x1, Y: y1})
	}
	if x2 < 0 || y2 < 0 {
		panic(&CoordError{X: x2, Y: y2})
	}

	width := c.Width()
	height := c.Height()

	// If both endpoints lie beyond the same bound, no cell can be touched.
	if (x1 >= width && x2 >= width) || (y1 >= height && y2 >= height) {
		return
	}

	if x1 == x2 {
		// vertical line
		if x1 < width {
			if y1 < y2 {
				c.AddRect(x1, y1, x1, min(y2, height-1), value)
			} else {
				c.AddRect(x1, y2, x1, min(y1, height-1), value)
			}
		}
		return
	}
	if y1 == y2 {
		// horizontal line
		if y1 < height {
			if x1 < x2 {
				c.AddRect(x1, y1, min(x2, width-1), y1, value)
			} else {
				c.AddRect(x2, y1, min(x1, width-1), y1, value)
			}
		}
		return
	}

	minX, maxX := x1, x2
	if x2 < x1 {
		minX, maxX = x2, x1
	}
	minY, maxY := y1, y2
	if y2 < y1 {
		minY, maxY = y2, y1
	}

	dx := maxX - minX
	dy := maxY - minY

	// The segment runs from top-left to bottom-right exactly when the
	// x-minimal endpoint is also the y-minimal one.
	negativeSlope := (x1 == minX) != (y1 == minY)

	// Clip the far end of each axis to the canvas bound.  The trivial
	// reject above guarantees minX < width and minY < height, so both
	// limits are non-negative.
	endX := dx
	if maxX >= width {
		endX = width - 1 - minX
	}
	endY := dy
	if maxY >= height {
		endY = height - 1 - minY
	}

	// Walk the x axis, sampling y.
	for extraX := 0; extraX <= endX; extraX++ {
		extraY := mulDiv(extraX, dy, dx)
		if negativeSlope {
			if y := maxY - extraY; y < height {
				c.AddAt(minX+extraX, y, value)
			}
		} else {
			if y := minY + extraY; y < height {
				c.AddAt(minX+extraX, y, value)
			}
		}
	}

	// Walk the y axis, sampling x.
	for extraY := 0; extraY <= endY; extraY++ {
		extraX := mulDiv(extraY, dx, dy)
		if negativeSlope {
			if x := maxX - extraX; x < width {
				c.AddAt(x, minY+extraY, value)
			}
		} else {
			if x := minX + extraX; x < width {
				c.AddAt(x, minY+extraY, value)
			}
		}
	}
}

// mulDiv returns a*b/c using a 128-bit intermediate product.
//
// The callers guarantee 0 <= a <= c and b >= 0, so the quotient is at
// most b and always fits in an int.
func mulDiv(a, b, c int) int {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	q, _ := bits.Div64(hi, lo, uint64(c))
	return int(q)
}
