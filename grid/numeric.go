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

package grid

import (
	"golang.org/x/exp/constraints"

	"seehuhn.de/go/cells/array"
)

// Add increases the cell (x, y) by amount.  Add panics with *CoordError
// if the coordinates are out of range.
func Add[T array.Addable](g *Grid[T], x, y int, amount T) {
	g.checkCoord(x, y)
	array.AddUnchecked(g.arr, x+y*g.width, amount)
}

// AddRect increases every cell of the rectangle with corners
// (minX, minY) and (maxX, maxY), both inclusive, by amount.  Each row of
// the rectangle is contiguous in the backing Array and is updated with a
// single bulk operation.  AddRect panics with *CoordError if a corner is
// out of range or the corners are not ordered.
func AddRect[T array.Addable](g *Grid[T], minX, minY, maxX, maxY int, amount T) {
	g.checkCoord(minX, minY)
	g.checkCoord(maxX, maxY)
	if minX > maxX || minY > maxY {
		panic(&CoordError{X: maxX, Y: maxY, Width: g.width, Height: g.height})
	}
	rowLen := maxX - minX + 1
	for y := minY; y <= maxY; y++ {
		array.AddRangeUnchecked(g.arr, minX+y*g.width, rowLen, amount)
	}
}

// Accum adapts a Grid for use as a rasterisation target with the element
// type's native wrap-around accumulation.  The add primitives trust the
// caller to pass in-bounds coordinates and skip validation, matching the
// raster.Canvas contract.
type Accum[T array.Addable] struct {
	Grid *Grid[T]
}

func (c Accum[T]) Width() int  { return c.Grid.width }
func (c Accum[T]) Height() int { return c.Grid.height }

// AddAt increases the cell (x, y) by amount.  The coordinates must be in
// bounds.
func (c Accum[T]) AddAt(x, y int, amount T) {
	g := c.Grid
	array.AddUnchecked(g.arr, x+y*g.width, amount)
}

// AddRect increases every cell of the given inclusive rectangle by
// amount.  The corners must be in bounds and ordered.
func (c Accum[T]) AddRect(minX, minY, maxX, maxY int, amount T) {
	g := c.Grid
	rowLen := maxX - minX + 1
	for y := minY; y <= maxY; y++ {
		array.AddRangeUnchecked(g.arr, minX+y*g.width, rowLen, amount)
	}
}

// Clamp adapts a Grid for use as a rasterisation target with saturating
// accumulation: cell values clamp at the boundaries of T instead of
// wrapping around, so overlapping line segments cannot wrap an intensity
// value back to zero.  Like [Accum], the add primitives skip validation.
type Clamp[T constraints.Integer] struct {
	Grid *Grid[T]
}

func (c Clamp[T]) Width() int  { return c.Grid.width }
func (c Clamp[T]) Height() int { return c.Grid.height }

// AddAt increases the cell (x, y) by amount, clamping at the boundaries
// of T.  The coordinates must be in bounds.
func (c Clamp[T]) AddAt(x, y int, amount T) {
	g := c.Grid
	array.SaturatingAddUnchecked(g.arr, x+y*g.width, amount)
}

// AddRect increases every cell of the given inclusive rectangle by
// amount, clamping at the boundaries of T.  The corners must be in
// bounds and ordered.
func (c Clamp[T]) AddRect(minX, minY, maxX, maxY int, amount T) {
	g := c.Grid
	rowLen := maxX - minX + 1
	for y := minY; y <= maxY; y++ {
		array.SaturatingAddRangeUnchecked(g.arr, minX+y*g.width, rowLen, amount)
	}
}
