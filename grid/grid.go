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

// Package grid provides a row-major 2D view over an array.Array.
//
// A Grid never touches memory itself: every access translates (x, y) to
// the linear offset x + y*width and forwards to the backing Array.  The
// Grid addresses the full backing range, never a proper subset, so the
// coordinate mapping is a bijection onto [0, width*height).
package grid

import (
	"math"
	"math/bits"

	"seehuhn.de/go/cells/array"
)

// Grid is a fixed-size 2D view over an Array.  The Grid uses the Array
// but does not own it in any storage sense; the Array may itself be a
// view aliasing memory obtained elsewhere.
type Grid[T any] struct {
	arr    *array.Array[T]
	width  int
	height int
	bound  int // width * height, cached
}

// New creates a Grid of the given dimensions over a.  It fails with
// *DimensionError if width or height is not positive, with
// array.ErrOverflow if width*height overflows, and with
// *BufferTooSmallError if a holds fewer than width*height elements.
func New[T any](a *array.Array[T], width, height int) (*Grid[T], error) {
	if width < 1 || height < 1 {
		return nil, &DimensionError{Width: width, Height: height}
	}
	hi, lo := bits.Mul64(uint64(width), uint64(height))
	if hi != 0 || lo > math.MaxInt {
		return nil, array.ErrOverflow
	}
	bound := int(lo)
	if a.Len() < bound {
		return nil, &BufferTooSmallError{Need: bound, Have: a.Len()}
	}
	return &Grid[T]{
		arr:    a,
		width:  width,
		height: height,
		bound:  bound,
	}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return g.height
}

// Array returns the backing Array.  Its length may exceed the number of
// cells the Grid addresses only if it was over-sized at construction; the
// Grid itself always addresses exactly width*height elements.
func (g *Grid[T]) Array() *array.Array[T] {
	return g.arr
}

// checkCoord panics with *CoordError unless (x, y) lies inside the grid.
func (g *Grid[T]) checkCoord(x, y int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(&CoordError{X: x, Y: y, Width: g.width, Height: g.height})
	}
}

// Index returns the linear offset of cell (x, y) in the backing Array.
// Index panics with *CoordError if the coordinates are out of range.
func (g *Grid[T]) Index(x, y int) int {
	g.checkCoord(x, y)
	return x + y*g.width
}

// IndexUnchecked returns the linear offset of cell (x, y) without
// validating the coordinates.  It is only safe to call when the caller
// has already established 0 <= x < Width() and 0 <= y < Height().
func (g *Grid[T]) IndexUnchecked(x, y int) int {
	return x + y*g.width
}

// Get returns a copy of the cell (x, y).  Get panics with *CoordError if
// the coordinates are out of range.
func (g *Grid[T]) Get(x, y int) T {
	g.checkCoord(x, y)
	return g.arr.GetUnchecked(x + y*g.width)
}

// GetUnchecked is like [Grid.Get] but performs no validation.
func (g *Grid[T]) GetUnchecked(x, y int) T {
	return g.arr.GetUnchecked(x + y*g.width)
}

// Set stores value in the cell (x, y).  Set panics with *CoordError if
// the coordinates are out of range.
func (g *Grid[T]) Set(x, y int, value T) {
	g.checkCoord(x, y)
	g.arr.SetUnchecked(x+y*g.width, value)
}

// SetUnchecked is like [Grid.Set] but performs no validation.
func (g *Grid[T]) SetUnchecked(x, y int, value T) {
	g.arr.SetUnchecked(x+y*g.width, value)
}

// At returns a pointer to the cell (x, y), for element types where
// copying is undesirable.  The single-writer discipline of
// [array.Array.At] applies.  At panics with *CoordError if the
// coordinates are out of range.
func (g *Grid[T]) At(x, y int) *T {
	g.checkCoord(x, y)
	return g.arr.AtUnchecked(x + y*g.width)
}

// AtUnchecked is like [Grid.At] but performs no validation.
func (g *Grid[T]) AtUnchecked(x, y int) *T {
	return g.arr.AtUnchecked(x + y*g.width)
}

// SetRow sets every cell in row y to value.  A row is contiguous in the
// backing Array, so this is a single bulk write.  SetRow panics with
// *CoordError if y is out of range.
func (g *Grid[T]) SetRow(y int, value T) {
	if y < 0 || y >= g.height {
		panic(&CoordError{X: 0, Y: y, Width: g.width, Height: g.height})
	}
	g.arr.SetRangeUnchecked(y*g.width, g.width, value)
}

// SetColumn sets every cell in column x to value.  Columns are strided
// with stride width, so the cells are written individually.  SetColumn
// panics with *CoordError if x is out of range.
func (g *Grid[T]) SetColumn(x int, value T) {
	if x < 0 || x >= g.width {
		panic(&CoordError{X: x, Y: 0, Width: g.width, Height: g.height})
	}
	for y := 0; y < g.height; y++ {
		g.arr.SetUnchecked(x+y*g.width, value)
	}
}

// SetAll sets every cell of the grid to value.
func (g *Grid[T]) SetAll(value T) {
	g.arr.SetRangeUnchecked(0, g.bound, value)
}
